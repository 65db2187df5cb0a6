package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payrise-engine/internal/scheduler"
)

var maintainCmd = &cobra.Command{
	Use:   "maintain",
	Short: "Run cache maintenance on the configured schedule until interrupted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		res, st, err := openResolver(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer st.Close()

		if strings.TrimSpace(cfg.Maintenance.PruneSchedule) == "" {
			return errors.New("maintenance.prune_schedule is not set")
		}

		sched := scheduler.New(log.Named("scheduler"))
		err = sched.Add("prune-profiles", cfg.Maintenance.PruneSchedule, func(ctx context.Context) error {
			n, err := res.Prune(ctx)
			if err != nil {
				return err
			}
			log.Info("[maintain] pruned profiles", zap.Int64("removed", n))
			return nil
		})
		if err != nil {
			return err
		}
		return sched.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(maintainCmd)
}
