package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete cached company profiles older than the configured TTL",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		res, st, err := openResolver(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := res.Prune(cmd.Context())
		if err != nil {
			return fmt.Errorf("pruning profiles: %w", err)
		}
		log.Info("[prune] done", zap.Int64("removed", n), zap.Duration("ttl", cfg.Company.TTL))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
