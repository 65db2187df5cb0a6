package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payrise-engine/internal/company"
	"payrise-engine/internal/config"
	"payrise-engine/internal/logger"
	"payrise-engine/internal/secrets"
	"payrise-engine/internal/store"
)

const (
	app        = "payrise-engine"
	dataDirEnv = "PAYRISE_DATA_DIR"
)

var (
	// Used for flags.
	cfgFile string
	dataDir string
	debug   bool

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "payrise-engine finds and ranks job openings that pay more than you earn today",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is config.yml in the data dir)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default is $"+dataDirEnv+" or the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
}

// resolveDataDir picks the flag, then the environment, then the working directory.
func resolveDataDir() (dir string, explicit bool) {
	if dataDir != "" {
		return dataDir, true
	}
	if env := os.Getenv(dataDirEnv); env != "" {
		return env, true
	}
	return ".", false
}

// loadConfig bootstraps the data dir on first run and returns a validated config.
func loadConfig() (config.Config, error) {
	dir, explicit := resolveDataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return config.Config{}, fmt.Errorf("creating data dir: %w", err)
	}

	path := cfgFile
	if path == "" {
		p, err := config.EnsureUserConfig(dir)
		if err != nil {
			return config.Config{}, fmt.Errorf("config bootstrap: %w", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("config load (%s): %w", path, err)
	}
	if explicit || cfg.App.DataDir == "" {
		cfg.App.DataDir = dir
	}
	if err := config.OverlayCompanies(&cfg, filepath.Join(dir, "companies.yml")); err != nil {
		return cfg, fmt.Errorf("companies overlay: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setup loads the config and builds the process logger.
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	log, err := logger.New(cfg.App.LogJSON, cfg.App.Debug || debug)
	if err != nil {
		return cfg, nil, fmt.Errorf("creating a logger: %w", err)
	}
	return cfg, log, nil
}

// openResolver opens the profile cache and wires the company providers.
// The caller closes the returned store.
func openResolver(ctx context.Context, cfg config.Config, log *zap.Logger) (*company.Resolver, store.ProfileStore, error) {
	st, err := store.OpenProfileStore(ctx, store.Options{
		Backend:  cfg.Company.Backend,
		DataDir:  cfg.App.DataDir,
		RedisURL: cfg.Company.RedisURL,
		TTL:      cfg.Company.TTL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening profile store: %w", err)
	}

	res := company.NewResolver(st,
		company.BuildProviders(cfg, secrets.ProviderAPIKey, log),
		company.Options{TTL: cfg.Company.TTL, Concurrency: cfg.Search.ResolveConcurrency},
		log.Named("company"))
	return res, st, nil
}
