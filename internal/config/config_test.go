package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"payrise-engine/internal/errs"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()) = %v", err)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := `
search:
  provider_timeout: 3s
scoring:
  weights:
    salary: 0.4
    advancement: 0.2
    benefits: 0.15
    diversity: 0.1
    growth: 0.1
    culture: 0.05
providers:
  lever:
    enabled: true
    companies:
      - slug: acme
        name: Acme Corp
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Search.ProviderTimeout != 3*time.Second {
		t.Fatalf("provider_timeout = %v", cfg.Search.ProviderTimeout)
	}
	if cfg.Search.RunTimeout != 30*time.Second {
		t.Fatalf("run_timeout default lost: %v", cfg.Search.RunTimeout)
	}
	if cfg.Scoring.Weights.Salary != 0.4 {
		t.Fatalf("weights not decoded: %+v", cfg.Scoring.Weights)
	}
	if !cfg.Providers.Lever.Enabled || cfg.Providers.Lever.BaseURL == "" {
		t.Fatalf("lever config = %+v", cfg.Providers.Lever)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestValidateCollectsProblems(t *testing.T) {
	cfg := Default()
	cfg.Scoring.Weights.Salary = 0.9
	cfg.Company.Backend = "etcd"
	cfg.Providers.Greenhouse.Enabled = true
	cfg.Maintenance.PruneSchedule = "every now and then"

	err := Validate(cfg)
	var ce *errs.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	for _, want := range []string{"weights", "company.backend", "greenhouse.companies", "prune_schedule"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error does not mention %q:\n%s", want, err)
		}
	}
}

func TestEnsureUserConfigWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path, err := EnsureUserConfig(dir)
	if err != nil {
		t.Fatalf("EnsureUserConfig() error: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.App.DataDir != dir {
		t.Fatalf("data_dir = %q, want %q", cfg.App.DataDir, dir)
	}
	if cfg.Company.TTL != 30*24*time.Hour {
		t.Fatalf("ttl round trip = %v", cfg.Company.TTL)
	}

	again, err := EnsureUserConfig(dir)
	if err != nil || again != path {
		t.Fatalf("second EnsureUserConfig() = %q, %v", again, err)
	}
}

func TestOverlayCompanies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "companies.yml")
	if err := os.WriteFile(path, []byte("lever:\n  - slug: netflix\n    name: Netflix\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := OverlayCompanies(&cfg, path); err != nil {
		t.Fatalf("OverlayCompanies() error: %v", err)
	}
	if len(cfg.Providers.Lever.Companies) != 1 || cfg.Providers.Lever.Companies[0].Slug != "netflix" {
		t.Fatalf("lever companies = %+v", cfg.Providers.Lever.Companies)
	}
	if err := OverlayCompanies(&cfg, filepath.Join(dir, "missing.yml")); err != nil {
		t.Fatalf("missing file should be ignored, got %v", err)
	}
}
