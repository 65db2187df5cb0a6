// engine/internal/config/config.go
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"payrise-engine/internal/rank"
)

type Company struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
}

// BoardSource configures an authenticated REST job board.
type BoardSource struct {
	Enabled    bool    `yaml:"enabled"`
	BaseURL    string  `yaml:"base_url"`
	APIKeyEnv  string  `yaml:"api_key_env"`
	RatePerSec float64 `yaml:"rate_per_sec"`
	Burst      int     `yaml:"burst"`
}

// ATSSource configures a public applicant-tracking board polled per company.
type ATSSource struct {
	Enabled    bool      `yaml:"enabled"`
	BaseURL    string    `yaml:"base_url"`
	RatePerSec float64   `yaml:"rate_per_sec"`
	Burst      int       `yaml:"burst"`
	Companies  []Company `yaml:"companies"`
}

type CompanyProvider struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"` // http | web
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
		LogJSON bool   `yaml:"log_json"`
		Debug   bool   `yaml:"debug"`
	} `yaml:"app"`

	Search struct {
		RunTimeout            time.Duration `yaml:"run_timeout"`
		ProviderTimeout       time.Duration `yaml:"provider_timeout"`
		ResolveConcurrency    int           `yaml:"resolve_concurrency"`
		MaxReasonableIncrease float64       `yaml:"max_reasonable_increase"`
	} `yaml:"search"`

	Boosts rank.Boosts `yaml:"boosts"`

	Scoring struct {
		Weights rank.Weights `yaml:"weights"`
	} `yaml:"scoring"`

	Retry struct {
		Backoff       time.Duration `yaml:"backoff"`
		MaxRetryAfter time.Duration `yaml:"max_retry_after"`
	} `yaml:"retry"`

	Providers struct {
		Indeed     BoardSource `yaml:"indeed"`
		LinkedIn   BoardSource `yaml:"linkedin"`
		Glassdoor  BoardSource `yaml:"glassdoor"`
		Lever      ATSSource   `yaml:"lever"`
		Greenhouse ATSSource   `yaml:"greenhouse"`
	} `yaml:"providers"`

	Company struct {
		TTL       time.Duration     `yaml:"ttl"`
		Backend   string            `yaml:"backend"` // sqlite | redis | memory
		RedisURL  string            `yaml:"redis_url"`
		Providers []CompanyProvider `yaml:"providers"`
	} `yaml:"company"`

	Maintenance struct {
		PruneSchedule string `yaml:"prune_schedule"`
	} `yaml:"maintenance"`
}

// Default is the configuration written on first run and the base every
// loaded file is decoded onto.
func Default() Config {
	var cfg Config
	cfg.App.DataDir = "."

	cfg.Search.RunTimeout = 30 * time.Second
	cfg.Search.ProviderTimeout = 10 * time.Second
	cfg.Search.ResolveConcurrency = 8
	cfg.Search.MaxReasonableIncrease = 1.0

	cfg.Boosts = rank.DefaultBoosts
	cfg.Scoring.Weights = rank.DefaultWeights

	cfg.Retry.Backoff = 2 * time.Second
	cfg.Retry.MaxRetryAfter = 10 * time.Second

	cfg.Providers.Indeed = BoardSource{BaseURL: "https://apis.indeed.com", APIKeyEnv: "INDEED_API_KEY", RatePerSec: 2, Burst: 2}
	cfg.Providers.LinkedIn = BoardSource{BaseURL: "https://api.linkedin.com", APIKeyEnv: "LINKEDIN_API_KEY", RatePerSec: 1, Burst: 1}
	cfg.Providers.Glassdoor = BoardSource{BaseURL: "https://api.glassdoor.com", APIKeyEnv: "GLASSDOOR_API_KEY", RatePerSec: 1, Burst: 2}
	cfg.Providers.Lever = ATSSource{BaseURL: "https://api.lever.co", RatePerSec: 1, Burst: 2}
	cfg.Providers.Greenhouse = ATSSource{BaseURL: "https://boards-api.greenhouse.io", RatePerSec: 1, Burst: 2}

	cfg.Company.TTL = 30 * 24 * time.Hour
	cfg.Company.Backend = "sqlite"
	cfg.Company.Providers = []CompanyProvider{
		{Name: "glassdoor-companies", Kind: "http", BaseURL: "https://api.glassdoor.com/api/v1/employers", APIKeyEnv: "GLASSDOOR_API_KEY"},
		{Name: "web", Kind: "web"},
	}

	cfg.Maintenance.PruneSchedule = "@every 24h"
	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
