package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"

	"payrise-engine/internal/errs"
)

// Validate returns a *errs.ConfigurationError listing every problem.
func Validate(cfg Config) error {
	var problems []string

	if cfg.Search.RunTimeout <= 0 {
		problems = append(problems, "search.run_timeout must be > 0")
	}
	if cfg.Search.ProviderTimeout <= 0 {
		problems = append(problems, "search.provider_timeout must be > 0")
	}
	if cfg.Search.ResolveConcurrency <= 0 {
		problems = append(problems, "search.resolve_concurrency must be > 0")
	}
	if cfg.Search.MaxReasonableIncrease <= 0 {
		problems = append(problems, "search.max_reasonable_increase must be > 0")
	}
	if cfg.Boosts.MSA < 0 || cfg.Boosts.Remote < 0 {
		problems = append(problems, "boosts must be >= 0")
	}
	if cfg.Retry.Backoff < 0 {
		problems = append(problems, "retry.backoff must be >= 0")
	}

	if err := cfg.Scoring.Weights.Validate(); err != nil {
		var ce *errs.ConfigurationError
		if errors.As(err, &ce) {
			problems = append(problems, ce.Problems...)
		} else {
			problems = append(problems, err.Error())
		}
	}

	checkBoard := func(name string, b BoardSource) {
		if !b.Enabled {
			return
		}
		if strings.TrimSpace(b.BaseURL) == "" {
			problems = append(problems, fmt.Sprintf("providers.%s.base_url is required when enabled", name))
		}
		if b.RatePerSec < 0 {
			problems = append(problems, fmt.Sprintf("providers.%s.rate_per_sec must be >= 0", name))
		}
	}
	checkATS := func(name string, a ATSSource) {
		if !a.Enabled {
			return
		}
		if strings.TrimSpace(a.BaseURL) == "" {
			problems = append(problems, fmt.Sprintf("providers.%s.base_url is required when enabled", name))
		}
		if len(a.Companies) == 0 {
			problems = append(problems, fmt.Sprintf("providers.%s.companies must have at least 1 entry", name))
		}
		for i, c := range a.Companies {
			if strings.TrimSpace(c.Slug) == "" {
				problems = append(problems, fmt.Sprintf("providers.%s.companies[%d].slug is required", name, i))
			}
		}
	}

	checkBoard("indeed", cfg.Providers.Indeed)
	checkBoard("linkedin", cfg.Providers.LinkedIn)
	checkBoard("glassdoor", cfg.Providers.Glassdoor)
	checkATS("lever", cfg.Providers.Lever)
	checkATS("greenhouse", cfg.Providers.Greenhouse)

	if cfg.Company.TTL <= 0 {
		problems = append(problems, "company.ttl must be > 0")
	}
	switch cfg.Company.Backend {
	case "sqlite", "memory":
	case "redis":
		if strings.TrimSpace(cfg.Company.RedisURL) == "" {
			problems = append(problems, "company.redis_url is required when company.backend=redis")
		}
	default:
		problems = append(problems, fmt.Sprintf("company.backend %q must be sqlite, redis or memory", cfg.Company.Backend))
	}
	for i, p := range cfg.Company.Providers {
		if strings.TrimSpace(p.Name) == "" {
			problems = append(problems, fmt.Sprintf("company.providers[%d].name is required", i))
		}
		switch p.Kind {
		case "web":
		case "http":
			if strings.TrimSpace(p.BaseURL) == "" {
				problems = append(problems, fmt.Sprintf("company.providers[%d].base_url is required for kind=http", i))
			}
		default:
			problems = append(problems, fmt.Sprintf("company.providers[%d].kind %q must be http or web", i, p.Kind))
		}
	}

	if s := strings.TrimSpace(cfg.Maintenance.PruneSchedule); s != "" {
		if _, err := cron.ParseStandard(s); err != nil {
			problems = append(problems, fmt.Sprintf("maintenance.prune_schedule: %v", err))
		}
	}

	if len(problems) > 0 {
		return errs.NewConfigurationError(problems...)
	}
	return nil
}
