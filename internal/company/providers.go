package company

import (
	"time"

	"go.uber.org/zap"

	"payrise-engine/internal/config"
	"payrise-engine/internal/scrape/util"
)

// BuildProviders creates the configured company-data providers in
// priority order. keys returns the API key for a provider.
func BuildProviders(cfg config.Config, keys func(name, envVar string) string, log *zap.Logger) []Provider {
	if log == nil {
		log = zap.NewNop()
	}
	client := util.NewClient(util.NewHostLimiter(1, 2), cfg.Retry.Backoff, cfg.Retry.MaxRetryAfter)
	client.HC.Timeout = 12 * time.Second

	out := make([]Provider, 0, len(cfg.Company.Providers))
	for _, p := range cfg.Company.Providers {
		switch p.Kind {
		case "http":
			key := ""
			if keys != nil {
				key = keys(p.Name, p.APIKeyEnv)
			}
			out = append(out, NewHTTPProvider(p.Name, p.BaseURL, key, client))
		case "web":
			out = append(out, NewWebProvider(p.BaseURL, client))
		default:
			log.Warn("[company] unknown provider kind", zap.String("provider", p.Name), zap.String("kind", p.Kind))
		}
	}
	return out
}
