package scrape

import (
	"go.uber.org/zap"

	"payrise-engine/internal/config"
	"payrise-engine/internal/scrape/glassdoor"
	"payrise-engine/internal/scrape/greenhouse"
	"payrise-engine/internal/scrape/indeed"
	"payrise-engine/internal/scrape/lever"
	"payrise-engine/internal/scrape/linkedin"
	"payrise-engine/internal/scrape/types"
	"payrise-engine/internal/scrape/util"
)

// KeyFunc looks up the API key for a board; envVar is the configured fallback.
type KeyFunc func(board, envVar string) string

// BuildProviders creates the enabled job-board providers in a fixed order.
// Each board gets its own client so per-board rate settings apply.
func BuildProviders(cfg config.Config, keys KeyFunc, log *zap.Logger) []types.Provider {
	if log == nil {
		log = zap.NewNop()
	}
	if keys == nil {
		keys = func(string, string) string { return "" }
	}
	client := func(rps float64, burst int) *util.Client {
		return util.NewClient(util.NewHostLimiter(rps, burst), cfg.Retry.Backoff, cfg.Retry.MaxRetryAfter)
	}

	var out []types.Provider
	ps := cfg.Providers

	if ps.Indeed.Enabled {
		out = append(out, indeed.New(indeed.Config{
			BaseURL: ps.Indeed.BaseURL,
			APIKey:  keys("indeed", ps.Indeed.APIKeyEnv),
		}, client(ps.Indeed.RatePerSec, ps.Indeed.Burst)))
	}
	if ps.LinkedIn.Enabled {
		out = append(out, linkedin.New(linkedin.Config{
			BaseURL: ps.LinkedIn.BaseURL,
			APIKey:  keys("linkedin", ps.LinkedIn.APIKeyEnv),
		}, client(ps.LinkedIn.RatePerSec, ps.LinkedIn.Burst)))
	}
	if ps.Glassdoor.Enabled {
		out = append(out, glassdoor.New(glassdoor.Config{
			BaseURL: ps.Glassdoor.BaseURL,
			APIKey:  keys("glassdoor", ps.Glassdoor.APIKeyEnv),
		}, client(ps.Glassdoor.RatePerSec, ps.Glassdoor.Burst)))
	}
	if ps.Lever.Enabled {
		out = append(out, lever.New(lever.Config{
			BaseURL:   ps.Lever.BaseURL,
			Companies: mapLeverCompanies(ps.Lever.Companies),
		}, client(ps.Lever.RatePerSec, ps.Lever.Burst), log))
	}
	if ps.Greenhouse.Enabled {
		out = append(out, greenhouse.New(greenhouse.Config{
			BaseURL:   ps.Greenhouse.BaseURL,
			Companies: mapGreenhouseCompanies(ps.Greenhouse.Companies),
		}, client(ps.Greenhouse.RatePerSec, ps.Greenhouse.Burst), log))
	}

	names := make([]string, 0, len(out))
	for _, p := range out {
		names = append(names, string(p.Board()))
	}
	log.Info("[providers] enabled", zap.Strings("boards", names))
	return out
}

func mapGreenhouseCompanies(in []config.Company) []greenhouse.Company {
	out := make([]greenhouse.Company, 0, len(in))
	for _, c := range in {
		out = append(out, greenhouse.Company{
			Slug: c.Slug,
			Name: c.Name,
		})
	}
	return out
}

func mapLeverCompanies(in []config.Company) []lever.Company {
	out := make([]lever.Company, 0, len(in))
	for _, c := range in {
		out = append(out, lever.Company{
			Slug: c.Slug,
			Name: c.Name,
		})
	}
	return out
}
