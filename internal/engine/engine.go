// Package engine runs one opportunity search end to end: aggregate, resolve
// companies, score, target, filter and rank.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"payrise-engine/internal/config"
	"payrise-engine/internal/domain"
	"payrise-engine/internal/errs"
	"payrise-engine/internal/rank"
	"payrise-engine/internal/scrape"
	"payrise-engine/internal/scrape/types"
	"payrise-engine/internal/strategy"
)

var tracer = otel.Tracer("payrise-engine/engine")

type Options struct {
	RunTimeout            time.Duration
	ProviderTimeout       time.Duration
	MaxReasonableIncrease float64
	Weights               rank.Weights
	Boosts                rank.Boosts
}

func DefaultOptions() Options {
	return Options{
		RunTimeout:            30 * time.Second,
		ProviderTimeout:       scrape.DefaultProviderTimeout,
		MaxReasonableIncrease: 1.0,
		Weights:               rank.DefaultWeights,
		Boosts:                rank.DefaultBoosts,
	}
}

func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		RunTimeout:            cfg.Search.RunTimeout,
		ProviderTimeout:       cfg.Search.ProviderTimeout,
		MaxReasonableIncrease: cfg.Search.MaxReasonableIncrease,
		Weights:               cfg.Scoring.Weights,
		Boosts:                cfg.Boosts,
	}
}

// CompanyResolver is satisfied by *company.Resolver.
type CompanyResolver interface {
	ResolveAll(ctx context.Context, names []string) map[string]domain.CompanyProfile
}

type Engine struct {
	opts      Options
	providers []types.Provider
	resolver  CompanyResolver
	scorer    rank.Scorer
	agg       *scrape.Aggregator
	log       *zap.Logger
}

// New checks the scoring weights and the strategy catalog and fails with a
// *errs.ConfigurationError if either is unusable. resolver may be nil, in
// which case every company gets the neutral profile.
func New(opts Options, providers []types.Provider, resolver CompanyResolver, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := strategy.Validate(); err != nil {
		return nil, err
	}
	scorer, err := rank.NewScorer(opts.Weights)
	if err != nil {
		return nil, err
	}

	var problems []string
	if opts.Boosts.MSA < 0 || opts.Boosts.Remote < 0 {
		problems = append(problems, "boosts must be >= 0")
	}
	if opts.MaxReasonableIncrease <= 0 {
		problems = append(problems, "max reasonable increase must be > 0")
	}
	if len(problems) > 0 {
		return nil, errs.NewConfigurationError(problems...)
	}
	if opts.RunTimeout <= 0 {
		opts.RunTimeout = DefaultOptions().RunTimeout
	}

	return &Engine{
		opts:      opts,
		providers: providers,
		resolver:  resolver,
		scorer:    scorer,
		agg:       scrape.NewAggregator(opts.ProviderTimeout, log),
		log:       log,
	}, nil
}

// FindOpportunities returns ranked opportunities and the providers that
// failed along the way. The error is non-nil only for invalid criteria.
func (e *Engine) FindOpportunities(ctx context.Context, criteria domain.SearchCriteria) ([]domain.ScoredJob, []*errs.ProviderError, error) {
	if err := criteria.Validate(); err != nil {
		return nil, nil, err
	}

	runID := uuid.NewString()
	log := e.log.With(zap.String("run_id", runID))
	start := time.Now()

	ctx, span := tracer.Start(ctx, "Engine.FindOpportunities")
	defer span.End()
	span.SetAttributes(
		attribute.String("run_id", runID),
		attribute.String("career_field", string(criteria.CareerField)),
	)

	ctx, cancel := context.WithTimeout(ctx, e.opts.RunTimeout)
	defer cancel()

	log.Info("[search] start",
		zap.String("career_field", string(criteria.CareerField)),
		zap.String("experience_level", string(criteria.ExperienceLevel)),
		zap.Int("providers", len(e.providers)))

	jobs, perrs := e.agg.Search(ctx, criteria, e.providers)

	profiles := e.resolveCompanies(ctx, jobs)

	scored := make([]domain.ScoredJob, 0, len(jobs))
	for _, j := range jobs {
		key := domain.NormalizeCompanyName(j.Company)
		profile, ok := profiles[key]
		if !ok {
			profile = domain.NeutralProfile(j.Company)
		}
		if j.CompanySize == "" {
			j.CompanySize = profile.Size
		}
		if j.CompanyIndustry == "" {
			j.CompanyIndustry = profile.Industry
		}
		scored = append(scored, e.scorer.Score(j, criteria, profile))
	}

	adjusted := rank.Adjust(scored, criteria.PreferredMSAs, criteria.RemoteOK, e.opts.Boosts)
	ranked, rep := rank.Rank(adjusted, criteria, e.opts.MaxReasonableIncrease)

	span.SetAttributes(attribute.Int("results", len(ranked)), attribute.Int("provider_errors", len(perrs)))
	log.Info("[search] done",
		zap.Int("aggregated", rep.Initial),
		zap.Int("dropped_unscored", rep.Unscored),
		zap.Int("dropped_salary", rep.Salary),
		zap.Int("dropped_rating", rep.Rating),
		zap.Int("dropped_equity", rep.Equity),
		zap.Int("results", rep.Left),
		zap.Int("provider_errors", len(perrs)),
		zap.Duration("took", time.Since(start)))
	return ranked, perrs, nil
}

func (e *Engine) resolveCompanies(ctx context.Context, jobs []domain.JobOpportunity) map[string]domain.CompanyProfile {
	if e.resolver == nil || len(jobs) == 0 {
		return nil
	}
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.Company)
	}
	return e.resolver.ResolveAll(ctx, names)
}
