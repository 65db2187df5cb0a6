// Package company resolves employer quality profiles with a read-through
// cache in front of the company-data providers.
package company

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/errs"
	"payrise-engine/internal/store"
)

const (
	DefaultTTL         = 30 * 24 * time.Hour
	DefaultConcurrency = 8

	// cacheTimeout bounds store calls, which run detached from the run
	// deadline so cached profiles stay usable after it expires.
	cacheTimeout = 2 * time.Second
)

var tracer = otel.Tracer("payrise-engine/company")

// Provider is one source of company facts.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, company string) (Facts, error)
}

type Options struct {
	TTL         time.Duration
	Concurrency int
}

type Resolver struct {
	store       store.ProfileStore
	providers   []Provider
	ttl         time.Duration
	concurrency int
	log         *zap.Logger
	now         func() time.Time

	group singleflight.Group
}

// NewResolver queries providers in the order given.
func NewResolver(st store.ProfileStore, providers []Provider, opts Options, log *zap.Logger) *Resolver {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if log == nil {
		log = zap.NewNop()
	}
	if st == nil {
		st = store.NewMemory()
	}
	return &Resolver{
		store:       st,
		providers:   providers,
		ttl:         opts.TTL,
		concurrency: opts.Concurrency,
		log:         log,
		now:         time.Now,
	}
}

// Resolve returns the profile for name. Concurrent calls for the same
// company share one lookup. When every provider fails the neutral profile is
// returned together with a *errs.CompanyResolutionError; the profile is
// always usable.
func (r *Resolver) Resolve(ctx context.Context, name string) (domain.CompanyProfile, error) {
	key := domain.NormalizeCompanyName(name)
	if key == "" {
		return domain.NeutralProfile(name), nil
	}

	v, err, shared := r.group.Do(key, func() (any, error) {
		return r.resolve(ctx, key, name)
	})
	p := v.(domain.CompanyProfile)
	if shared {
		r.log.Debug("[company] coalesced lookup", zap.String("company", key))
	}
	return p, err
}

func (r *Resolver) resolve(ctx context.Context, key, name string) (domain.CompanyProfile, error) {
	ctx, span := tracer.Start(ctx, "Resolver.Resolve")
	defer span.End()
	span.SetAttributes(attribute.String("company", key))

	cached, ok, err := r.getCached(ctx, key)
	switch {
	case err != nil:
		r.log.Warn("[company] cache read failed", zap.String("company", key), zap.Error(err))
	case ok && r.now().Sub(cached.FetchedAt) < r.ttl:
		span.SetAttributes(attribute.String("cache.result", "hit"))
		return cached, nil
	case ok:
		span.SetAttributes(attribute.String("cache.result", "stale"))
	default:
		span.SetAttributes(attribute.String("cache.result", "miss"))
	}

	var found []sourcedFacts
	var failures []error
	for _, p := range r.providers {
		if err := ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}
		facts, err := p.Fetch(ctx, name)
		if err != nil {
			r.log.Debug("[company] provider failed",
				zap.String("company", key),
				zap.String("provider", p.Name()),
				zap.Error(err))
			failures = append(failures, &providerFailure{provider: p.Name(), err: err})
			continue
		}
		found = append(found, sourcedFacts{source: p.Name(), facts: facts})
	}

	if len(found) == 0 {
		cre := errs.NewCompanyResolutionError(name, failures)
		span.RecordError(cre)
		span.SetStatus(codes.Error, "no provider could describe company")
		r.log.Warn("[company] using neutral profile", zap.String("company", key), zap.Error(cre))
		return domain.NeutralProfile(name), cre
	}

	profile := merge(name, found, r.now())
	if err := r.putCached(ctx, profile); err != nil {
		r.log.Warn("[company] cache write failed", zap.String("company", key), zap.Error(err))
	}
	return profile, nil
}

func (r *Resolver) getCached(ctx context.Context, key string) (domain.CompanyProfile, bool, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheTimeout)
	defer cancel()
	return r.store.GetProfile(ctx, key)
}

func (r *Resolver) putCached(ctx context.Context, p domain.CompanyProfile) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheTimeout)
	defer cancel()
	return r.store.PutProfile(ctx, p)
}

// ResolveAll resolves each distinct company once with bounded concurrency.
// The map is keyed by normalized company name.
func (r *Resolver) ResolveAll(ctx context.Context, names []string) map[string]domain.CompanyProfile {
	seen := make(map[string]string, len(names))
	var keys []string
	for _, n := range names {
		k := domain.NormalizeCompanyName(n)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = n
		keys = append(keys, k)
	}

	results := make([]domain.CompanyProfile, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, k := range keys {
		g.Go(func() error {
			p, err := r.Resolve(gctx, seen[k])
			var cre *errs.CompanyResolutionError
			if err != nil && !errors.As(err, &cre) {
				r.log.Warn("[company] resolve failed", zap.String("company", k), zap.Error(err))
			}
			results[i] = p
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]domain.CompanyProfile, len(keys))
	degraded := 0
	for i, k := range keys {
		out[k] = results[i]
		if results[i].Degraded {
			degraded++
		}
	}
	r.log.Info("[company] resolved",
		zap.Int("companies", len(keys)),
		zap.Int("degraded", degraded))
	return out
}

// Prune removes cached profiles older than the TTL.
func (r *Resolver) Prune(ctx context.Context) (int64, error) {
	return r.store.PruneProfiles(ctx, r.now().Add(-r.ttl))
}

type providerFailure struct {
	provider string
	err      error
}

func (e *providerFailure) Error() string { return e.provider + ": " + e.err.Error() }

func (e *providerFailure) Unwrap() error { return e.err }
