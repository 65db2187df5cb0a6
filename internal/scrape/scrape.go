// Package scrape fans a search out to the job boards and turns what they
// return into deduplicated opportunities.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/errs"
	"payrise-engine/internal/scrape/types"
	"payrise-engine/internal/strategy"
)

const DefaultProviderTimeout = 10 * time.Second

var tracer = otel.Tracer("payrise-engine/scrape")

type Aggregator struct {
	ProviderTimeout time.Duration
	Log             *zap.Logger
	Now             func() time.Time
}

func NewAggregator(providerTimeout time.Duration, log *zap.Logger) *Aggregator {
	if providerTimeout <= 0 {
		providerTimeout = DefaultProviderTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{ProviderTimeout: providerTimeout, Log: log, Now: time.Now}
}

type fetchResult struct {
	posts []types.RawPosting
	err   error
}

// Search queries every provider concurrently. A failing provider never stops
// its siblings; its failure comes back as a ProviderError and any postings it
// returned alongside the error are kept.
func (a *Aggregator) Search(ctx context.Context, criteria domain.SearchCriteria, providers []types.Provider) ([]domain.JobOpportunity, []*errs.ProviderError) {
	ctx, span := tracer.Start(ctx, "Aggregator.Search")
	defer span.End()
	span.SetAttributes(attribute.Int("providers", len(providers)))

	q := BuildQuery(criteria)
	strat, _ := strategy.For(criteria.CareerField)

	slots := make([]fetchResult, len(providers))
	var g errgroup.Group
	for i, p := range providers {
		g.Go(func() error {
			slots[i] = a.fetch(ctx, p, q)
			return nil // best-effort: don't cancel siblings
		})
	}
	_ = g.Wait()

	now := a.Now()
	var all []domain.JobOpportunity
	var perrs []*errs.ProviderError
	for i, p := range providers {
		board := p.Board()
		res := slots[i]
		if res.err != nil {
			pe := errs.NewProviderError(string(board), res.err)
			a.Log.Warn("[aggregate] provider failed",
				zap.String("board", string(board)),
				zap.String("kind", string(pe.Kind)),
				zap.Int("status", pe.Status),
				zap.Error(res.err))
			perrs = append(perrs, pe)
		}

		kept, dropped := 0, 0
		for _, rp := range res.posts {
			job, ok := Normalize(board, rp, now, strat.BenefitsKeywords)
			if !ok {
				dropped++
				continue
			}
			all = append(all, job)
			kept++
		}
		a.Log.Info("[aggregate] provider done",
			zap.String("board", string(board)),
			zap.Int("kept", kept),
			zap.Int("dropped", dropped))
	}

	out := Dedupe(all)
	if len(perrs) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d provider(s) failed", len(perrs)))
	}
	span.SetAttributes(attribute.Int("postings", len(all)), attribute.Int("unique", len(out)))
	a.Log.Info("[aggregate] merged",
		zap.Int("postings", len(all)),
		zap.Int("unique", len(out)),
		zap.Int("failed_providers", len(perrs)))
	return out, perrs
}

// fetch runs one provider under its own timeout. A provider that ignores
// cancellation is abandoned when the timeout fires.
func (a *Aggregator) fetch(ctx context.Context, p types.Provider, q types.Query) fetchResult {
	board := string(p.Board())
	ctx, span := tracer.Start(ctx, "Provider.Fetch", trace.WithAttributes(attribute.String("board", board)))
	defer span.End()

	fctx, cancel := context.WithTimeout(ctx, a.ProviderTimeout)
	defer cancel()

	done := make(chan fetchResult, 1)
	go func() {
		posts, err := p.Fetch(fctx, q)
		done <- fetchResult{posts: posts, err: err}
	}()

	var res fetchResult
	select {
	case res = <-done:
	case <-fctx.Done():
		res = fetchResult{err: fctx.Err()}
	}

	// surface the deadline rather than whatever the transport wrapped it in
	if ctxErr := fctx.Err(); ctxErr != nil && res.err != nil && !errors.Is(res.err, ctxErr) {
		res.err = fmt.Errorf("%w: %w", ctxErr, res.err)
	}
	if res.err != nil {
		span.RecordError(res.err)
		span.SetStatus(codes.Error, "fetch failed")
	}
	span.SetAttributes(attribute.Int("postings", len(res.posts)))
	return res
}
