package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"payrise-engine/internal/company"
	"payrise-engine/internal/domain"
	"payrise-engine/internal/errs"
	"payrise-engine/internal/rank"
	"payrise-engine/internal/scrape/types"
	"payrise-engine/internal/store"
)

type fakeBoard struct {
	board domain.JobBoard
	posts []types.RawPosting
	err   error
	block bool
	calls atomic.Int32
}

func (f *fakeBoard) Board() domain.JobBoard { return f.board }

func (f *fakeBoard) Fetch(ctx context.Context, q types.Query) ([]types.RawPosting, error) {
	f.calls.Add(1)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.posts, f.err
}

type staticFacts struct{ f company.Facts }

func (s staticFacts) Name() string { return "static" }

func (s staticFacts) Fetch(context.Context, string) (company.Facts, error) { return s.f, nil }

func pay(v float64) *float64 { return &v }

func criteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		CurrentSalary:        100000,
		TargetSalaryIncrease: 0.2,
		CareerField:          domain.FieldTechnology,
		ExperienceLevel:      domain.LevelSenior,
		PreferredMSAs:        []string{"Austin-Round Rock-Georgetown, TX"},
		RemoteOK:             true,
	}
}

func testOptions() Options {
	o := DefaultOptions()
	o.ProviderTimeout = 50 * time.Millisecond
	o.RunTimeout = 5 * time.Second
	return o
}

func newEngine(t *testing.T, providers ...types.Provider) *Engine {
	t.Helper()
	score := 70.0
	resolver := company.NewResolver(store.NewMemory(),
		[]company.Provider{staticFacts{company.Facts{DiversityScore: &score, GrowthScore: &score, CultureScore: &score}}},
		company.Options{}, zaptest.NewLogger(t))
	e, err := New(testOptions(), providers, resolver, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestFindOpportunitiesWithProviderTimeout(t *testing.T) {
	indeed := &fakeBoard{board: domain.BoardIndeed, posts: []types.RawPosting{
		{NativeID: "a", Title: "Senior Backend Engineer", Company: "Acme Corp", Location: "Austin, TX",
			SalaryMin: pay(140000), SalaryMax: pay(150000)},
	}}
	linkedin := &fakeBoard{board: domain.BoardLinkedIn, block: true}
	glassdoor := &fakeBoard{board: domain.BoardGlassdoor, posts: []types.RawPosting{
		{NativeID: "b", Title: "Platform Engineer", Company: "Globex", Location: "Denver, CO", SalaryText: "$103,000"},
	}}

	jobs, perrs, err := newEngine(t, indeed, linkedin, glassdoor).FindOpportunities(context.Background(), criteria())
	if err != nil {
		t.Fatalf("FindOpportunities: %v", err)
	}
	if len(perrs) != 1 || perrs[0].Board != "linkedin" || perrs[0].Kind != errs.KindTimeout {
		t.Fatalf("provider errors = %v", perrs)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 ranked jobs, got %d", len(jobs))
	}
	if jobs[0].Opportunity.JobID != "indeed_a" || jobs[1].Opportunity.JobID != "glassdoor_b" {
		t.Fatalf("order = %s, %s", jobs[0].Opportunity.JobID, jobs[1].Opportunity.JobID)
	}

	top := jobs[0]
	if top.Opportunity.SalaryScore != 100 || !top.MeetsTarget {
		t.Fatalf("top job salary scoring: %+v", top)
	}
	if top.Opportunity.OverallScore != top.BaseScore+rank.DefaultBoosts.MSA {
		t.Fatalf("MSA boost not applied: base=%v overall=%v", top.BaseScore, top.Opportunity.OverallScore)
	}
	if top.Opportunity.DiversityScore != 70 {
		t.Fatalf("company profile not used: %+v", top.Opportunity)
	}
	if jobs[1].Opportunity.SalaryScore != 50 || jobs[1].MeetsTarget {
		t.Fatalf("second job salary scoring: %+v", jobs[1])
	}
}

func TestFindOpportunitiesAllProvidersDown(t *testing.T) {
	e := newEngine(t,
		&fakeBoard{board: domain.BoardIndeed, err: errors.New("dial tcp: connection refused")},
		&fakeBoard{board: domain.BoardLinkedIn, err: &errs.StatusError{Status: 500}},
	)
	jobs, perrs, err := e.FindOpportunities(context.Background(), criteria())
	if err != nil {
		t.Fatalf("FindOpportunities: %v", err)
	}
	if len(jobs) != 0 || len(perrs) != 2 {
		t.Fatalf("jobs=%d perrs=%d", len(jobs), len(perrs))
	}
}

func TestFindOpportunitiesRejectsInvalidCriteria(t *testing.T) {
	board := &fakeBoard{board: domain.BoardIndeed}
	c := criteria()
	c.CurrentSalary = -1

	_, _, err := newEngine(t, board).FindOpportunities(context.Background(), c)
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if board.calls.Load() != 0 {
		t.Fatal("provider called for invalid criteria")
	}
}

func TestFindOpportunitiesAppliesHardFilters(t *testing.T) {
	c := criteria()
	c.EquityRequired = true
	board := &fakeBoard{board: domain.BoardIndeed, posts: []types.RawPosting{
		{NativeID: "eq", Title: "Engineer", Company: "A", Description: "Equity and RSUs", SalaryText: "$130,000"},
		{NativeID: "noeq", Title: "Engineer II", Company: "B", SalaryText: "$130,000"},
		{NativeID: "low", Title: "Engineer III", Company: "C", Description: "equity", SalaryText: "$90,000"},
		{NativeID: "high", Title: "Engineer IV", Company: "D", Description: "equity", SalaryText: "$250,000"},
	}}

	jobs, _, err := newEngine(t, board).FindOpportunities(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 || jobs[0].Opportunity.JobID != "indeed_eq" {
		t.Fatalf("unexpected survivors: %+v", jobs)
	}
}

func TestFindOpportunitiesWithoutResolver(t *testing.T) {
	board := &fakeBoard{board: domain.BoardIndeed, posts: []types.RawPosting{
		{NativeID: "1", Title: "Engineer", Company: "Acme"},
	}}
	e, err := New(testOptions(), []types.Provider{board}, nil, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	jobs, _, err := e.FindOpportunities(context.Background(), criteria())
	if err != nil || len(jobs) != 1 {
		t.Fatalf("jobs=%d err=%v", len(jobs), err)
	}
	if jobs[0].Opportunity.CultureScore != domain.NeutralScore {
		t.Fatalf("expected neutral culture score, got %v", jobs[0].Opportunity.CultureScore)
	}
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"weights do not sum to one", func(o *Options) { o.Weights.Salary = 0.9 }},
		{"negative weight", func(o *Options) { o.Weights.Culture = -0.05; o.Weights.Salary = 0.45 }},
		{"negative boost", func(o *Options) { o.Boosts.Remote = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			_, err := New(o, nil, nil, nil)
			var ce *errs.ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
		})
	}
}
