package rank

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/errs"
)

func criteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		CurrentSalary:        100000,
		TargetSalaryIncrease: 0.25,
		CareerField:          domain.FieldTechnology,
		ExperienceLevel:      domain.LevelSenior,
		RemoteOK:             true,
	}
}

func jobWithMedian(median float64) domain.JobOpportunity {
	return domain.JobOpportunity{
		JobID:        "indeed_1",
		Title:        "Software Engineer",
		Company:      "Acme Corp",
		SalaryMin:    domain.Float(median),
		SalaryMax:    domain.Float(median),
		SalaryMedian: domain.Float(median),
		PostedDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSalaryScoreLadder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target float64
		want   float64
	}{
		{name: "exact 45 percent is inclusive", target: 145000, want: 100},
		{name: "35 percent", target: 135000, want: 90},
		{name: "just under 35 percent", target: 134999, want: 80},
		{name: "25 percent", target: 125000, want: 80},
		{name: "15 percent", target: 115000, want: 70},
		{name: "5 percent", target: 105000, want: 60},
		{name: "below 5 percent", target: 103000, want: 50},
		{name: "pay cut", target: 90000, want: 50},
	}

	s, err := NewScorer(DefaultWeights)
	if err != nil {
		t.Fatal(err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := s.Score(jobWithMedian(tt.target), criteria(), domain.NeutralProfile("Acme Corp"))
			if got.Opportunity.SalaryScore != tt.want {
				t.Fatalf("salary score = %v, want %v", got.Opportunity.SalaryScore, tt.want)
			}
		})
	}
}

func TestSalaryIncreasePotential(t *testing.T) {
	if got := SalaryIncreasePotential(nil, 100000); got != 0 {
		t.Fatalf("nil median = %v, want 0", got)
	}
	if got := SalaryIncreasePotential(domain.Float(80000), 100000); got != 0 {
		t.Fatalf("pay cut = %v, want 0", got)
	}
	if got := SalaryIncreasePotential(domain.Float(150000), 0); got != 0 {
		t.Fatalf("zero current = %v, want 0", got)
	}
	if got := SalaryIncreasePotential(domain.Float(120000), 100000); got < 0.1999 || got > 0.2001 {
		t.Fatalf("potential = %v, want 0.2", got)
	}
}

func TestScoresStayInRange(t *testing.T) {
	s := Scorer{Weights: DefaultWeights}
	loaded := domain.JobOpportunity{
		JobID:          "linkedin_9",
		Title:          "Senior Principal Staff Lead Engineer",
		Description:    "growth mentor leadership promotion career development career path advancement learning rsu equity stock signing bonus total compensation remote flexible",
		Benefits:       []string{"health", "dental", "vision", "401k", "pto", "learning budget", "home office", "conference", "gym"},
		EquityOffered:  true,
		BonusPotential: 0.5,
		RemoteFriendly: true,
		SalaryMedian:   domain.Float(1e7),
	}
	profile := domain.CompanyProfile{DiversityScore: 250, GrowthScore: -10, CultureScore: 100}

	for _, j := range []domain.JobOpportunity{loaded, {JobID: "indeed_empty"}} {
		got := s.Score(j, criteria(), profile).Opportunity
		for name, v := range map[string]float64{
			"salary":      got.SalaryScore,
			"advancement": got.CareerAdvancementScore,
			"benefits":    got.WorkLifeBalanceScore,
			"diversity":   got.DiversityScore,
			"growth":      got.GrowthScore,
			"culture":     got.CultureScore,
			"overall":     got.OverallScore,
		} {
			if v < 0 || v > 100 {
				t.Errorf("%s %s = %v, out of [0,100]", j.JobID, name, v)
			}
		}
		if got.SalaryIncreasePotential < 0 {
			t.Errorf("%s potential = %v", j.JobID, got.SalaryIncreasePotential)
		}
	}
}

func TestScoreIsDeterministicAndDoesNotMutate(t *testing.T) {
	s := Scorer{Weights: DefaultWeights}
	job := jobWithMedian(130000)
	job.Benefits = []string{"health", "401k"}
	job.Description = "Mentor junior engineers. Flexible hours."
	before := job.Clone()
	c := criteria()
	p := domain.NeutralProfile("Acme Corp")

	a := s.Score(job, c, p)
	b := s.Score(job, c, p)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("scoring not deterministic:\n%+v\n%+v", a, b)
	}
	if !reflect.DeepEqual(job, before) {
		t.Fatal("Score mutated its input")
	}
	a.Opportunity.Benefits[0] = "changed"
	if job.Benefits[0] != "health" {
		t.Fatal("scored job aliases input benefits")
	}
}

func TestOverallIsWeightedSum(t *testing.T) {
	s := Scorer{Weights: DefaultWeights}
	p := domain.CompanyProfile{DiversityScore: 80, GrowthScore: 60, CultureScore: 40}
	got := s.Score(jobWithMedian(145000), criteria(), p).Opportunity

	want := 0.35*got.SalaryScore + 0.25*got.CareerAdvancementScore + 0.15*got.WorkLifeBalanceScore +
		0.10*80 + 0.10*60 + 0.05*40
	if diff := got.OverallScore - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("overall = %v, want %v", got.OverallScore, want)
	}
}

func TestAdvancementSignals(t *testing.T) {
	s := Scorer{Weights: DefaultWeights}
	plain := s.Score(domain.JobOpportunity{Title: "Engineer"}, criteria(), domain.NeutralProfile("x")).Opportunity
	senior := s.Score(domain.JobOpportunity{
		Title:          "Senior Engineer",
		Description:    "clear promotion path and mentorship",
		EquityOffered:  true,
		BonusPotential: 0.10,
	}, criteria(), domain.NeutralProfile("x")).Opportunity

	if plain.CareerAdvancementScore != 0 {
		t.Fatalf("plain advancement = %v, want 0", plain.CareerAdvancementScore)
	}
	// 30 title + 2 phrases*8 + 15 equity + 10 bonus
	if senior.CareerAdvancementScore != 71 {
		t.Fatalf("senior advancement = %v, want 71", senior.CareerAdvancementScore)
	}
}

func TestKeywordsMatchWholeWords(t *testing.T) {
	s := Scorer{Weights: DefaultWeights}
	c := criteria()
	c.CareerField = domain.FieldSales
	c.RemoteOK = false

	got := s.Score(domain.JobOpportunity{
		Title:       "Analyst, misleading-claims team",
		Description: "we promote a laptop culture under close supervision",
	}, c, domain.NeutralProfile("x")).Opportunity

	if got.CareerAdvancementScore != 0 {
		t.Fatalf("advancement = %v, want 0", got.CareerAdvancementScore)
	}
	if got.WorkLifeBalanceScore != 0 {
		t.Fatalf("benefits = %v, want 0", got.WorkLifeBalanceScore)
	}

	quota := s.Score(domain.JobOpportunity{
		Title:       "Lead Account Executive",
		Description: "OTE $240k, uncapped commission",
	}, c, domain.NeutralProfile("x")).Opportunity
	// 30 title + 3 sales keywords*2
	if quota.CareerAdvancementScore != 36 {
		t.Fatalf("advancement = %v, want 36", quota.CareerAdvancementScore)
	}
}

func TestBenefitsBreadth(t *testing.T) {
	s := Scorer{Weights: DefaultWeights}
	got := s.Score(domain.JobOpportunity{
		Benefits: []string{"Medical insurance", "401(k) match", "Unlimited PTO", "Dental and vision"},
	}, criteria(), domain.NeutralProfile("x")).Opportunity

	// 4*6 count + 4 categories*10
	if got.WorkLifeBalanceScore != 64 {
		t.Fatalf("benefits = %v, want 64", got.WorkLifeBalanceScore)
	}
}

func TestMeetsTargetAndMissingBenefits(t *testing.T) {
	s := Scorer{Weights: DefaultWeights}
	c := criteria()
	c.MustHaveBenefits = []string{"dental", "sabbatical"}
	job := jobWithMedian(126000)
	job.Benefits = []string{"Dental"}

	got := s.Score(job, c, domain.NeutralProfile("x"))
	if !got.MeetsTarget {
		t.Fatal("26% increase should meet a 25% target")
	}
	if len(got.MissingBenefits) != 1 || got.MissingBenefits[0] != "sabbatical" {
		t.Fatalf("missing benefits = %v", got.MissingBenefits)
	}
	if !got.Scored() {
		t.Fatal("scored flag not set")
	}
}

func TestCompanyRatingCopied(t *testing.T) {
	s := Scorer{Weights: DefaultWeights}
	p := domain.NeutralProfile("x")
	p.GlassdoorRating = domain.Float(4.2)
	got := s.Score(jobWithMedian(120000), criteria(), p)
	if got.CompanyRating == nil || *got.CompanyRating != 4.2 {
		t.Fatalf("company rating = %v", got.CompanyRating)
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights.Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}

	bad := DefaultWeights
	bad.Culture = 0.06
	_, err := NewScorer(bad)
	var ce *errs.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}

	negative := DefaultWeights
	negative.Salary = 0.45
	negative.Culture = -0.05
	if err := negative.Validate(); err == nil {
		t.Fatal("negative weight accepted")
	}

	nearly := DefaultWeights
	nearly.Culture += 5e-7
	if err := nearly.Validate(); err != nil {
		t.Fatalf("weights within tolerance rejected: %v", err)
	}
}
