package rank

import (
	"math"
	"strings"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/strategy"
)

// ladderEpsilon keeps band lower bounds inclusive under float division.
const ladderEpsilon = 1e-9

var salaryLadder = []struct {
	min   float64
	score float64
}{
	{0.45, 100},
	{0.35, 90},
	{0.25, 80},
	{0.15, 70},
	{0.05, 60},
}

// Scorer is pure: the same job, criteria and profile always give the same result.
type Scorer struct {
	Weights Weights
}

func NewScorer(w Weights) (Scorer, error) {
	if err := w.Validate(); err != nil {
		return Scorer{}, err
	}
	return Scorer{Weights: w}, nil
}

// SalaryIncreasePotential is the median's relative increase over current, floored at 0.
func SalaryIncreasePotential(median *float64, current float64) float64 {
	if median == nil || current <= 0 {
		return 0
	}
	return math.Max(0, (*median-current)/current)
}

func SalaryScore(potential float64) float64 {
	for _, band := range salaryLadder {
		if potential+ladderEpsilon >= band.min {
			return band.score
		}
	}
	return 50
}

func (s Scorer) Score(job domain.JobOpportunity, criteria domain.SearchCriteria, profile domain.CompanyProfile) domain.ScoredJob {
	out := job.Clone()
	strat, _ := strategy.For(criteria.CareerField)

	title := strings.ToLower(job.Title)
	desc := strings.ToLower(job.Description)
	benefitText := strings.ToLower(strings.Join(job.Benefits, " ")) + " " + desc

	out.SalaryIncreasePotential = SalaryIncreasePotential(job.SalaryMedian, criteria.CurrentSalary)
	out.SalaryScore = SalaryScore(out.SalaryIncreasePotential)
	out.CareerAdvancementScore = advancementScore(job, title, desc, strat)
	out.WorkLifeBalanceScore = benefitsScore(job, benefitText, strat)
	out.DiversityScore = clamp(profile.DiversityScore)
	out.GrowthScore = clamp(profile.GrowthScore)
	out.CultureScore = clamp(profile.CultureScore)

	w := s.Weights
	overall := clamp(w.Salary*out.SalaryScore +
		w.Advancement*out.CareerAdvancementScore +
		w.Benefits*out.WorkLifeBalanceScore +
		w.Diversity*out.DiversityScore +
		w.Growth*out.GrowthScore +
		w.Culture*out.CultureScore)
	out.OverallScore = overall

	sj := domain.ScoredJob{
		Opportunity:     out,
		BaseScore:       overall,
		MeetsTarget:     job.SalaryMedian != nil && out.SalaryIncreasePotential+ladderEpsilon >= criteria.TargetSalaryIncrease,
		MissingBenefits: missingBenefits(criteria.MustHaveBenefits, benefitText),
	}
	if r, ok := profile.Rating(); ok {
		sj.CompanyRating = domain.Float(r)
	}
	return sj.MarkScored()
}

func advancementScore(job domain.JobOpportunity, title, desc string, strat strategy.Strategy) float64 {
	score := 0.0
	if containsAny(title, seniorityTitleWords) {
		score += 30
	}
	score += math.Min(30, 8*float64(countMatches(desc, growthPhrases)))
	if job.EquityOffered {
		score += 15
	}
	if job.BonusPotential > 0 {
		score += math.Min(15, job.BonusPotential*100)
	}
	score += math.Min(10, 2*float64(countMatches(desc, strat.SalaryKeywords)))
	return clamp(score)
}

func benefitsScore(job domain.JobOpportunity, text string, strat strategy.Strategy) float64 {
	score := math.Min(30, 6*float64(len(job.Benefits)))
	for _, cat := range []string{"health", "retirement", "pto", "dental_vision"} {
		if containsAny(text, benefitCategories[cat]) {
			score += 10
		}
	}
	if job.RemoteFriendly || containsAny(text, flexibilityPhrases) {
		score += 20
	}
	score += math.Min(10, 5*float64(countMatches(text, strat.BenefitsKeywords)))
	return clamp(score)
}

func missingBenefits(want []string, text string) []string {
	var missing []string
	for _, b := range want {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if !containsAny(text, []string{b}) {
			missing = append(missing, b)
		}
	}
	return missing
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
