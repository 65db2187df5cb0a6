package domain

import (
	"slices"
	"time"
)

type JobOpportunity struct {
	JobID           string    `json:"job_id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	MSA             string    `json:"msa,omitempty"`
	SalaryMin       *float64  `json:"salary_min,omitempty"`
	SalaryMax       *float64  `json:"salary_max,omitempty"`
	SalaryMedian    *float64  `json:"salary_median,omitempty"`
	RemoteFriendly  bool      `json:"remote_friendly"`
	JobBoard        JobBoard  `json:"job_board"`
	URL             string    `json:"url"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements,omitempty"`
	Benefits        []string  `json:"benefits,omitempty"`
	PostedDate      time.Time `json:"posted_date"`
	CompanySize     string    `json:"company_size,omitempty"`
	CompanyIndustry string    `json:"company_industry,omitempty"`
	EquityOffered   bool      `json:"equity_offered"`
	BonusPotential  float64   `json:"bonus_potential"`

	// SalaryIncreasePotential is a ratio over the current salary, not a 0-100 score.
	SalaryIncreasePotential float64 `json:"salary_increase_potential"`
	SalaryScore             float64 `json:"salary_score"`
	DiversityScore          float64 `json:"diversity_score"`
	GrowthScore             float64 `json:"growth_score"`
	CultureScore            float64 `json:"culture_score"`
	CareerAdvancementScore  float64 `json:"career_advancement_score"`
	WorkLifeBalanceScore    float64 `json:"work_life_balance_score"`
	OverallScore            float64 `json:"overall_score"`
}

// SalaryFields counts how many of min/max/median are known.
func (j JobOpportunity) SalaryFields() int {
	n := 0
	for _, p := range []*float64{j.SalaryMin, j.SalaryMax, j.SalaryMedian} {
		if p != nil {
			n++
		}
	}
	return n
}

// Clone returns a copy that shares no slices or pointers with j.
func (j JobOpportunity) Clone() JobOpportunity {
	out := j
	out.SalaryMin = clonePtr(j.SalaryMin)
	out.SalaryMax = clonePtr(j.SalaryMax)
	out.SalaryMedian = clonePtr(j.SalaryMedian)
	out.Requirements = slices.Clone(j.Requirements)
	out.Benefits = slices.Clone(j.Benefits)
	return out
}

// ScoredJob is an opportunity after the scorer ran.
type ScoredJob struct {
	Opportunity     JobOpportunity `json:"opportunity"`
	BaseScore       float64        `json:"base_score"`
	CompanyRating   *float64       `json:"company_rating,omitempty"`
	MeetsTarget     bool           `json:"meets_target"`
	MissingBenefits []string       `json:"missing_benefits,omitempty"`

	scored bool
}

// MarkScored is called by the scorer once every score field is set.
func (s ScoredJob) MarkScored() ScoredJob {
	s.scored = true
	return s
}

func (s ScoredJob) Scored() bool { return s.scored }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
