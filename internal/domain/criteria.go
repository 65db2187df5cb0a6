package domain

import (
	"fmt"
	"math"
	"strings"

	"payrise-engine/internal/errs"
)

// MaxTargetIncrease bounds TargetSalaryIncrease (1000%).
const MaxTargetIncrease = 10.0

type SearchCriteria struct {
	CurrentSalary         float64         `yaml:"current_salary" json:"current_salary"`
	TargetSalaryIncrease  float64         `yaml:"target_salary_increase" json:"target_salary_increase"`
	CareerField           CareerField     `yaml:"career_field" json:"career_field"`
	ExperienceLevel       ExperienceLevel `yaml:"experience_level" json:"experience_level"`
	PreferredMSAs         []string        `yaml:"preferred_msas" json:"preferred_msas"`
	RemoteOK              bool            `yaml:"remote_ok" json:"remote_ok"`
	MaxCommuteTime        int             `yaml:"max_commute_time" json:"max_commute_time"`
	MustHaveBenefits      []string        `yaml:"must_have_benefits" json:"must_have_benefits"`
	CompanySizePreference string          `yaml:"company_size_preference" json:"company_size_preference"`
	IndustryPreference    string          `yaml:"industry_preference" json:"industry_preference"`
	EquityRequired        bool            `yaml:"equity_required" json:"equity_required"`
	MinCompanyRating      float64         `yaml:"min_company_rating" json:"min_company_rating"`
}

// TargetSalary is the salary the search aims for.
func (c SearchCriteria) TargetSalary() float64 {
	return c.CurrentSalary * (1 + c.TargetSalaryIncrease)
}

// Validate reports every problem at once.
func (c SearchCriteria) Validate() error {
	var problems []string

	bad := func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

	if bad(c.CurrentSalary) || c.CurrentSalary < 0 {
		problems = append(problems, "current_salary must be >= 0")
	}
	if bad(c.TargetSalaryIncrease) || c.TargetSalaryIncrease < 0 || c.TargetSalaryIncrease > MaxTargetIncrease {
		problems = append(problems, fmt.Sprintf("target_salary_increase must be within 0..%g", MaxTargetIncrease))
	}
	if !c.CareerField.Valid() {
		problems = append(problems, fmt.Sprintf("career_field %q is not a known field", c.CareerField))
	}
	if !c.ExperienceLevel.Valid() {
		problems = append(problems, fmt.Sprintf("experience_level %q is not a known level", c.ExperienceLevel))
	}
	if c.MaxCommuteTime < 0 {
		problems = append(problems, "max_commute_time must be >= 0")
	}
	if !companySizes[strings.ToLower(strings.TrimSpace(c.CompanySizePreference))] {
		problems = append(problems, fmt.Sprintf("company_size_preference %q is not one of startup/small/medium/large/enterprise", c.CompanySizePreference))
	}
	if bad(c.MinCompanyRating) || c.MinCompanyRating < 0 || c.MinCompanyRating > 5 {
		problems = append(problems, "min_company_rating must be within 0..5")
	}
	for i, m := range c.PreferredMSAs {
		if strings.TrimSpace(m) == "" {
			problems = append(problems, fmt.Sprintf("preferred_msas[%d] cannot be empty", i))
		}
	}

	if len(problems) > 0 {
		return errs.NewValidationError(problems)
	}
	return nil
}
