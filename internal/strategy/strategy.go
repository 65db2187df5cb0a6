// Package strategy is the per-field vocabulary used to query boards and score postings.
package strategy

import (
	"fmt"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/errs"
)

type Strategy struct {
	Keywords         []string
	SalaryKeywords   []string
	BenefitsKeywords []string
}

// For returns the strategy for field. ok is false only for a field that is
// missing from the switch, which Validate reports at startup.
func For(field domain.CareerField) (Strategy, bool) {
	switch field {
	case domain.FieldTechnology:
		return Strategy{
			Keywords:         []string{"software engineer", "developer", "devops", "sre", "cloud", "backend", "platform"},
			SalaryKeywords:   []string{"rsu", "equity", "signing bonus", "stock", "total compensation"},
			BenefitsKeywords: []string{"remote", "learning budget", "home office", "conference"},
		}, true
	case domain.FieldFinance:
		return Strategy{
			Keywords:         []string{"financial analyst", "controller", "fp&a", "accountant", "treasury", "investment"},
			SalaryKeywords:   []string{"annual bonus", "carry", "profit sharing", "incentive"},
			BenefitsKeywords: []string{"cfa", "cpa", "tuition", "401k match"},
		}, true
	case domain.FieldHealthcare:
		return Strategy{
			Keywords:         []string{"nurse", "physician", "clinical", "healthcare administrator", "pharmacist", "therapist"},
			SalaryKeywords:   []string{"shift differential", "sign-on bonus", "relocation", "overtime"},
			BenefitsKeywords: []string{"ceu", "malpractice", "licensure", "pension"},
		}, true
	case domain.FieldMarketing:
		return Strategy{
			Keywords:         []string{"marketing manager", "growth", "brand", "content", "seo", "demand generation"},
			SalaryKeywords:   []string{"performance bonus", "equity", "incentive"},
			BenefitsKeywords: []string{"flexible", "remote", "wellness", "learning budget"},
		}, true
	case domain.FieldSales:
		return Strategy{
			Keywords:         []string{"account executive", "sales manager", "business development", "account manager"},
			SalaryKeywords:   []string{"ote", "commission", "uncapped", "accelerators", "quota"},
			BenefitsKeywords: []string{"car allowance", "president's club", "phone stipend"},
		}, true
	case domain.FieldEngineering:
		return Strategy{
			Keywords:         []string{"mechanical engineer", "electrical engineer", "civil engineer", "process engineer", "hardware"},
			SalaryKeywords:   []string{"relocation", "bonus", "stock"},
			BenefitsKeywords: []string{"pe license", "tuition", "pension"},
		}, true
	case domain.FieldDataScience:
		return Strategy{
			Keywords:         []string{"data scientist", "machine learning", "data engineer", "analytics", "ml engineer"},
			SalaryKeywords:   []string{"rsu", "equity", "bonus", "stock"},
			BenefitsKeywords: []string{"remote", "conference", "learning budget", "gpu"},
		}, true
	case domain.FieldDesign:
		return Strategy{
			Keywords:         []string{"product designer", "ux", "ui designer", "design lead", "researcher"},
			SalaryKeywords:   []string{"equity", "bonus", "stock"},
			BenefitsKeywords: []string{"equipment", "remote", "flexible", "learning budget"},
		}, true
	}
	return Strategy{}, false
}

// Validate checks that every career field has a usable entry.
func Validate() error {
	var problems []string
	for _, f := range domain.AllCareerFields {
		s, ok := For(f)
		if !ok {
			problems = append(problems, fmt.Sprintf("strategy missing for career field %q", f))
			continue
		}
		if len(s.Keywords) == 0 {
			problems = append(problems, fmt.Sprintf("strategy for %q has no keywords", f))
		}
	}
	if len(problems) > 0 {
		return errs.NewConfigurationError(problems...)
	}
	return nil
}

// TitleHints are seniority words added to a board query.
func TitleHints(level domain.ExperienceLevel) []string {
	switch level {
	case domain.LevelEntry:
		return []string{"junior", "associate"}
	case domain.LevelMid:
		return nil
	case domain.LevelSenior:
		return []string{"senior"}
	case domain.LevelLead:
		return []string{"lead", "principal", "staff"}
	case domain.LevelExecutive:
		return []string{"director", "head of", "vp"}
	}
	return nil
}
