package company

import (
	"strings"
	"time"

	"payrise-engine/internal/domain"
)

// Facts is what one company-data provider knows. Unknown values are nil or
// empty so that merging can tell "not reported" from zero.
type Facts struct {
	Name                string   `json:"name"`
	Industry            string   `json:"industry"`
	Size                string   `json:"size"`
	DiversityScore      *float64 `json:"diversityScore"`
	GrowthScore         *float64 `json:"growthScore"`
	CultureScore        *float64 `json:"cultureScore"`
	BenefitsScore       *float64 `json:"benefitsScore"`
	LeadershipDiversity *float64 `json:"leadershipDiversity"`
	EmployeeRetention   *float64 `json:"employeeRetention"`
	GlassdoorRating     *float64 `json:"glassdoorRating"`
	IndeedRating        *float64 `json:"indeedRating"`
	RemoteFriendly      *bool    `json:"remoteFriendly"`
	Headquarters        string   `json:"headquarters"`
	FoundedYear         int      `json:"foundedYear"`
	FundingStage        string   `json:"fundingStage"`
	RevenueBand         string   `json:"revenueBand"`
	Website             string   `json:"website"`
}

type sourcedFacts struct {
	source string
	facts  Facts
}

// merge builds a profile from facts in provider priority order: the first
// provider to report a field wins it. Scores nobody reported stay neutral.
func merge(name string, in []sourcedFacts, now time.Time) domain.CompanyProfile {
	var m Facts
	var sources []string
	for _, sf := range in {
		f := sf.facts
		sources = append(sources, sf.source)

		firstString(&m.Name, f.Name)
		firstString(&m.Industry, f.Industry)
		firstString(&m.Size, f.Size)
		firstString(&m.Headquarters, f.Headquarters)
		firstString(&m.FundingStage, f.FundingStage)
		firstString(&m.RevenueBand, f.RevenueBand)
		firstString(&m.Website, f.Website)
		firstPtr(&m.DiversityScore, f.DiversityScore)
		firstPtr(&m.GrowthScore, f.GrowthScore)
		firstPtr(&m.CultureScore, f.CultureScore)
		firstPtr(&m.BenefitsScore, f.BenefitsScore)
		firstPtr(&m.LeadershipDiversity, f.LeadershipDiversity)
		firstPtr(&m.EmployeeRetention, f.EmployeeRetention)
		firstPtr(&m.GlassdoorRating, f.GlassdoorRating)
		firstPtr(&m.IndeedRating, f.IndeedRating)
		firstPtr(&m.RemoteFriendly, f.RemoteFriendly)
		if m.FoundedYear == 0 {
			m.FoundedYear = f.FoundedYear
		}
	}

	p := domain.NeutralProfile(name)
	p.Degraded = false
	if m.Name != "" {
		p.Name = m.Name
	}
	p.Industry = m.Industry
	p.Size = strings.ToLower(m.Size)
	p.Headquarters = m.Headquarters
	p.FundingStage = m.FundingStage
	p.RevenueBand = m.RevenueBand
	p.Website = m.Website
	p.FoundedYear = m.FoundedYear
	p.DiversityScore = scoreOr(m.DiversityScore)
	p.GrowthScore = scoreOr(m.GrowthScore)
	p.CultureScore = scoreOr(m.CultureScore)
	p.BenefitsScore = scoreOr(m.BenefitsScore)
	p.LeadershipDiversity = m.LeadershipDiversity
	p.EmployeeRetention = m.EmployeeRetention
	p.GlassdoorRating = m.GlassdoorRating
	p.IndeedRating = m.IndeedRating
	p.RemoteFriendly = m.RemoteFriendly
	p.Sources = sources
	p.FetchedAt = now.UTC()
	return p
}

func firstString(dst *string, v string) {
	if *dst == "" {
		*dst = strings.TrimSpace(v)
	}
}

func firstPtr[T any](dst **T, v *T) {
	if *dst == nil && v != nil {
		c := *v
		*dst = &c
	}
}

func scoreOr(v *float64) float64 {
	if v == nil {
		return domain.NeutralScore
	}
	return min(100, max(0, *v))
}
