package domain

import (
	"strings"
	"time"
)

// NeutralScore is used for every profile score a provider could not supply.
const NeutralScore = 50.0

type CompanyProfile struct {
	CompanyID           string    `json:"company_id"`
	Name                string    `json:"name"`
	Industry            string    `json:"industry,omitempty"`
	Size                string    `json:"size,omitempty"`
	DiversityScore      float64   `json:"diversity_score"`
	GrowthScore         float64   `json:"growth_score"`
	CultureScore        float64   `json:"culture_score"`
	BenefitsScore       float64   `json:"benefits_score"`
	LeadershipDiversity *float64  `json:"leadership_diversity,omitempty"`
	EmployeeRetention   *float64  `json:"employee_retention,omitempty"`
	GlassdoorRating     *float64  `json:"glassdoor_rating,omitempty"`
	IndeedRating        *float64  `json:"indeed_rating,omitempty"`
	RemoteFriendly      *bool     `json:"remote_friendly,omitempty"`
	Headquarters        string    `json:"headquarters,omitempty"`
	FoundedYear         int       `json:"founded_year,omitempty"`
	FundingStage        string    `json:"funding_stage,omitempty"`
	RevenueBand         string    `json:"revenue_band,omitempty"`
	Website             string    `json:"website,omitempty"`
	Sources             []string  `json:"sources,omitempty"`
	Degraded            bool      `json:"degraded,omitempty"`
	FetchedAt           time.Time `json:"fetched_at"`
}

// Rating averages the external ratings that are present.
func (p CompanyProfile) Rating() (float64, bool) {
	sum, n := 0.0, 0
	for _, r := range []*float64{p.GlassdoorRating, p.IndeedRating} {
		if r != nil {
			sum += *r
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// NeutralProfile is the fallback when no provider could describe the company.
func NeutralProfile(name string) CompanyProfile {
	return CompanyProfile{
		CompanyID:      NormalizeCompanyName(name),
		Name:           strings.TrimSpace(name),
		DiversityScore: NeutralScore,
		GrowthScore:    NeutralScore,
		CultureScore:   NeutralScore,
		BenefitsScore:  NeutralScore,
		Degraded:       true,
	}
}

// NormalizeCompanyName is the cache key for a company.
func NormalizeCompanyName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(s)
}
