package scrape

import (
	"strings"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/scrape/types"
	"payrise-engine/internal/strategy"
)

// BuildQuery turns criteria into the board-neutral query every provider gets.
func BuildQuery(c domain.SearchCriteria) types.Query {
	strat, _ := strategy.For(c.CareerField)
	q := types.Query{
		Keywords:    append([]string(nil), strat.Keywords...),
		TitleHints:  strategy.TitleHints(c.ExperienceLevel),
		Remote:      c.RemoteOK,
		Level:       c.ExperienceLevel,
		Industry:    c.IndustryPreference,
		CompanySize: c.CompanySizePreference,
	}
	if c.CurrentSalary > 0 {
		q.MinSalary = c.TargetSalary()
	}
	for _, msa := range c.PreferredMSAs {
		if loc := msaSearchLocation(msa); loc != "" {
			q.Locations = append(q.Locations, loc)
		}
	}
	return q
}

// msaSearchLocation reduces "Austin-Round Rock-Georgetown, TX" to "Austin, TX",
// which is what board location filters understand.
func msaSearchLocation(msa string) string {
	msa = strings.TrimSpace(msa)
	if msa == "" {
		return ""
	}
	name, states, found := strings.Cut(msa, ",")
	city, _, _ := strings.Cut(name, "-")
	city = strings.TrimSpace(city)
	if !found {
		return city
	}
	state, _, _ := strings.Cut(strings.TrimSpace(states), "-")
	if state == "" {
		return city
	}
	return city + ", " + state
}
