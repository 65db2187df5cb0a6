package rank

import (
	"sort"

	"payrise-engine/internal/domain"
)

// Report counts what each hard filter removed.
type Report struct {
	Initial  int
	Unscored int
	Salary   int
	Rating   int
	Equity   int
	Left     int
}

// Rank filters out ineligible jobs and sorts the rest. Its order is the
// only ordering guarantee callers get. A zero current salary has no band to
// check against, so the salary filter is skipped.
func Rank(jobs []domain.ScoredJob, criteria domain.SearchCriteria, maxReasonableIncrease float64) ([]domain.ScoredJob, Report) {
	rep := Report{Initial: len(jobs)}
	upper := criteria.CurrentSalary * (1 + maxReasonableIncrease)

	out := make([]domain.ScoredJob, 0, len(jobs))
	for _, j := range jobs {
		switch {
		case !j.Scored():
			rep.Unscored++
		case criteria.CurrentSalary > 0 && j.Opportunity.SalaryMedian != nil &&
			(*j.Opportunity.SalaryMedian < criteria.CurrentSalary || *j.Opportunity.SalaryMedian > upper):
			rep.Salary++
		case j.CompanyRating != nil && *j.CompanyRating < criteria.MinCompanyRating:
			rep.Rating++
		case criteria.EquityRequired && !j.Opportunity.EquityOffered:
			rep.Equity++
		default:
			out = append(out, j)
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		x, y := out[a].Opportunity, out[b].Opportunity
		if x.OverallScore != y.OverallScore {
			return x.OverallScore > y.OverallScore
		}
		if x.SalaryIncreasePotential != y.SalaryIncreasePotential {
			return x.SalaryIncreasePotential > y.SalaryIncreasePotential
		}
		if !x.PostedDate.Equal(y.PostedDate) {
			return x.PostedDate.After(y.PostedDate)
		}
		return x.JobID < y.JobID
	})

	rep.Left = len(out)
	return out, rep
}
