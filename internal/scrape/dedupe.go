package scrape

import (
	"sort"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/scrape/util"
)

func dedupeKey(j domain.JobOpportunity) string {
	return util.NormalizeKey(j.Title) + "|" + util.NormalizeKey(j.Company) + "|" + util.NormalizeKey(j.Location)
}

// preferred reports whether a should replace b as the survivor of a
// duplicate group: more salary data, then newer, then the smaller id.
func preferred(a, b domain.JobOpportunity) bool {
	if na, nb := a.SalaryFields(), b.SalaryFields(); na != nb {
		return na > nb
	}
	if !a.PostedDate.Equal(b.PostedDate) {
		return a.PostedDate.After(b.PostedDate)
	}
	return a.JobID < b.JobID
}

// Dedupe collapses postings of the same role seen on several boards and
// returns the survivors sorted by JobID.
func Dedupe(jobs []domain.JobOpportunity) []domain.JobOpportunity {
	best := make(map[string]domain.JobOpportunity, len(jobs))
	for _, j := range jobs {
		k := dedupeKey(j)
		if cur, ok := best[k]; !ok || preferred(j, cur) {
			best[k] = j
		}
	}

	out := make([]domain.JobOpportunity, 0, len(best))
	for _, j := range best {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].JobID < out[k].JobID })
	return out
}
