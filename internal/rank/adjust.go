package rank

import (
	"math"
	"strings"

	"payrise-engine/internal/domain"
)

// Adjust applies MSA and remote boosts on top of each job's BaseScore.
// Re-applying it gives the same result because BaseScore is never changed.
func Adjust(jobs []domain.ScoredJob, preferredMSAs []string, remoteOK bool, b Boosts) []domain.ScoredJob {
	preferred := make(map[string]bool, len(preferredMSAs))
	for _, m := range preferredMSAs {
		if k := normalizeMSA(m); k != "" {
			preferred[k] = true
		}
	}

	out := make([]domain.ScoredJob, len(jobs))
	for i, j := range jobs {
		score := j.BaseScore
		if msa := normalizeMSA(j.Opportunity.MSA); msa != "" && preferred[msa] {
			score += b.MSA
		}
		if remoteOK && j.Opportunity.RemoteFriendly {
			score += b.Remote
		}
		j.Opportunity.OverallScore = math.Min(100, score)
		out[i] = j
	}
	return out
}

func normalizeMSA(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
