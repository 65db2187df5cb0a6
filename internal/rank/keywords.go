package rank

import "payrise-engine/internal/scrape/util"

var seniorityTitleWords = []string{"senior", "sr.", "lead", "principal", "staff", "director", "head of"}

var growthPhrases = []string{
	"growth",
	"mentor",
	"mentorship",
	"leadership",
	"promotion",
	"career development",
	"career path",
	"advancement",
	"learning",
	"manage a team",
}

// benefitCategories group synonyms; each category counts once.
var benefitCategories = map[string][]string{
	"health":        {"health", "healthcare", "medical", "insurance"},
	"retirement":    {"401k", "401(k)", "retirement", "pension"},
	"pto":           {"pto", "paid time off", "vacation", "holidays", "parental leave"},
	"dental_vision": {"dental", "vision"},
}

var flexibilityPhrases = []string{"flexible", "remote", "work from home", "wfh", "hybrid", "4-day", "four-day", "work-life"}

// containsAny and countMatches match whole words, so "ote" never hits
// "remote" and "pto" never hits "laptop".
func containsAny(text string, needles []string) bool {
	return util.ContainsAnyPhrase(text, needles)
}

func countMatches(text string, needles []string) int {
	return util.CountPhrases(text, needles)
}
