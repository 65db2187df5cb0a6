package util

import (
	"regexp"
	"strconv"
	"strings"
)

// benefitVocabulary maps a canonical benefit to the phrases that signal it.
var benefitVocabulary = []struct {
	name    string
	phrases []string
}{
	{"health insurance", []string{"health insurance", "medical", "health benefits", "healthcare coverage"}},
	{"dental", []string{"dental"}},
	{"vision", []string{"vision"}},
	{"401k", []string{"401k", "401(k)", "retirement plan", "pension"}},
	{"pto", []string{"pto", "paid time off", "unlimited vacation", "vacation"}},
	{"parental leave", []string{"parental leave", "maternity", "paternity"}},
	{"remote work", []string{"remote", "work from home", "wfh"}},
	{"flexible hours", []string{"flexible hours", "flexible schedule", "flexible working"}},
	{"learning budget", []string{"learning budget", "education stipend", "tuition", "professional development"}},
	{"wellness", []string{"wellness", "gym", "fitness"}},
	{"equity", []string{"equity", "stock option", "rsu"}},
}

var equityPhrases = []string{"equity", "stock option", "rsu", "restricted stock", "espp", "ownership stake"}

var requirementCues = []string{
	"experience", "years", "degree", "bachelor", "master", "proficien",
	"knowledge of", "familiar", "required", "must have", "ability to", "certification",
}

var bonusRe = regexp.MustCompile(`(?i)(\d{1,2}(?:\.\d+)?)\s*%\s*(?:annual\s+|target\s+|performance\s+)?bonus`)

// ExtractBenefits lists canonical benefits mentioned in text, followed by any
// extra keywords present. Phrases match whole words. Order is stable and each
// entry appears once.
func ExtractBenefits(text string, extra []string) []string {
	var out []string
	seen := map[string]bool{}
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, b := range benefitVocabulary {
		if ContainsAnyPhrase(text, b.phrases) {
			add(b.name)
		}
	}
	for _, k := range extra {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && ContainsPhrase(text, k) {
			add(k)
		}
	}
	return out
}

// ExtractRequirements picks bullet lines that read like requirements.
// bullets may come from HTML list items; plain-text bullets in text are also used.
func ExtractRequirements(text string, bullets []string) []string {
	candidates := append([]string(nil), bullets...)
	for _, line := range strings.Split(text, "\n") {
		t := strings.TrimSpace(line)
		for _, marker := range []string{"- ", "* ", "• ", "· "} {
			if strings.HasPrefix(t, marker) {
				candidates = append(candidates, CleanText(strings.TrimPrefix(t, marker)))
				break
			}
		}
	}

	var out []string
	seen := map[string]bool{}
	for _, c := range candidates {
		low := strings.ToLower(c)
		if c == "" || seen[low] || len(c) > 240 {
			continue
		}
		for _, cue := range requirementCues {
			if strings.Contains(low, cue) {
				seen[low] = true
				out = append(out, c)
				break
			}
		}
		if len(out) == 10 {
			break
		}
	}
	return out
}

func MentionsEquity(text string) bool {
	return ContainsAnyPhrase(text, equityPhrases)
}

// BonusPotential returns the first "NN% bonus" as a fraction of base, or 0.
func BonusPotential(text string) float64 {
	m := bonusRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v / 100
}
