package util

import "strings"

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// NormalizeKey folds s for equality checks: cleaned and lowercased.
func NormalizeKey(s string) string {
	return strings.ToLower(CleanText(s))
}

func NormalizeLocation(loc string) string {
	loc = CleanText(loc)
	if loc == "" {
		return ""
	}

	for _, p := range []string{"Location:", "LOCATION:", "Locations:", "LOCATIONS:"} {
		loc = strings.TrimPrefix(loc, p)
	}
	loc = strings.TrimSpace(loc)

	parts := strings.Split(loc, ",")
	seen := map[string]bool{}
	var out []string
	for _, p := range parts {
		p = CleanText(p)
		if p == "" {
			continue
		}
		k := strings.ToLower(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}

// IsRemote reports whether the location or title advertises remote work.
// Descriptions are not consulted: "no remote" in body copy is too common.
func IsRemote(location, title string) bool {
	blob := strings.ToLower(location + " " + title)
	switch {
	case strings.Contains(blob, "remote"):
		return true
	case strings.Contains(blob, "work from home") || strings.Contains(blob, "wfh"):
		return true
	case strings.Contains(blob, "anywhere"):
		return true
	default:
		return false
	}
}
