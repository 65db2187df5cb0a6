package util

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeAgeRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(hour|day|week|month)s?\s+ago`)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
}

// ParsePostedDate understands RFC3339, date-only, epoch milliseconds and
// relative ages like "3 days ago". Relative values are resolved against now.
func ParsePostedDate(raw string, now time.Time) (time.Time, bool) {
	raw = CleanText(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}

	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil && ms > 0 {
		return EpochMillis(ms), true
	}

	low := strings.ToLower(raw)
	switch low {
	case "today", "just posted", "just now":
		return now.UTC(), true
	case "yesterday":
		return now.UTC().AddDate(0, 0, -1), true
	}

	if m := relativeAgeRe.FindStringSubmatch(low); m != nil {
		n, _ := strconv.Atoi(m[1])
		t := now.UTC()
		switch m[2] {
		case "hour":
			return t.Add(-time.Duration(n) * time.Hour), true
		case "day":
			return t.AddDate(0, 0, -n), true
		case "week":
			return t.AddDate(0, 0, -7*n), true
		case "month":
			return t.AddDate(0, -n, 0), true
		}
	}
	return time.Time{}, false
}

func EpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
