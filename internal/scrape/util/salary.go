package util

import (
	"regexp"
	"strconv"
	"strings"
)

// HoursPerYear converts hourly pay to an annual figure.
const HoursPerYear = 2080

var salaryNumber = regexp.MustCompile(`(?i)(\$?)\s*(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)\s*(k\b|m\b)?`)

// retirementPlan is removed first so "401k" is never read as $401,000.
var retirementPlan = regexp.MustCompile(`(?i)\b40[13]\s*\(?[kb]\)?`)

var (
	hourlyMarkers  = []string{"/hr", "/hour", "per hour", "an hour", "hourly"}
	monthlyMarkers = []string{"/mo", "per month", "a month", "monthly"}
)

type payPeriod int

const (
	perYear payPeriod = iota
	perMonth
	perHour
)

func (p payPeriod) annualize(v float64) float64 {
	switch p {
	case perHour:
		return v * HoursPerYear
	case perMonth:
		return v * 12
	}
	return v
}

// plausible bounds a raw amount for its period so counts like "3+ years"
// or "team of 12" are never read as pay.
func (p payPeriod) plausible(v float64) bool {
	switch p {
	case perHour:
		return v >= 5 && v < 1_000
	case perMonth:
		return v >= 500 && v < 100_000
	}
	return v >= 1_000
}

func periodOf(s string) payPeriod {
	for _, mk := range hourlyMarkers {
		if strings.Contains(s, mk) {
			return perHour
		}
	}
	for _, mk := range monthlyMarkers {
		if strings.Contains(s, mk) {
			return perMonth
		}
	}
	return perYear
}

// ParseSalary extracts an annual salary range from free text. "$80,000 -
// $120,000" gives (80000, 120000); a single amount gives min == max. Hourly
// and monthly amounts are annualized. Amounts written with "$" or a k/m
// suffix win over bare numbers, and amounts implausible for the pay period
// are skipped. ok is false when no amount is left.
func ParseSalary(raw string) (min, max float64, ok bool) {
	s := strings.ToLower(CleanText(raw))
	if s == "" {
		return 0, 0, false
	}
	s = retirementPlan.ReplaceAllString(s, " ")
	period := periodOf(s)

	vals := amounts(s, period)
	if len(vals) == 0 && period != perYear {
		// "monthly bonus" or "hourly breaks" next to an annual figure
		period = perYear
		vals = amounts(s, period)
	}
	switch len(vals) {
	case 0:
		return 0, 0, false
	case 1:
		v := period.annualize(vals[0])
		return v, v, true
	}
	min, max = period.annualize(vals[0]), period.annualize(vals[1])
	if min > max {
		min, max = max, min
	}
	return min, max, true
}

// amounts returns the plausible amounts in s for period, preferring ones
// written with "$" or a k/m suffix.
func amounts(s string, period payPeriod) []float64 {
	var marked, bare []float64
	for _, m := range salaryNumber.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
		if err != nil {
			continue
		}
		switch m[3] {
		case "k":
			v *= 1_000
		case "m":
			v *= 1_000_000
		}
		if !period.plausible(v) {
			continue
		}
		if m[1] != "" || m[3] != "" {
			marked = append(marked, v)
		} else {
			bare = append(bare, v)
		}
	}
	if len(marked) > 0 {
		return marked
	}
	return bare
}

// SalaryPointers turns a parsed range into the nullable fields of an
// opportunity, deriving the median.
func SalaryPointers(min, max float64, ok bool) (pmin, pmax, pmedian *float64) {
	if !ok {
		return nil, nil, nil
	}
	med := (min + max) / 2
	return &min, &max, &med
}
