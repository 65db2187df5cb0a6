package types

import (
	"context"
	"strings"
	"time"

	"payrise-engine/internal/domain"
)

// Query is what every board is asked for. Providers map it onto their own
// parameters and ignore fields they cannot express.
type Query struct {
	Keywords    []string
	TitleHints  []string
	Locations   []string
	Remote      bool
	MinSalary   float64
	Level       domain.ExperienceLevel
	Industry    string
	CompanySize string
}

// Text is the board search string: the first title hint followed by the
// keywords OR-ed together.
func (q Query) Text() string {
	kw := strings.Join(q.Keywords, " OR ")
	if len(q.TitleHints) == 0 {
		return kw
	}
	if kw == "" {
		return q.TitleHints[0]
	}
	return q.TitleHints[0] + " (" + kw + ")"
}

// Location is the first location or "" for a nationwide search.
func (q Query) Location() string {
	if len(q.Locations) == 0 {
		return ""
	}
	return q.Locations[0]
}

// RawPosting is a posting as a board returned it, before normalization.
// Salary fields already parsed by the provider take precedence over SalaryText.
type RawPosting struct {
	NativeID    string
	Title       string
	Company     string
	Location    string
	SalaryText  string
	SalaryMin   *float64
	SalaryMax   *float64
	Description string
	DescIsHTML  bool
	URL         string
	PostedRaw   string
	PostedAt    time.Time
	Remote      *bool
	CompanySize string
	Industry    string
}

type Provider interface {
	Board() domain.JobBoard
	Fetch(ctx context.Context, q Query) ([]RawPosting, error)
}
