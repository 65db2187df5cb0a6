// Package linkedin queries the LinkedIn job search API.
package linkedin

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/scrape/types"
	"payrise-engine/internal/scrape/util"
)

type Config struct {
	BaseURL string
	APIKey  string
}

type Provider struct {
	cfg    Config
	client *util.Client
}

func New(cfg Config, client *util.Client) *Provider {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Provider{cfg: cfg, client: client}
}

func (p *Provider) Board() domain.JobBoard { return domain.BoardLinkedIn }

type element struct {
	JobPostingID      string `json:"jobPostingId"`
	Title             string `json:"title"`
	CompanyName       string `json:"companyName"`
	FormattedLocation string `json:"formattedLocation"`
	SalaryInsights    *struct {
		Min      *float64 `json:"min"`
		Max      *float64 `json:"max"`
		Text     string   `json:"text"`
		Period   string   `json:"period"` // YEARLY | HOURLY
		Currency string   `json:"currency"`
	} `json:"salaryInsights"`
	Description       string `json:"description"`
	ApplyURL          string `json:"applyUrl"`
	ListedAt          int64  `json:"listedAt"`
	WorkRemoteAllowed *bool  `json:"workRemoteAllowed"`
}

type searchResponse struct {
	Elements []element `json:"elements"`
}

func (p *Provider) Fetch(ctx context.Context, q types.Query) ([]types.RawPosting, error) {
	v := url.Values{}
	v.Set("keywords", q.Text())
	v.Set("location", q.Location())
	apiURL := fmt.Sprintf("%s/v1/jobSearch?%s", p.cfg.BaseURL, v.Encode())

	var res searchResponse
	if err := p.client.GetJSON(ctx, apiURL, util.BearerAuth(p.cfg.APIKey), &res); err != nil {
		return nil, fmt.Errorf("linkedin search: %w", err)
	}

	out := make([]types.RawPosting, 0, len(res.Elements))
	for _, e := range res.Elements {
		rp := types.RawPosting{
			NativeID:    e.JobPostingID,
			Title:       e.Title,
			Company:     e.CompanyName,
			Location:    e.FormattedLocation,
			Description: e.Description,
			DescIsHTML:  strings.Contains(e.Description, "<"),
			URL:         util.CanonicalURL(e.ApplyURL),
			Remote:      e.WorkRemoteAllowed,
		}
		if e.ListedAt > 0 {
			rp.PostedAt = util.EpochMillis(e.ListedAt)
		}
		if si := e.SalaryInsights; si != nil {
			rp.SalaryText = si.Text
			if strings.EqualFold(si.Period, "HOURLY") {
				rp.SalaryMin, rp.SalaryMax = annualize(si.Min), annualize(si.Max)
			} else {
				rp.SalaryMin, rp.SalaryMax = si.Min, si.Max
			}
		}
		out = append(out, rp)
	}
	return out, nil
}

func annualize(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return domain.Float(*v * util.HoursPerYear)
}
