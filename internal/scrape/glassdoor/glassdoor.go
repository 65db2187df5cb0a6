// Package glassdoor queries the Glassdoor jobs API.
package glassdoor

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

func (p *Provider) Board() domain.JobBoard { return domain.BoardGlassdoor }

type job struct {
	ID                  string `json:"id"`
	JobTitle            string `json:"jobTitle"`
	Employer            string `json:"employer"`
	Location            string `json:"location"`
	PayRange            string `json:"payRange"`
	DescriptionFragment string `json:"descriptionFragment"`
	JobViewURL          string `json:"jobViewUrl"`
	PostedDate          string `json:"postedDate"`
	EmployerSize        string `json:"employerSize"`
	Industry            string `json:"industry"`
}

type searchResponse struct {
	Jobs []job `json:"jobs"`
}

func (p *Provider) Fetch(ctx context.Context, q types.Query) ([]types.RawPosting, error) {
	v := url.Values{}
	v.Set("keyword", q.Text())
	v.Set("location", q.Location())
	apiURL := fmt.Sprintf("%s/api/v1/jobs?%s", p.cfg.BaseURL, v.Encode())

	headers := map[string]string{}
	if p.cfg.APIKey != "" {
		headers["X-Api-Key"] = p.cfg.APIKey
	}

	var res searchResponse
	if err := p.client.GetJSON(ctx, apiURL, headers, &res); err != nil {
		return nil, fmt.Errorf("glassdoor search: %w", err)
	}

	out := make([]types.RawPosting, 0, len(res.Jobs))
	for _, j := range res.Jobs {
		out = append(out, types.RawPosting{
			NativeID:    j.ID,
			Title:       j.JobTitle,
			Company:     j.Employer,
			Location:    j.Location,
			SalaryText:  j.PayRange,
			Description: j.DescriptionFragment,
			DescIsHTML:  strings.Contains(j.DescriptionFragment, "<"),
			URL:         util.CanonicalURL(j.JobViewURL),
			PostedRaw:   j.PostedDate,
			CompanySize: strings.ToLower(j.EmployerSize),
			Industry:    j.Industry,
		})
	}
	return out, nil
}
