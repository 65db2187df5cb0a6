// Package indeed queries the Indeed job search API.
package indeed

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
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

func (p *Provider) Board() domain.JobBoard { return domain.BoardIndeed }

type searchResponse struct {
	Results []struct {
		JobKey            string `json:"jobkey"`
		Title             string `json:"title"`
		Company           string `json:"company"`
		FormattedLocation string `json:"formattedLocation"`
		Salary            string `json:"salary"`
		Snippet           string `json:"snippet"`
		URL               string `json:"url"`
		Date              string `json:"date"`
	} `json:"results"`
}

func (p *Provider) Fetch(ctx context.Context, q types.Query) ([]types.RawPosting, error) {
	v := url.Values{}
	v.Set("q", q.Text())
	v.Set("l", q.Location())
	if q.MinSalary > 0 {
		v.Set("salary_min", strconv.FormatFloat(q.MinSalary, 'f', 0, 64))
	}
	if q.Remote {
		v.Set("remote", "true")
	}
	apiURL := fmt.Sprintf("%s/v2/jobs/search?%s", p.cfg.BaseURL, v.Encode())

	var res searchResponse
	if err := p.client.GetJSON(ctx, apiURL, util.BearerAuth(p.cfg.APIKey), &res); err != nil {
		return nil, fmt.Errorf("indeed search: %w", err)
	}

	out := make([]types.RawPosting, 0, len(res.Results))
	for _, r := range res.Results {
		out = append(out, types.RawPosting{
			NativeID:    r.JobKey,
			Title:       r.Title,
			Company:     r.Company,
			Location:    r.FormattedLocation,
			SalaryText:  r.Salary,
			Description: r.Snippet,
			DescIsHTML:  strings.Contains(r.Snippet, "<"),
			URL:         r.URL,
			PostedRaw:   r.Date,
		})
	}
	return out, nil
}
