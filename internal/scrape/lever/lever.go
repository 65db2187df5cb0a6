// Package lever polls the public Lever postings API for configured companies.
package lever

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/scrape/types"
	"payrise-engine/internal/scrape/util"
)

const workers = 8

type Config struct {
	BaseURL   string
	Companies []Company
}

type Company struct {
	Slug string // api.lever.co/v0/postings/<slug>
	Name string
}

type Provider struct {
	cfg    Config
	client *util.Client
	log    *zap.Logger
}

func New(cfg Config, client *util.Client, log *zap.Logger) *Provider {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{cfg: cfg, client: client, log: log.With(zap.String("board", "lever"))}
}

func (p *Provider) Board() domain.JobBoard { return domain.BoardLever }

type posting struct {
	ID         string `json:"id"`
	Text       string `json:"text"` // title
	HostedURL  string `json:"hostedUrl"`
	CreatedAt  int64  `json:"createdAt"` // ms epoch
	Categories struct {
		Location   string `json:"location"`
		Team       string `json:"team"`
		Commitment string `json:"commitment"`
	} `json:"categories"`
	WorkplaceType    string `json:"workplaceType"` // remote | hybrid | onsite
	DescriptionPlain string `json:"descriptionPlain"`
	Description      string `json:"description"` // html
	Lists            []struct {
		Text    string `json:"text"`
		Content string `json:"content"` // html <li> items
	} `json:"lists"`
	SalaryRange *struct {
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Currency string  `json:"currency"`
		Interval string  `json:"interval"`
	} `json:"salaryRange"`
}

// Fetch polls every configured company with a bounded worker pool. A failing
// company is logged and skipped; the error is returned only when every
// company failed.
func (p *Provider) Fetch(ctx context.Context, q types.Query) ([]types.RawPosting, error) {
	companies := p.cfg.Companies
	if len(companies) == 0 {
		return nil, nil
	}

	type result struct {
		idx   int
		posts []types.RawPosting
		err   error
	}
	resCh := make(chan result, len(companies))
	workCh := make(chan int)

	var wg sync.WaitGroup
	n := min(workers, len(companies))
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			for idx := range workCh {
				posts, err := p.fetchCompany(ctx, companies[idx])
				if err != nil {
					p.log.Warn("[lever] company fetch failed",
						zap.String("company", companies[idx].Name),
						zap.String("slug", companies[idx].Slug),
						zap.Error(err))
				}
				resCh <- result{idx: idx, posts: posts, err: err}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for i := range companies {
			select {
			case <-ctx.Done():
				return
			case workCh <- i:
			}
		}
	}()

	wg.Wait()
	close(resCh)

	// slot by company so output order does not depend on worker timing
	slots := make([][]types.RawPosting, len(companies))
	var firstErr error
	failed := 0
	for r := range resCh {
		slots[r.idx] = r.posts
		if r.err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.err
			}
		}
	}

	var out []types.RawPosting
	for _, s := range slots {
		out = append(out, s...)
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	if failed == len(companies) {
		return nil, firstErr
	}
	p.log.Debug("[lever] processed", zap.Int("postings", len(out)))
	return out, nil
}

func (p *Provider) fetchCompany(ctx context.Context, co Company) ([]types.RawPosting, error) {
	apiURL := fmt.Sprintf("%s/v0/postings/%s?mode=json", p.cfg.BaseURL, co.Slug)

	var postings []posting
	if err := p.client.GetJSON(ctx, apiURL, nil, &postings); err != nil {
		return nil, fmt.Errorf("lever %s: %w", co.Slug, err)
	}

	out := make([]types.RawPosting, 0, len(postings))
	for _, ps := range postings {
		if ps.ID == "" || strings.TrimSpace(ps.Text) == "" {
			continue
		}
		rp := types.RawPosting{
			NativeID: co.Slug + ":" + ps.ID,
			Title:    ps.Text,
			Company:  co.Name,
			Location: ps.Categories.Location,
			URL:      ps.HostedURL,
		}
		if ps.CreatedAt > 0 {
			rp.PostedAt = util.EpochMillis(ps.CreatedAt)
		}
		switch strings.ToLower(ps.WorkplaceType) {
		case "remote":
			rp.Remote = boolPtr(true)
		case "onsite", "on-site":
			rp.Remote = boolPtr(false)
		}

		rp.Description, rp.DescIsHTML = ps.Description, true
		if rp.Description == "" {
			rp.Description, rp.DescIsHTML = ps.DescriptionPlain, false
		}
		for _, l := range ps.Lists {
			rp.Description += "\n<h3>" + l.Text + "</h3><ul>" + l.Content + "</ul>"
			rp.DescIsHTML = true
		}

		if sr := ps.SalaryRange; sr != nil && sr.Max > 0 && (sr.Currency == "" || strings.EqualFold(sr.Currency, "USD")) {
			lo, hi := sr.Min, sr.Max
			if strings.Contains(strings.ToLower(sr.Interval), "hour") {
				lo, hi = lo*util.HoursPerYear, hi*util.HoursPerYear
			}
			rp.SalaryMin, rp.SalaryMax = domain.Float(lo), domain.Float(hi)
		}
		out = append(out, rp)
	}
	return out, nil
}

func boolPtr(b bool) *bool { return &b }
