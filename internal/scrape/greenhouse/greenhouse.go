// Package greenhouse polls the Greenhouse job board API for configured companies.
package greenhouse

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/scrape/types"
	"payrise-engine/internal/scrape/util"
)

type Config struct {
	BaseURL   string
	Companies []Company // list of boards
}

type Company struct {
	Slug string // boards.greenhouse.io/<slug>
	Name string // display name
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
	return &Provider{cfg: cfg, client: client, log: log.With(zap.String("board", "greenhouse"))}
}

func (p *Provider) Board() domain.JobBoard { return domain.BoardGreenhouse }

type boardResponse struct {
	Jobs []struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		AbsoluteURL string `json:"absolute_url"`
		UpdatedAt   string `json:"updated_at"`
		Location    struct {
			Name string `json:"name"`
		} `json:"location"`
		Content string `json:"content"` // entity-escaped html
	} `json:"jobs"`
}

// Fetch walks the boards one at a time; the host limiter paces them anyway.
// One board being down does not fail the run.
func (p *Provider) Fetch(ctx context.Context, q types.Query) ([]types.RawPosting, error) {
	var out []types.RawPosting
	var errs []error
	for _, co := range p.cfg.Companies {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		jobs, err := p.fetchCompany(ctx, co)
		if err != nil {
			p.log.Warn("[greenhouse] board fetch failed", zap.String("slug", co.Slug), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		out = append(out, jobs...)
	}
	if len(p.cfg.Companies) > 0 && len(errs) == len(p.cfg.Companies) {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func (p *Provider) fetchCompany(ctx context.Context, co Company) ([]types.RawPosting, error) {
	apiURL := fmt.Sprintf("%s/v1/boards/%s/jobs?content=true", p.cfg.BaseURL, co.Slug)

	var res boardResponse
	if err := p.client.GetJSON(ctx, apiURL, nil, &res); err != nil {
		return nil, fmt.Errorf("greenhouse %s: %w", co.Slug, err)
	}

	out := make([]types.RawPosting, 0, len(res.Jobs))
	for _, j := range res.Jobs {
		if j.ID == 0 || strings.TrimSpace(j.Title) == "" {
			continue
		}
		out = append(out, types.RawPosting{
			NativeID:    co.Slug + ":" + strconv.FormatInt(j.ID, 10),
			Title:       j.Title,
			Company:     co.Name,
			Location:    j.Location.Name,
			Description: j.Content,
			DescIsHTML:  true,
			URL:         j.AbsoluteURL,
			PostedRaw:   j.UpdatedAt,
		})
	}
	return out, nil
}
