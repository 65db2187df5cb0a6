package company

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"payrise-engine/internal/scrape/util"
)

// HTTPProvider reads company facts from a JSON REST source:
// GET {base}?name=<company> returning a Facts object.
type HTTPProvider struct {
	name    string
	baseURL string
	apiKey  string
	client  *util.Client
}

func NewHTTPProvider(name, baseURL, apiKey string, client *util.Client) *HTTPProvider {
	return &HTTPProvider{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (p *HTTPProvider) Name() string { return p.name }

func (p *HTTPProvider) Fetch(ctx context.Context, company string) (Facts, error) {
	u := p.baseURL + "?" + url.Values{"name": {company}}.Encode()

	var f Facts
	if err := p.client.GetJSON(ctx, u, util.BearerAuth(p.apiKey), &f); err != nil {
		return Facts{}, fmt.Errorf("%s lookup %q: %w", p.name, company, err)
	}
	return f, nil
}
