package company

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"payrise-engine/internal/scrape/util"
)

const ddgHTMLEndpoint = "https://duckduckgo.com/html/"

var errNoWebsite = errors.New("no company website found")

var domainBlocklist = []string{
	"linkedin.com",
	"indeed.com",
	"glassdoor.com",
	"ziprecruiter.com",
	"monster.com",
	"careerbuilder.com",
	"simplyhired.com",
	"builtin.com",
	"levels.fyi",
	"crunchbase.com",
	"wikipedia.org",

	// ATS / job boards
	"greenhouse.io",
	"lever.co",
	"myworkdayjobs.com",
	"workday.com",
	"smartrecruiters.com",
	"icims.com",
	"jobvite.com",
	"applytojob.com",
}

// WebProvider finds a company's own website through DuckDuckGo's HTML
// results. It only ever reports Website.
type WebProvider struct {
	endpoint string
	client   *util.Client
}

func NewWebProvider(endpoint string, client *util.Client) *WebProvider {
	if endpoint == "" {
		endpoint = ddgHTMLEndpoint
	}
	return &WebProvider{endpoint: endpoint, client: client}
}

func (p *WebProvider) Name() string { return "web" }

func (p *WebProvider) Fetch(ctx context.Context, company string) (Facts, error) {
	q := sanitizeCompanyForSearch(company)
	if q == "" {
		return Facts{}, errNoWebsite
	}
	u := p.endpoint + "?" + url.Values{"q": {q + " official website"}}.Encode()

	body, err := p.client.GetHTML(ctx, u, map[string]string{"User-Agent": "Mozilla/5.0"})
	if err != nil {
		return Facts{}, fmt.Errorf("web search %q: %w", company, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Facts{}, fmt.Errorf("parse search results: %w", err)
	}

	var best string
	// DDG HTML results: <a class="result__a" href="...">
	doc.Find("a.result__a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return true
		}
		host := util.HostOf(decodeDDGRedirect(href))
		if host == "" || isBlockedDomain(host) {
			return true
		}
		best = host
		return false // stop at first good domain
	})

	if best == "" {
		return Facts{}, errNoWebsite
	}
	return Facts{Website: best}, nil
}

func decodeDDGRedirect(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	// DDG sometimes uses /l/?uddg=<urlencoded>
	if uddg := u.Query().Get("uddg"); uddg != "" {
		return uddg
	}
	return href
}

func isBlockedDomain(host string) bool {
	for _, b := range domainBlocklist {
		if host == b || strings.HasSuffix(host, "."+b) {
			return true
		}
	}
	return false
}

func sanitizeCompanyForSearch(s string) string {
	s = strings.TrimSpace(s)
	// remove common suffixes that confuse search
	r := strings.NewReplacer(
		", Inc.", "", " Inc.", "", " Inc", "",
		", LLC", "", " LLC", "",
		", Ltd.", "", " Ltd.", "", " Ltd", "",
		" Recruiting", "",
		" Staffing", "",
	)
	return strings.Join(strings.Fields(r.Replace(s)), " ")
}
