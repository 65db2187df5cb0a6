package company

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payrise-engine/internal/scrape/util"
)

func testClient() *util.Client {
	return util.NewClient(nil, time.Millisecond, time.Millisecond)
}

func TestHTTPProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") != "Acme Corp" || r.Header.Get("Authorization") != "Bearer k" {
			t.Errorf("request = %s auth=%q", r.URL.RawQuery, r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{"name":"Acme Corp","industry":"Software","diversityScore":71,"glassdoorRating":4.3,"remoteFriendly":true,"foundedYear":2001}`))
	}))
	defer srv.Close()

	f, err := NewHTTPProvider("glassdoor-companies", srv.URL+"/", "k", testClient()).Fetch(context.Background(), "Acme Corp")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if f.DiversityScore == nil || *f.DiversityScore != 71 || f.CultureScore != nil {
		t.Fatalf("scores: %+v", f)
	}
	if f.RemoteFriendly == nil || !*f.RemoteFriendly || f.FoundedYear != 2001 {
		t.Fatalf("facts: %+v", f)
	}
}

func TestWebProviderSkipsBlockedDomains(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Acme official website" {
			t.Errorf("q = %q", r.URL.Query().Get("q"))
		}
		_, _ = w.Write([]byte(`<html><body>
			<a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.linkedin.com%2Fcompany%2Facme">LinkedIn</a>
			<a class="result__a" href="https://jobs.lever.co/acme">Lever</a>
			<a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.acme.com%2F">Acme</a>
		</body></html>`))
	}))
	defer srv.Close()

	f, err := NewWebProvider(srv.URL, testClient()).Fetch(context.Background(), "Acme, Inc.")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if f.Website != "acme.com" {
		t.Fatalf("Website = %q", f.Website)
	}
}

func TestWebProviderNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a class="result__a" href="https://www.indeed.com/cmp/acme">x</a></body></html>`))
	}))
	defer srv.Close()

	_, err := NewWebProvider(srv.URL, testClient()).Fetch(context.Background(), "Acme")
	if !errors.Is(err, errNoWebsite) {
		t.Fatalf("err = %v", err)
	}
}

func TestSanitizeCompanyForSearch(t *testing.T) {
	tests := map[string]string{
		"Acme, Inc.":       "Acme",
		" Globex  LLC ":    "Globex",
		"Hooli Recruiting": "Hooli",
		"Initech":          "Initech",
	}
	for in, want := range tests {
		if got := sanitizeCompanyForSearch(in); got != want {
			t.Errorf("sanitizeCompanyForSearch(%q) = %q, want %q", in, got, want)
		}
	}
}
