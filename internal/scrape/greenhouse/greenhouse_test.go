package greenhouse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"payrise-engine/internal/scrape/types"
	"payrise-engine/internal/scrape/util"
)

func TestFetchBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/boards/initech/jobs" || r.URL.Query().Get("content") != "true" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"jobs":[{"id":42,"title":"Product Designer","absolute_url":"https://boards.greenhouse.io/initech/jobs/42",
			"updated_at":"2024-06-01T12:00:00-04:00","location":{"name":"New York, NY"},
			"content":"&lt;p&gt;Design things&lt;/p&gt;"},{"id":0,"title":"skip"}]}`))
	}))
	defer srv.Close()

	p := New(Config{BaseURL: srv.URL, Companies: []Company{
		{Slug: "initech", Name: "Initech"},
		{Slug: "down", Name: "Down Inc"},
	}}, util.NewClient(nil, time.Millisecond, time.Millisecond), zaptest.NewLogger(t))

	got, err := p.Fetch(context.Background(), types.Query{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 1 || got[0].NativeID != "initech:42" || got[0].Company != "Initech" || !got[0].DescIsHTML {
		t.Fatalf("unexpected postings: %+v", got)
	}
	if util.StripHTML(got[0].Description) != "Design things" {
		t.Fatalf("content = %q", got[0].Description)
	}
}
