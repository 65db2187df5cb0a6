package util

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestMSAForLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Austin, TX", "Austin-Round Rock-Georgetown, TX"},
		{"  san   francisco , CA ", "San Francisco-Oakland-Berkeley, CA"},
		{"Arlington, VA", "Washington-Arlington-Alexandria, DC-VA-MD-WV"},
		{"Remote", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MSAForLocation(tt.in); got != tt.want {
			t.Errorf("MSAForLocation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLocation(t *testing.T) {
	if got := NormalizeLocation("Location:  Austin, TX, austin "); got != "Austin, TX" {
		t.Fatalf("NormalizeLocation = %q", got)
	}
}

func TestIsRemote(t *testing.T) {
	if !IsRemote("Remote - US", "Engineer") {
		t.Fatal("expected remote")
	}
	if IsRemote("Boston, MA", "Engineer") {
		t.Fatal("expected onsite")
	}
}

func TestParsePostedDate(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-06-01T08:30:00Z", time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC), true},
		{"2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"1717200000000", time.UnixMilli(1717200000000).UTC(), true},
		{"3 days ago", now.AddDate(0, 0, -3), true},
		{"30+ days ago", now.AddDate(0, 0, -30), true},
		{"2 weeks ago", now.AddDate(0, 0, -14), true},
		{"Today", now, true},
		{"sometime", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePostedDate(tt.in, now)
			if ok != tt.ok || !got.Equal(tt.want) {
				t.Fatalf("ParsePostedDate(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractBenefits(t *testing.T) {
	text := "We offer medical, dental and vision, a 401(k) match, unlimited vacation and a home office stipend."
	got := ExtractBenefits(text, []string{"home office", "gpu"})
	want := []string{"health insurance", "dental", "vision", "401k", "pto", "home office"}
	if !slices.Equal(got, want) {
		t.Fatalf("ExtractBenefits = %v, want %v", got, want)
	}
}

func TestExtractBenefitsMatchesWholeWords(t *testing.T) {
	text := "You get a new laptop and direct supervision of two analysts."
	if got := ExtractBenefits(text, []string{"lap"}); len(got) != 0 {
		t.Fatalf("ExtractBenefits = %v, want none", got)
	}
}

func TestContainsPhrase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, phrase string
		want         bool
	}{
		{"we pursue excellence", "rsu", false},
		{"RSUs vest yearly", "rsu", true},
		{"remote first", "ote", false},
		{"base plus OTE of $200k", "ote", true},
		{"misleading numbers", "lead", false},
		{"tech lead, payments", "lead", true},
		{"a 401(k) match", "401(k)", true},
		{"Sr. Engineer", "sr.", true},
		{"stock options", "stock option", true},
		{"stockholder", "stock", false},
		{"", "rsu", false},
		{"anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.phrase, func(t *testing.T) {
			t.Parallel()
			if got := ContainsPhrase(tt.text, tt.phrase); got != tt.want {
				t.Fatalf("ContainsPhrase(%q, %q) = %v, want %v", tt.text, tt.phrase, got, tt.want)
			}
		})
	}
}

func TestCountPhrases(t *testing.T) {
	text := "mentorship, promotion paths and a laptop"
	if got := CountPhrases(text, []string{"promotion", "pto", "mentor", "mentorship"}); got != 2 {
		t.Fatalf("CountPhrases = %d, want 2", got)
	}
}

func TestExtractRequirements(t *testing.T) {
	text := "About us\n- 5+ years of Go experience\n- Free snacks\n* Bachelor's degree in CS\nWe are hiring"
	got := ExtractRequirements(text, []string{"Knowledge of Kubernetes", "5+ years of Go experience"})
	want := []string{"Knowledge of Kubernetes", "5+ years of Go experience", "Bachelor's degree in CS"}
	if !slices.Equal(got, want) {
		t.Fatalf("ExtractRequirements = %v, want %v", got, want)
	}
}

func TestEquityAndBonus(t *testing.T) {
	if !MentionsEquity("Competitive salary plus RSUs") {
		t.Fatal("expected equity")
	}
	for _, text := range []string{
		"Competitive salary",
		"We pursue excellence. No stock of any kind is offered.",
		"Our equityfund partners",
	} {
		if MentionsEquity(text) {
			t.Fatalf("MentionsEquity(%q) = true", text)
		}
	}
	if !MentionsEquity("Generous stock options and an ESPP") {
		t.Fatal("expected plural stock options to count")
	}
	if got := BonusPotential("Base plus 15% annual bonus"); got != 0.15 {
		t.Fatalf("BonusPotential = %v", got)
	}
	if got := BonusPotential("bonus eligible"); got != 0 {
		t.Fatalf("BonusPotential = %v, want 0", got)
	}
}

func TestStripHTML(t *testing.T) {
	raw := `<div><p>Join  our team</p><ul><li>Go</li><li>SQL</li></ul><script>x()</script></div>`
	got := StripHTML(raw)
	if got != "Join our team\nGo\nSQL" {
		t.Fatalf("StripHTML = %q", got)
	}
	escaped := "&lt;p&gt;Hello &amp;amp; welcome&lt;/p&gt;"
	if got := StripHTML(escaped); !strings.Contains(got, "Hello & welcome") {
		t.Fatalf("StripHTML(escaped) = %q", got)
	}
	if got := StripHTML("plain   text"); got != "plain text" {
		t.Fatalf("StripHTML(plain) = %q", got)
	}
}

func TestListItems(t *testing.T) {
	got := ListItems(`<ul><li> 3 years experience </li><li></li><li>Python</li></ul>`)
	if !slices.Equal(got, []string{"3 years experience", "Python"}) {
		t.Fatalf("ListItems = %v", got)
	}
}

func TestCanonicalURL(t *testing.T) {
	got := CanonicalURL("HTTPS://Jobs.Example.com/a?utm_source=x&b=2&a=1#frag")
	if got != "https://jobs.example.com/a?a=1&b=2" {
		t.Fatalf("CanonicalURL = %q", got)
	}
	if got := HostOf("https://www.Acme.com/careers"); got != "acme.com" {
		t.Fatalf("HostOf = %q", got)
	}
}
