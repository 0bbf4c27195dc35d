package crawler

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

func TestRecencyScore_Buckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		daysAgo int
		want    float64
	}{
		{0, 100},
		{30, 100},
		{31, 70},
		{90, 70},
		{91, 40},
		{180, 40},
		{181, 20},
		{1000, 20},
	}
	for _, tc := range cases {
		published := now.AddDate(0, 0, -tc.daysAgo)
		if got := RecencyScore(published, now); got != tc.want {
			t.Fatalf("daysAgo=%d: expected %v, got %v", tc.daysAgo, tc.want, got)
		}
	}
}

func TestPaperFromItem(t *testing.T) {
	published := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	item := &gofeed.Item{
		Title:           "Attention Is All You Need",
		Link:            "https://arxiv.org/abs/1706.03762",
		GUID:            "oai:arXiv.org:1706.03762v5",
		Description:     "arXiv:1706.03762v5 Announce Type: new \nAbstract: The dominant sequence transduction models...",
		Categories:      []string{"cs.CL", "cs.LG"},
		Authors:         []*gofeed.Person{{Name: "Ashish Vaswani, Noam Shazeer"}},
		PublishedParsed: &published,
	}

	paper, ok := paperFromItem(item, now)
	if !ok {
		t.Fatalf("expected a paper")
	}
	if paper.ID != "arxiv_1706.03762" {
		t.Fatalf("unexpected id %q", paper.ID)
	}
	if paper.ArxivID != "1706.03762" {
		t.Fatalf("unexpected arxiv id %q", paper.ArxivID)
	}
	if paper.Venue != "arXiv" {
		t.Fatalf("unexpected venue %q", paper.Venue)
	}
	if paper.Year != 2025 {
		t.Fatalf("unexpected year %d", paper.Year)
	}
	if paper.Abstract != "The dominant sequence transduction models..." {
		t.Fatalf("unexpected abstract %q", paper.Abstract)
	}
	if len(paper.Authors) != 2 || paper.Authors[0] != "Ashish Vaswani" || paper.Authors[1] != "Noam Shazeer" {
		t.Fatalf("unexpected authors %v", paper.Authors)
	}
	if paper.PDFURL != "https://arxiv.org/pdf/1706.03762" {
		t.Fatalf("unexpected pdf url %q", paper.PDFURL)
	}
	if paper.RecencyScore != 100 {
		t.Fatalf("expected recency 100, got %v", paper.RecencyScore)
	}
	if paper.Citations != 0 || paper.TrendingScore != 0 {
		t.Fatalf("expected zero metrics, got %d/%v", paper.Citations, paper.TrendingScore)
	}
	if paper.IsSummarized {
		t.Fatalf("expected not summarized")
	}
}

func TestPaperFromItem_GuidFallbackAndMissingID(t *testing.T) {
	now := time.Now()

	item := &gofeed.Item{GUID: "oai:arXiv.org:2401.12345v1"}
	paper, ok := paperFromItem(item, now)
	if !ok || paper.ArxivID != "2401.12345" {
		t.Fatalf("expected guid fallback to 2401.12345, got %+v ok=%v", paper, ok)
	}

	if _, ok := paperFromItem(&gofeed.Item{Title: "no id"}, now); ok {
		t.Fatalf("expected entry without id to be skipped")
	}
}

func TestStripVersion(t *testing.T) {
	cases := map[string]string{
		"1706.03762v5": "1706.03762",
		"1706.03762":   "1706.03762",
		"2401.12345v12": "2401.12345",
		"cs/0112017v1": "cs/0112017",
	}
	for in, want := range cases {
		if got := stripVersion(in); got != want {
			t.Fatalf("stripVersion(%q): expected %q, got %q", in, want, got)
		}
	}
}
