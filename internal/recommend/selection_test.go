package recommend

import (
	"testing"
	"time"

	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

func datePtr(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSelectForSummarization_CitationsFirst(t *testing.T) {
	pool := []types.Paper{
		{ID: "low", Citations: 10},
		{ID: "high", Citations: 5000},
		{ID: "mid", Citations: 900},
		{ID: "done", Citations: 90000, IsSummarized: true},
	}

	got := SelectForSummarization(pool, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(got))
	}
	if got[0] != "high" || got[1] != "mid" {
		t.Fatalf("expected [high mid], got %v", got)
	}
}

func TestSelectForSummarization_AllSummarized(t *testing.T) {
	pool := []types.Paper{
		{ID: "a", IsSummarized: true},
		{ID: "b", IsSummarized: true},
	}
	got := SelectForSummarization(pool, 5)
	if len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

func TestSelectForSummarization_EmptyPool(t *testing.T) {
	if got := SelectForSummarization(nil, 5); len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

func TestSelectForSummarization_ZeroCitationTie(t *testing.T) {
	// All-zero citations: the citation pass is a tie and keeps input order.
	// Enumerating newest first mirrors how the crawler stores feeds.
	pool := []types.Paper{
		{ID: "newest", PublishedDate: datePtr(2025, 3, 1)},
		{ID: "middle", PublishedDate: datePtr(2025, 2, 1)},
		{ID: "oldest", PublishedDate: datePtr(2025, 1, 1)},
	}

	got := SelectForSummarization(pool, 3)
	want := []string{"newest", "middle", "oldest"}
	if len(got) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSelectForSummarization_TargetLargerThanPool(t *testing.T) {
	pool := []types.Paper{
		{ID: "a", Citations: 1, PublishedDate: datePtr(2025, 1, 1)},
		{ID: "b", Citations: 2, PublishedDate: datePtr(2025, 2, 1)},
		{ID: "c", PublishedDate: datePtr(2025, 3, 1)},
	}

	got := SelectForSummarization(pool, 5)
	if len(got) != 3 {
		t.Fatalf("expected exactly the 3 available ids, got %v", got)
	}
	seen := map[string]bool{}
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate id %s in %v", id, got)
		}
		seen[id] = true
	}
}

func TestSelectForSummarization_ZeroTarget(t *testing.T) {
	pool := []types.Paper{{ID: "a"}}
	if got := SelectForSummarization(pool, 0); len(got) != 0 {
		t.Fatalf("expected empty selection for zero target, got %v", got)
	}
}
