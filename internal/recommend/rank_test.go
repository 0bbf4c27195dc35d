package recommend

import (
	"testing"

	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

func scoredFixture() []ScoredPaper {
	return []ScoredPaper{
		{Paper: types.Paper{ID: "a"}, Score: 10},
		{Paper: types.Paper{ID: "b"}, Score: 30},
		{Paper: types.Paper{ID: "c"}, Score: 30},
		{Paper: types.Paper{ID: "d"}, Score: 5},
		{Paper: types.Paper{ID: "e"}, Score: 30},
	}
}

func ids(ranked []ScoredPaper) []string {
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Paper.ID)
	}
	return out
}

func TestRank_OrdersAndBreaksTiesStably(t *testing.T) {
	ranked := Rank(scoredFixture(), 10)

	want := []string{"b", "c", "e", "a", "d"}
	got := ids(ranked)
	if len(got) != len(want) {
		t.Fatalf("expected %d papers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := scoredFixture()
	Rank(in, 2)
	if in[0].Paper.ID != "a" || in[4].Paper.ID != "e" {
		t.Fatalf("input slice was reordered: %v", ids(in))
	}
}

func TestRank_Truncates(t *testing.T) {
	ranked := Rank(scoredFixture(), 2)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 papers, got %d", len(ranked))
	}
	if ranked[0].Paper.ID != "b" || ranked[1].Paper.ID != "c" {
		t.Fatalf("unexpected top 2: %v", ids(ranked))
	}
}

func TestRank_ReturnsAllWhenCountExceedsInput(t *testing.T) {
	ranked := Rank(scoredFixture(), 100)
	if len(ranked) != 5 {
		t.Fatalf("expected every paper, got %d", len(ranked))
	}
}

func TestRank_EmptyInput(t *testing.T) {
	ranked := Rank(nil, 10)
	if len(ranked) != 0 {
		t.Fatalf("expected empty result, got %d", len(ranked))
	}
}

func TestRank_Idempotent(t *testing.T) {
	once := Rank(scoredFixture(), 3)
	twice := Rank(once, 3)
	for i := range once {
		if once[i].Paper.ID != twice[i].Paper.ID {
			t.Fatalf("re-ranking changed order at %d: %s vs %s", i, once[i].Paper.ID, twice[i].Paper.ID)
		}
	}
}
