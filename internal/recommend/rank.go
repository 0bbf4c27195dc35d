package recommend

import (
	"sort"

	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

// ScoredPaper pairs a paper with its computed score.
type ScoredPaper struct {
	Paper types.Paper
	Score float64
}

// Rank orders scored papers highest first and truncates to count. The sort is
// stable, so papers with equal scores keep their input order and identical
// requests produce identical responses. No minimum-score threshold is
// applied; when fewer papers exist than requested all of them come back.
func Rank(scored []ScoredPaper, count int) []ScoredPaper {
	ranked := make([]ScoredPaper, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if count < 0 {
		count = 0
	}
	if count < len(ranked) {
		ranked = ranked[:count]
	}
	return ranked
}
