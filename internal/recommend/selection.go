package recommend

import (
	"sort"
	"time"

	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

// SelectForSummarization picks which unsummarized papers get a summary next,
// up to target ids. Highly cited papers go first; when citations run out the
// shortfall is filled from the remainder by publication date, newest first.
// An exhausted pool yields an empty slice, which batch callers treat as
// "nothing to do".
func SelectForSummarization(pool []types.Paper, target int) []string {
	if target <= 0 {
		return []string{}
	}

	var candidates []types.Paper
	for _, p := range pool {
		if !p.IsSummarized {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return []string{}
	}

	byCitations := make([]types.Paper, len(candidates))
	copy(byCitations, candidates)
	sort.SliceStable(byCitations, func(i, j int) bool {
		return byCitations[i].Citations > byCitations[j].Citations
	})

	selected := make([]string, 0, target)
	picked := make(map[string]bool, target)
	for _, p := range byCitations {
		if len(selected) == target {
			break
		}
		selected = append(selected, p.ID)
		picked[p.ID] = true
	}

	if len(selected) < target {
		var remainder []types.Paper
		for _, p := range candidates {
			if !picked[p.ID] {
				remainder = append(remainder, p)
			}
		}
		sort.SliceStable(remainder, func(i, j int) bool {
			return publishedAt(remainder[i]).After(publishedAt(remainder[j]))
		})
		for _, p := range remainder {
			if len(selected) == target {
				break
			}
			selected = append(selected, p.ID)
			picked[p.ID] = true
		}
	}

	return selected
}

func publishedAt(p types.Paper) time.Time {
	if p.PublishedDate == nil {
		return time.Time{}
	}
	return *p.PublishedDate
}
