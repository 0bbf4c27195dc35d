package recommend

import (
	"strings"

	"github.com/Gomguk-paper/Gomguk-BE/internal/config"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

// Scorer computes the recommendation score of a paper for one request. It is
// pure: no I/O, no mutation, total over every input shape (a nil preference
// and an empty action list are valid defaults, not errors).
type Scorer struct {
	w config.ScoringWeights
}

func NewScorer(w config.ScoringWeights) *Scorer {
	return &Scorer{w: w}
}

// Score is additive: base metric signal, tag affinity, level bonus, exclusion
// damping, engagement boost. The exclusion multiplier applies to everything
// accumulated before it and the engagement boost is added after, undamped.
// Ordering here is a compatibility contract, not a style choice.
func (s *Scorer) Score(paper types.Paper, pref *types.UserPreference, actions []types.UserAction, req types.RecommendationRequest) float64 {
	score := 0.0

	score += float64(paper.Citations) * s.w.Citations
	score += paper.TrendingScore * s.w.Trending
	score += paper.RecencyScore * s.w.Recency

	tags := req.Tags
	if len(tags) == 0 && pref != nil {
		tags = pref.Tags
	}
	if len(tags) > 0 && len(paper.Tags) > 0 {
		paperTags := make(map[string]bool, len(paper.Tags))
		for _, t := range paper.Tags {
			paperTags[strings.ToLower(t)] = true
		}
		// Tag weights are normalized at the JSON boundary; by the time a
		// TagPreference reaches the scorer its weight is final.
		for _, tag := range tags {
			if paperTags[strings.ToLower(tag.Name)] {
				score += float64(tag.Weight) * s.w.TagMatch
			}
		}
	}

	level := req.Level
	if level == "" && pref != nil {
		level = pref.Level
	}
	if level == "" {
		level = types.LevelUndergraduate
	}
	switch level {
	case types.LevelResearcher:
		score += float64(paper.Citations) * s.w.ResearcherBonus
	case types.LevelPractitioner:
		score += paper.RecencyScore * s.w.PractitionerBonus
	}

	for _, id := range req.ExcludeIDs {
		if id == paper.ID {
			score *= s.w.ExcludePenalty
			break
		}
	}

	for _, action := range actions {
		if action.PaperID != paper.ID {
			continue
		}
		if action.Liked {
			score += s.w.LikedBoost
		}
		if action.Saved {
			score += s.w.SavedBoost
		}
	}

	return score
}
