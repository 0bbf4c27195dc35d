package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/Gomguk-paper/Gomguk-BE/internal/config"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func paperA() types.Paper {
	return types.Paper{
		ID:            "A",
		Title:         "Paper A",
		Citations:     100,
		TrendingScore: 50,
		RecencyScore:  20,
		Tags:          []string{"nlp"},
	}
}

func TestScore_ResearcherWithTagMatch(t *testing.T) {
	s := NewScorer(config.DefaultScoringWeights())

	req := types.RecommendationRequest{
		UserID: "user123",
		Tags:   []types.TagPreference{{Name: "nlp", Weight: 5}},
		Level:  types.LevelResearcher,
	}

	// 0.1*100 + 0.3*50 + 0.2*20 + 5*10 + 0.2*100 = 99
	got := s.Score(paperA(), nil, nil, req)
	if !almostEqual(got, 99) {
		t.Fatalf("expected score 99, got %v", got)
	}
}

func TestScore_ExclusionDampsBeforeEngagement(t *testing.T) {
	s := NewScorer(config.DefaultScoringWeights())

	req := types.RecommendationRequest{
		UserID:     "user123",
		Tags:       []types.TagPreference{{Name: "nlp", Weight: 5}},
		Level:      types.LevelResearcher,
		ExcludeIDs: []string{"A"},
	}

	got := s.Score(paperA(), nil, nil, req)
	if !almostEqual(got, 9.9) {
		t.Fatalf("expected score 9.9, got %v", got)
	}

	// Engagement is added after the multiplier: 99*0.1 + 50 + 30 = 89.9,
	// not (99+80)*0.1.
	actions := []types.UserAction{{UserID: "user123", PaperID: "A", Liked: true, Saved: true}}
	got = s.Score(paperA(), nil, actions, req)
	if !almostEqual(got, 89.9) {
		t.Fatalf("expected score 89.9, got %v", got)
	}
}

func TestScore_TagAffinityIsCumulative(t *testing.T) {
	s := NewScorer(config.DefaultScoringWeights())

	matching := types.Paper{ID: "m", Tags: []string{"NLP", "cv"}}
	other := types.Paper{ID: "o", Tags: []string{"robotics"}}

	req := types.RecommendationRequest{
		UserID: "u",
		Tags: []types.TagPreference{
			{Name: "nlp", Weight: 5},
			{Name: "CV", Weight: 3},
		},
	}

	delta := s.Score(matching, nil, nil, req) - s.Score(other, nil, nil, req)
	if !almostEqual(delta, 80) {
		t.Fatalf("expected tag affinity delta 80, got %v", delta)
	}
}

func TestScore_RequestTagsOverrideStoredTags(t *testing.T) {
	s := NewScorer(config.DefaultScoringWeights())

	pref := &types.UserPreference{
		UserID: "u",
		Tags:   []types.TagPreference{{Name: "nlp", Weight: 9}},
	}
	paper := types.Paper{ID: "p", Tags: []string{"nlp"}}

	withOverride := s.Score(paper, pref, nil, types.RecommendationRequest{
		UserID: "u",
		Tags:   []types.TagPreference{{Name: "nlp", Weight: 2}},
	})
	if !almostEqual(withOverride, 20) {
		t.Fatalf("expected request tags to win, got %v", withOverride)
	}

	stored := s.Score(paper, pref, nil, types.RecommendationRequest{UserID: "u"})
	if !almostEqual(stored, 90) {
		t.Fatalf("expected stored tags to apply, got %v", stored)
	}
}

func TestScore_LevelFallbacks(t *testing.T) {
	s := NewScorer(config.DefaultScoringWeights())
	paper := types.Paper{ID: "p", Citations: 10, RecencyScore: 10}
	base := 0.1*10 + 0.2*10

	// No preference, no request level: undergraduate, no bonus.
	got := s.Score(paper, nil, nil, types.RecommendationRequest{UserID: "u"})
	if !almostEqual(got, base) {
		t.Fatalf("expected base score %v, got %v", base, got)
	}

	// Stored level applies when the request has none.
	pref := &types.UserPreference{UserID: "u", Level: types.LevelPractitioner}
	got = s.Score(paper, pref, nil, types.RecommendationRequest{UserID: "u"})
	if !almostEqual(got, base+0.3*10) {
		t.Fatalf("expected practitioner bonus, got %v", got)
	}

	// Request level overrides the stored one.
	got = s.Score(paper, pref, nil, types.RecommendationRequest{UserID: "u", Level: types.LevelResearcher})
	if !almostEqual(got, base+0.2*10) {
		t.Fatalf("expected researcher bonus, got %v", got)
	}

	// Graduate gets no extra term.
	got = s.Score(paper, nil, nil, types.RecommendationRequest{UserID: "u", Level: types.LevelGraduate})
	if !almostEqual(got, base) {
		t.Fatalf("expected no graduate bonus, got %v", got)
	}
}

func TestScore_EngagementAggregatesAllRows(t *testing.T) {
	s := NewScorer(config.DefaultScoringWeights())
	paper := types.Paper{ID: "p"}

	now := time.Now()
	actions := []types.UserAction{
		{UserID: "u", PaperID: "p", Liked: true},
		{UserID: "u", PaperID: "p", Liked: true, Saved: true, ReadAt: &now},
		{UserID: "u", PaperID: "other", Liked: true, Saved: true},
	}

	// Two liked rows and one saved row for this paper: 50+50+30.
	got := s.Score(paper, nil, actions, types.RecommendationRequest{UserID: "u"})
	if !almostEqual(got, 130) {
		t.Fatalf("expected cumulative engagement 130, got %v", got)
	}
}

func TestScore_ZeroValueDefaults(t *testing.T) {
	s := NewScorer(config.DefaultScoringWeights())

	got := s.Score(types.Paper{ID: "empty"}, nil, nil, types.RecommendationRequest{UserID: "u"})
	if got != 0 {
		t.Fatalf("expected zero score for empty paper, got %v", got)
	}

	// A paper without tags never earns affinity credit.
	got = s.Score(types.Paper{ID: "p"}, nil, nil, types.RecommendationRequest{
		UserID: "u",
		Tags:   []types.TagPreference{{Name: "nlp", Weight: 5}},
	})
	if got != 0 {
		t.Fatalf("expected no affinity for untagged paper, got %v", got)
	}
}

func TestScore_NonNegativeWithoutExclusion(t *testing.T) {
	s := NewScorer(config.DefaultScoringWeights())

	papers := []types.Paper{
		{ID: "a"},
		{ID: "b", Citations: 3, TrendingScore: 1.5, RecencyScore: 0.25, Tags: []string{"x"}},
		{ID: "c", Citations: 1000, RecencyScore: 100},
	}
	for _, p := range papers {
		got := s.Score(p, nil, nil, types.RecommendationRequest{UserID: "u", Level: types.LevelResearcher})
		if got < 0 {
			t.Fatalf("expected non-negative score for %s, got %v", p.ID, got)
		}
	}
}
