package config

import (
	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/utils"
)

// ScoringWeights holds every coefficient of the recommendation score. The
// defaults are part of the API contract: changing any of them silently
// reorders every user's feed, so they are only ever overridden explicitly.
type ScoringWeights struct {
	Citations         float64
	Trending          float64
	Recency           float64
	TagMatch          float64
	ResearcherBonus   float64
	PractitionerBonus float64
	ExcludePenalty    float64
	LikedBoost        float64
	SavedBoost        float64
	DefaultDailyCount int
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Citations:         0.1,
		Trending:          0.3,
		Recency:           0.2,
		TagMatch:          10,
		ResearcherBonus:   0.2,
		PractitionerBonus: 0.3,
		ExcludePenalty:    0.1,
		LikedBoost:        50,
		SavedBoost:        30,
		DefaultDailyCount: 10,
	}
}

// CrawlerConfig controls the arXiv feed crawl.
type CrawlerConfig struct {
	Categories []string
	MaxPapers  int
	FeedBase   string
}

func CrawlerConfigFromEnv(log *logger.Logger) CrawlerConfig {
	return CrawlerConfig{
		Categories: utils.GetEnvAsSlice("ARXIV_CATEGORIES", []string{"cs.AI", "cs.LG", "cs.CV", "cs.CL"}, log),
		MaxPapers:  utils.GetEnvAsInt("MAX_PAPERS_PER_CRAWL", 100, log),
		FeedBase:   utils.GetEnv("ARXIV_FEED_BASE", "https://export.arxiv.org/rss", log),
	}
}

// PipelineConfig controls the batch crawl/select/summarize run.
type PipelineConfig struct {
	TopCitationsCount int
	IntervalMinutes   int
}

func PipelineConfigFromEnv(log *logger.Logger) PipelineConfig {
	return PipelineConfig{
		TopCitationsCount: utils.GetEnvAsInt("TOP_CITATIONS_COUNT", 5, log),
		IntervalMinutes:   utils.GetEnvAsInt("PIPELINE_INTERVAL_MINUTES", 0, log),
	}
}
