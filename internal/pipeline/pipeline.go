package pipeline

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Gomguk-paper/Gomguk-BE/internal/config"
	"github.com/Gomguk-paper/Gomguk-BE/internal/crawler"
	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/recommend"
	"github.com/Gomguk-paper/Gomguk-BE/internal/repos"
	"github.com/Gomguk-paper/Gomguk-BE/internal/summarizer"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

// Pipeline runs one crawl/select/summarize batch: fetch fresh papers from
// arXiv, upsert them, pick the unsummarized papers most worth summarizing,
// and generate and persist a summary for each.
type Pipeline struct {
	db         *gorm.DB
	log        *logger.Logger
	cfg        config.PipelineConfig
	crawler    *crawler.Crawler
	summarizer summarizer.Summarizer

	paperRepo   repos.PaperRepo
	summaryRepo repos.SummaryRepo
}

func New(
	db *gorm.DB,
	log *logger.Logger,
	cfg config.PipelineConfig,
	c *crawler.Crawler,
	s summarizer.Summarizer,
	paperRepo repos.PaperRepo,
	summaryRepo repos.SummaryRepo,
) *Pipeline {
	return &Pipeline{
		db:          db,
		log:         log.With("service", "Pipeline"),
		cfg:         cfg,
		crawler:     c,
		summarizer:  s,
		paperRepo:   paperRepo,
		summaryRepo: summaryRepo,
	}
}

// Run executes one batch. A summarization failure for one paper is logged and
// skipped so the rest of the batch still completes.
func (p *Pipeline) Run(ctx context.Context) error {
	p.log.Info("Pipeline run started")

	papers, err := p.crawler.FetchPapers(ctx)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}
	if len(papers) > 0 {
		if err := p.paperRepo.Upsert(ctx, nil, papers); err != nil {
			return fmt.Errorf("failed to store crawled papers: %w", err)
		}
	}
	p.log.Info("Crawled papers stored", "fetched", len(papers))

	pool, err := p.paperRepo.GetUnsummarized(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to load unsummarized papers: %w", err)
	}

	selected := recommend.SelectForSummarization(pool, p.cfg.TopCitationsCount)
	if len(selected) == 0 {
		p.log.Info("No papers to summarize")
		return nil
	}

	summarized := 0
	for _, id := range selected {
		if err := p.summarizeOne(ctx, id); err != nil {
			p.log.Error("Summarization failed", "paper_id", id, "error", err)
			continue
		}
		summarized++
	}

	p.log.Info("Pipeline run finished", "selected", len(selected), "summarized", summarized)
	return nil
}

// summarizeOne generates a summary for the paper and persists the summary and
// the summarized flag in a single transaction so the two never diverge.
func (p *Pipeline) summarizeOne(ctx context.Context, paperID string) error {
	paper, err := p.paperRepo.GetByID(ctx, nil, paperID)
	if err != nil {
		return fmt.Errorf("failed to load paper: %w", err)
	}
	if paper == nil {
		return fmt.Errorf("paper %s not found", paperID)
	}

	data, err := p.summarizer.Summarize(ctx, *paper)
	if err != nil {
		return fmt.Errorf("failed to generate summary: %w", err)
	}

	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		summary := &types.Summary{
			PaperID:       paper.ID,
			HookOneLiner:  data.HookOneLiner,
			KeyPoints:     data.KeyPoints,
			Detailed:      data.Detailed,
			EvidenceScope: data.EvidenceScope,
		}
		if err := p.summaryRepo.Upsert(ctx, tx, summary); err != nil {
			return fmt.Errorf("failed to store summary: %w", err)
		}
		if err := p.paperRepo.MarkSummarized(ctx, tx, paper.ID); err != nil {
			return fmt.Errorf("failed to mark paper summarized: %w", err)
		}
		return nil
	})
}
