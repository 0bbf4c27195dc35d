package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/repos"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

// ErrNotFound marks lookups for papers or summaries that do not exist; the
// HTTP layer maps it to 404.
var ErrNotFound = errors.New("not found")

type PaperService interface {
	GetPaper(ctx context.Context, paperID string) (*types.PaperDetail, error)
	GetSummary(ctx context.Context, paperID string) (*types.SummaryResponse, error)
}

type paperService struct {
	db          *gorm.DB
	log         *logger.Logger
	paperRepo   repos.PaperRepo
	summaryRepo repos.SummaryRepo
}

func NewPaperService(db *gorm.DB, log *logger.Logger, paperRepo repos.PaperRepo, summaryRepo repos.SummaryRepo) PaperService {
	return &paperService{
		db:          db,
		log:         log.With("service", "PaperService"),
		paperRepo:   paperRepo,
		summaryRepo: summaryRepo,
	}
}

func (s *paperService) GetPaper(ctx context.Context, paperID string) (*types.PaperDetail, error) {
	paper, err := s.paperRepo.GetByID(ctx, nil, paperID)
	if err != nil {
		return nil, fmt.Errorf("failed to load paper: %w", err)
	}
	if paper == nil {
		return nil, ErrNotFound
	}

	summary, err := s.summaryRepo.GetByPaperID(ctx, nil, paperID)
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}

	return &types.PaperDetail{Paper: *paper, Summary: types.NewSummaryResponse(summary)}, nil
}

func (s *paperService) GetSummary(ctx context.Context, paperID string) (*types.SummaryResponse, error) {
	summary, err := s.summaryRepo.GetByPaperID(ctx, nil, paperID)
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}
	if summary == nil {
		return nil, ErrNotFound
	}
	return types.NewSummaryResponse(summary), nil
}
