package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Gomguk-paper/Gomguk-BE/internal/config"
	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/recommend"
	"github.com/Gomguk-paper/Gomguk-BE/internal/repos"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

type RecommendationService interface {
	GetRecommendations(ctx context.Context, req types.RecommendationRequest) (*types.RecommendationResponse, error)
}

type recommendationService struct {
	db          *gorm.DB
	log         *logger.Logger
	weights     config.ScoringWeights
	scorer      *recommend.Scorer
	paperRepo   repos.PaperRepo
	prefRepo    repos.UserPreferenceRepo
	actionRepo  repos.UserActionRepo
	summaryRepo repos.SummaryRepo
}

func NewRecommendationService(
	db *gorm.DB,
	log *logger.Logger,
	weights config.ScoringWeights,
	paperRepo repos.PaperRepo,
	prefRepo repos.UserPreferenceRepo,
	actionRepo repos.UserActionRepo,
	summaryRepo repos.SummaryRepo,
) RecommendationService {
	return &recommendationService{
		db:          db,
		log:         log.With("service", "RecommendationService"),
		weights:     weights,
		scorer:      recommend.NewScorer(weights),
		paperRepo:   paperRepo,
		prefRepo:    prefRepo,
		actionRepo:  actionRepo,
		summaryRepo: summaryRepo,
	}
}

// GetRecommendations fetches a read-only snapshot for the user, scores every
// paper fresh (scores are never cached), ranks and truncates, then embeds
// stored summaries into the response items.
func (s *recommendationService) GetRecommendations(ctx context.Context, req types.RecommendationRequest) (*types.RecommendationResponse, error) {
	pref, err := s.prefRepo.GetByUserID(ctx, nil, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user preference: %w", err)
	}

	actions, err := s.actionRepo.GetByUserID(ctx, nil, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user actions: %w", err)
	}

	papers, err := s.paperRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load papers: %w", err)
	}
	if len(papers) == 0 {
		return &types.RecommendationResponse{Papers: []types.PaperResponse{}, Total: 0}, nil
	}

	scored := make([]recommend.ScoredPaper, 0, len(papers))
	for _, paper := range papers {
		scored = append(scored, recommend.ScoredPaper{
			Paper: paper,
			Score: s.scorer.Score(paper, pref, actions, req),
		})
	}

	count := req.DailyCount
	if count <= 0 {
		count = s.weights.DefaultDailyCount
	}
	ranked := recommend.Rank(scored, count)

	items := make([]types.PaperResponse, 0, len(ranked))
	for _, sp := range ranked {
		summary, err := s.summaryRepo.GetByPaperID(ctx, nil, sp.Paper.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load summary for %s: %w", sp.Paper.ID, err)
		}
		items = append(items, types.NewPaperResponse(sp.Paper, summary))
	}

	s.log.Debug("Recommendations computed", "user_id", req.UserID, "candidates", len(papers), "returned", len(items))
	return &types.RecommendationResponse{Papers: items, Total: len(items)}, nil
}
