package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/repos"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

type PreferenceService interface {
	Save(ctx context.Context, req types.UserPreferenceRequest) error
	Get(ctx context.Context, userID string) (*types.UserPreference, error)
}

type preferenceService struct {
	db       *gorm.DB
	log      *logger.Logger
	prefRepo repos.UserPreferenceRepo
}

func NewPreferenceService(db *gorm.DB, log *logger.Logger, prefRepo repos.UserPreferenceRepo) PreferenceService {
	return &preferenceService{
		db:       db,
		log:      log.With("service", "PreferenceService"),
		prefRepo: prefRepo,
	}
}

// Save overwrites the user's stored preference in one atomic upsert.
func (s *preferenceService) Save(ctx context.Context, req types.UserPreferenceRequest) error {
	dailyCount := req.DailyCount
	if dailyCount <= 0 {
		dailyCount = 10
	}
	pref := &types.UserPreference{
		UserID:     req.UserID,
		Tags:       req.Tags,
		Level:      req.Level,
		DailyCount: dailyCount,
	}
	if err := s.prefRepo.Upsert(ctx, nil, pref); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	s.log.Debug("Preference saved", "user_id", req.UserID, "tags", len(req.Tags))
	return nil
}

func (s *preferenceService) Get(ctx context.Context, userID string) (*types.UserPreference, error) {
	pref, err := s.prefRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preference: %w", err)
	}
	if pref == nil {
		return nil, ErrNotFound
	}
	return pref, nil
}
