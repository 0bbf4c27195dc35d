package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

type UserPreferenceRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*types.UserPreference, error)
	Upsert(ctx context.Context, tx *gorm.DB, pref *types.UserPreference) error
}

type userPreferenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserPreferenceRepo(db *gorm.DB, baseLog *logger.Logger) UserPreferenceRepo {
	return &userPreferenceRepo{db: db, log: baseLog.With("repo", "UserPreferenceRepo")}
}

func (r *userPreferenceRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*types.UserPreference, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == "" {
		return nil, nil
	}
	var row types.UserPreference
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.UserID == "" {
		return nil, nil
	}
	return &row, nil
}

// Upsert writes the whole preference row in a single statement so concurrent
// saves from the same user resolve last-writer-wins instead of interleaving.
func (r *userPreferenceRepo) Upsert(ctx context.Context, tx *gorm.DB, pref *types.UserPreference) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"tags", "level", "daily_count", "updated_at"}),
		}).
		Create(pref).Error
}
