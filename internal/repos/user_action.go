package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

type UserActionRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]types.UserAction, error)
	Create(ctx context.Context, tx *gorm.DB, actions []*types.UserAction) error
}

type userActionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserActionRepo(db *gorm.DB, baseLog *logger.Logger) UserActionRepo {
	return &userActionRepo{db: db, log: baseLog.With("repo", "UserActionRepo")}
}

// GetByUserID returns every action row for the user. Duplicate rows per
// (user, paper) pair are expected and must all be returned.
func (r *userActionRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]types.UserAction, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []types.UserAction
	if userID == "" {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *userActionRepo) Create(ctx context.Context, tx *gorm.DB, actions []*types.UserAction) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(actions) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&actions).Error
}
