package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

type SummaryRepo interface {
	GetByPaperID(ctx context.Context, tx *gorm.DB, paperID string) (*types.Summary, error)
	Upsert(ctx context.Context, tx *gorm.DB, summary *types.Summary) error
}

type summaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSummaryRepo(db *gorm.DB, baseLog *logger.Logger) SummaryRepo {
	return &summaryRepo{db: db, log: baseLog.With("repo", "SummaryRepo")}
}

func (r *summaryRepo) GetByPaperID(ctx context.Context, tx *gorm.DB, paperID string) (*types.Summary, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if paperID == "" {
		return nil, nil
	}
	var row types.Summary
	err := transaction.WithContext(ctx).
		Where("paper_id = ?", paperID).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

// Upsert keeps the one-summary-per-paper invariant: an existing row is
// updated in place, otherwise a new row is inserted.
func (r *summaryRepo) Upsert(ctx context.Context, tx *gorm.DB, summary *types.Summary) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	existing, err := r.GetByPaperID(ctx, transaction, summary.PaperID)
	if err != nil {
		return err
	}
	if existing == nil {
		return transaction.WithContext(ctx).Create(summary).Error
	}
	return transaction.WithContext(ctx).
		Model(existing).
		Updates(map[string]interface{}{
			"hook_one_liner": summary.HookOneLiner,
			"key_points":     summary.KeyPoints,
			"detailed":       summary.Detailed,
			"evidence_scope": summary.EvidenceScope,
		}).Error
}
