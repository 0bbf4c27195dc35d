package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

type PaperRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Paper, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]types.Paper, error)
	GetUnsummarized(ctx context.Context, tx *gorm.DB) ([]types.Paper, error)
	Upsert(ctx context.Context, tx *gorm.DB, papers []*types.Paper) error
	MarkSummarized(ctx context.Context, tx *gorm.DB, paperID string) error
}

type paperRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPaperRepo(db *gorm.DB, baseLog *logger.Logger) PaperRepo {
	return &paperRepo{db: db, log: baseLog.With("repo", "PaperRepo")}
}

func (r *paperRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Paper, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == "" {
		return nil, nil
	}
	var row types.Paper
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, nil
	}
	return &row, nil
}

func (r *paperRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]types.Paper, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []types.Paper
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *paperRepo) GetUnsummarized(ctx context.Context, tx *gorm.DB) ([]types.Paper, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []types.Paper
	if err := transaction.WithContext(ctx).
		Where("is_summarized = ?", false).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *paperRepo) Upsert(ctx context.Context, tx *gorm.DB, papers []*types.Paper) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(papers) == 0 {
		return nil
	}
	// Re-crawls refresh metadata and metrics but never reset the
	// summarization state of a paper.
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "arxiv_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "authors", "year", "venue", "tags", "abstract",
				"pdf_url", "arxiv_url", "published_date", "updated_date",
				"citations", "trending_score", "recency_score",
			}),
		}).
		Create(&papers).Error
}

func (r *paperRepo) MarkSummarized(ctx context.Context, tx *gorm.DB, paperID string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Paper{}).
		Where("id = ?", paperID).
		Update("is_summarized", true).Error
}
