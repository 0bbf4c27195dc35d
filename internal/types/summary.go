package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Evidence scope: how much of the paper's text informed the summary.
const (
	EvidenceScopeAbstract = "abstract"
	EvidenceScopeIntro    = "intro"
	EvidenceScopeFull     = "full"
)

// Summary holds one generated summary per paper. The write path updates in
// place rather than inserting a second row, keeping the paper's
// is_summarized flag equivalent to "a summary row exists".
type Summary struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	PaperID       string                      `gorm:"index;not null;column:paper_id" json:"paper_id"`
	HookOneLiner  string                      `gorm:"type:text;column:hook_one_liner" json:"hook_one_liner"`
	KeyPoints     datatypes.JSONSlice[string] `gorm:"column:key_points" json:"key_points"`
	Detailed      string                      `gorm:"type:text;column:detailed" json:"detailed"`
	EvidenceScope string                      `gorm:"column:evidence_scope" json:"evidence_scope"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

func (Summary) TableName() string { return "summaries" }

func (s *Summary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
