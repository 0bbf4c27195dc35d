package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserAction records one interaction of a user with a paper. Nothing enforces
// a single row per (user, paper) pair, and scoring depends on that: every
// matching row contributes its own engagement boost.
type UserAction struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string     `gorm:"index;not null;column:user_id" json:"user_id"`
	PaperID   string     `gorm:"index;not null;column:paper_id" json:"paper_id"`
	Liked     bool       `gorm:"default:false;column:liked" json:"liked"`
	Saved     bool       `gorm:"default:false;column:saved" json:"saved"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserAction) TableName() string { return "user_actions" }

func (a *UserAction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
