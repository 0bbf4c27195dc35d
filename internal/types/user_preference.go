package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserPreference is at most one row per user id; saves overwrite in place.
type UserPreference struct {
	ID         uuid.UUID                          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string                             `gorm:"uniqueIndex;not null;column:user_id" json:"user_id"`
	Tags       datatypes.JSONSlice[TagPreference] `gorm:"column:tags" json:"tags"`
	Level      string                             `gorm:"column:level" json:"level"`
	DailyCount int                                `gorm:"default:10;column:daily_count" json:"daily_count"`
	CreatedAt  time.Time                          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time                          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserPreference) TableName() string { return "user_preferences" }

func (p *UserPreference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Experience levels. Unknown values fall back to undergraduate when scoring.
const (
	LevelUndergraduate = "undergraduate"
	LevelGraduate      = "graduate"
	LevelResearcher    = "researcher"
	LevelPractitioner  = "practitioner"
)
