package types

import (
	"time"

	"gorm.io/datatypes"
)

// Paper is one crawled arXiv paper. The primary key is the stable string id
// ("arxiv_<arxiv_id>") assigned at crawl time; rows are updated in place by
// later crawls and never deleted.
type Paper struct {
	ID            string                      `gorm:"primaryKey;column:id" json:"id"`
	ArxivID       string                      `gorm:"uniqueIndex;column:arxiv_id" json:"arxiv_id"`
	Title         string                      `gorm:"not null;column:title" json:"title"`
	Authors       datatypes.JSONSlice[string] `gorm:"column:authors" json:"authors"`
	Year          int                         `gorm:"column:year" json:"year"`
	Venue         string                      `gorm:"column:venue" json:"venue"`
	Tags          datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	Abstract      string                      `gorm:"type:text;column:abstract" json:"abstract"`
	PDFURL        string                      `gorm:"column:pdf_url" json:"pdf_url"`
	ArxivURL      string                      `gorm:"column:arxiv_url" json:"arxiv_url"`
	PublishedDate *time.Time                  `gorm:"column:published_date" json:"published_date"`
	UpdatedDate   *time.Time                  `gorm:"column:updated_date" json:"updated_date"`

	Citations     int     `gorm:"default:0;column:citations" json:"citations"`
	TrendingScore float64 `gorm:"default:0;column:trending_score" json:"trending_score"`
	RecencyScore  float64 `gorm:"default:0;column:recency_score" json:"recency_score"`

	CrawledAt    time.Time `gorm:"autoCreateTime;column:crawled_at" json:"crawled_at"`
	IsSummarized bool      `gorm:"default:false;column:is_summarized" json:"is_summarized"`
}

func (Paper) TableName() string { return "papers" }
