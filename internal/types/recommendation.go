package types

import "encoding/json"

// TagPreference is the normalized {name, weight} pair. Clients historically
// sent either {"name":"NLP","weight":5} or the bare string "NLP"; both are
// accepted here so the scoring engine only ever sees the struct form.
type TagPreference struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// DefaultTagWeight applies when a tag arrives without a weight.
const DefaultTagWeight = 3

func (t *TagPreference) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		t.Name = bare
		t.Weight = DefaultTagWeight
		return nil
	}

	var obj struct {
		Name   string `json:"name"`
		Weight *int   `json:"weight"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	t.Name = obj.Name
	if obj.Weight != nil {
		t.Weight = *obj.Weight
	} else {
		t.Weight = DefaultTagWeight
	}
	return nil
}

// RecommendationRequest is transient request state, never persisted.
type RecommendationRequest struct {
	UserID     string          `json:"user_id"`
	Tags       []TagPreference `json:"tags,omitempty"`
	Level      string          `json:"level,omitempty"`
	DailyCount int             `json:"daily_count,omitempty"`
	ExcludeIDs []string        `json:"exclude_ids,omitempty"`
}

// PaperMetrics is the nested metrics object of the wire format.
type PaperMetrics struct {
	Citations     int     `json:"citations"`
	TrendingScore float64 `json:"trendingScore"`
	RecencyScore  float64 `json:"recencyScore"`
}

// SummaryResponse is the wire shape of an embedded summary.
type SummaryResponse struct {
	PaperID       string   `json:"paperId"`
	HookOneLiner  string   `json:"hookOneLiner"`
	KeyPoints     []string `json:"keyPoints"`
	Detailed      string   `json:"detailed"`
	EvidenceScope string   `json:"evidenceScope"`
}

func NewSummaryResponse(s *Summary) *SummaryResponse {
	if s == nil {
		return nil
	}
	points := []string(s.KeyPoints)
	if points == nil {
		points = []string{}
	}
	return &SummaryResponse{
		PaperID:       s.PaperID,
		HookOneLiner:  s.HookOneLiner,
		KeyPoints:     points,
		Detailed:      s.Detailed,
		EvidenceScope: s.EvidenceScope,
	}
}

// PaperResponse is one ranked recommendation item.
type PaperResponse struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Authors  []string         `json:"authors"`
	Year     int              `json:"year"`
	Venue    string           `json:"venue"`
	Tags     []string         `json:"tags"`
	Abstract string           `json:"abstract"`
	PDFURL   string           `json:"pdf_url"`
	Metrics  PaperMetrics     `json:"metrics"`
	Summary  *SummaryResponse `json:"summary"`
}

func NewPaperResponse(p Paper, summary *Summary) PaperResponse {
	authors := []string(p.Authors)
	if authors == nil {
		authors = []string{}
	}
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return PaperResponse{
		ID:       p.ID,
		Title:    p.Title,
		Authors:  authors,
		Year:     p.Year,
		Venue:    p.Venue,
		Tags:     tags,
		Abstract: p.Abstract,
		PDFURL:   p.PDFURL,
		Metrics: PaperMetrics{
			Citations:     p.Citations,
			TrendingScore: p.TrendingScore,
			RecencyScore:  p.RecencyScore,
		},
		Summary: NewSummaryResponse(summary),
	}
}

// RecommendationResponse carries the ordered items; Total always equals
// len(Papers).
type RecommendationResponse struct {
	Papers []PaperResponse `json:"papers"`
	Total  int             `json:"total"`
}

// PaperDetail is the single-paper endpoint shape: the full stored record
// plus the embedded summary.
type PaperDetail struct {
	Paper
	Summary *SummaryResponse `json:"summary"`
}

// UserPreferenceRequest is the save-preferences payload.
type UserPreferenceRequest struct {
	UserID     string          `json:"user_id"`
	Tags       []TagPreference `json:"tags"`
	Level      string          `json:"level"`
	DailyCount int             `json:"daily_count"`
}
