package summarizer

import (
	"context"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
	"github.com/Gomguk-paper/Gomguk-BE/internal/utils"
)

// MaxKeyPoints caps the key point list of any generated summary.
const MaxKeyPoints = 5

// Data is one generated summary before it is persisted.
type Data struct {
	HookOneLiner  string   `json:"hook_one_liner"`
	KeyPoints     []string `json:"key_points"`
	Detailed      string   `json:"detailed"`
	EvidenceScope string   `json:"evidence_scope"`
}

type Summarizer interface {
	Summarize(ctx context.Context, paper types.Paper) (*Data, error)
}

// New returns the OpenAI-backed summarizer when an API key is configured and
// the deterministic template summarizer otherwise, so the pipeline works in
// demo setups without credentials.
func New(log *logger.Logger) Summarizer {
	apiKey := utils.GetEnv("OPENAI_API_KEY", "", log)
	if apiKey == "" {
		log.Warn("OPENAI_API_KEY not set, using template summaries")
		return NewTemplateSummarizer(log)
	}
	return NewOpenAISummarizer(log, apiKey)
}

func clampKeyPoints(points []string) []string {
	if len(points) > MaxKeyPoints {
		return points[:MaxKeyPoints]
	}
	return points
}
