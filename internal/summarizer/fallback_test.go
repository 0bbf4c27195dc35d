package summarizer

import (
	"context"
	"strings"
	"testing"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	return log
}

func TestParseSummaryText(t *testing.T) {
	text := `Transformers replace recurrence with attention.

Key points:
- Self-attention replaces recurrence entirely.
- Training is more parallelizable.
1. State of the art translation quality.

Detailed:
The paper introduces the Transformer architecture.
It relies solely on attention mechanisms.`

	data := ParseSummaryText(text)

	if data.HookOneLiner != "Transformers replace recurrence with attention." {
		t.Fatalf("unexpected hook %q", data.HookOneLiner)
	}
	if len(data.KeyPoints) != 3 {
		t.Fatalf("expected 3 key points, got %v", data.KeyPoints)
	}
	if data.KeyPoints[0] != "Self-attention replaces recurrence entirely." {
		t.Fatalf("unexpected first key point %q", data.KeyPoints[0])
	}
	if !strings.Contains(data.Detailed, "Transformer architecture") {
		t.Fatalf("unexpected detailed %q", data.Detailed)
	}
	if data.EvidenceScope != types.EvidenceScopeAbstract {
		t.Fatalf("unexpected evidence scope %q", data.EvidenceScope)
	}
}

func TestParseSummaryText_CapsKeyPoints(t *testing.T) {
	text := `Hook line.
Key points:
- one
- two
- three
- four
- five
- six
- seven`

	data := ParseSummaryText(text)
	if len(data.KeyPoints) != MaxKeyPoints {
		t.Fatalf("expected %d key points, got %d", MaxKeyPoints, len(data.KeyPoints))
	}
}

func TestParseModelOutput_JSONWithCodeFence(t *testing.T) {
	raw := "```json\n" + `{
  "hook_one_liner": "BERT pre-trains bidirectional representations.",
  "key_points": ["masked language modeling", "next sentence prediction"],
  "detailed": "BERT conditions on both left and right context.",
  "evidence_scope": "abstract"
}` + "\n```"

	data := parseModelOutput(raw)
	if data.HookOneLiner != "BERT pre-trains bidirectional representations." {
		t.Fatalf("unexpected hook %q", data.HookOneLiner)
	}
	if len(data.KeyPoints) != 2 {
		t.Fatalf("unexpected key points %v", data.KeyPoints)
	}
}

func TestParseModelOutput_DefaultsEvidenceScope(t *testing.T) {
	data := parseModelOutput(`{"hook_one_liner": "h", "key_points": [], "detailed": "d"}`)
	if data.EvidenceScope != types.EvidenceScopeAbstract {
		t.Fatalf("expected default evidence scope, got %q", data.EvidenceScope)
	}
}

func TestTemplateSummarizer(t *testing.T) {
	s := NewTemplateSummarizer(testLogger(t))

	paper := types.Paper{
		ID:       "arxiv_1706.03762",
		Title:    "Attention Is All You Need",
		Authors:  []string{"Ashish Vaswani", "Noam Shazeer", "Niki Parmar"},
		Tags:     []string{"cs.CL", "cs.LG", "cs.AI", "stat.ML"},
		Abstract: strings.Repeat("a", 500),
	}

	data, err := s.Summarize(context.Background(), paper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.HookOneLiner == "" {
		t.Fatalf("expected a hook")
	}
	if len(data.KeyPoints) == 0 || len(data.KeyPoints) > MaxKeyPoints {
		t.Fatalf("unexpected key points %v", data.KeyPoints)
	}
	if !strings.Contains(data.KeyPoints[1], "Ashish Vaswani, Noam Shazeer") {
		t.Fatalf("expected first two authors, got %q", data.KeyPoints[1])
	}
	if data.EvidenceScope != types.EvidenceScopeAbstract {
		t.Fatalf("unexpected evidence scope %q", data.EvidenceScope)
	}
	if !strings.Contains(data.Detailed, "...") {
		t.Fatalf("expected truncated abstract in %q", data.Detailed)
	}
}
