package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

// templateSummarizer produces a deterministic summary from stored metadata.
// It backs demo setups without an API key and is the degradation path when
// the model call fails.
type templateSummarizer struct {
	log *logger.Logger
}

func NewTemplateSummarizer(log *logger.Logger) Summarizer {
	return &templateSummarizer{log: log.With("service", "TemplateSummarizer")}
}

func (s *templateSummarizer) Summarize(ctx context.Context, paper types.Paper) (*Data, error) {
	topic := "AI"
	if len(paper.Tags) > 0 {
		n := len(paper.Tags)
		if n > 3 {
			n = 3
		}
		topic = strings.Join(paper.Tags[:n], ", ")
	}

	title := paper.Title
	if len(title) > 50 {
		title = title[:50] + "..."
	}

	abstract := paper.Abstract
	if len(abstract) > 300 {
		abstract = abstract[:300] + "..."
	}

	keyPoints := []string{
		fmt.Sprintf("%s is recent %s research.", paper.Title, topic),
	}
	if len(paper.Authors) > 0 {
		n := len(paper.Authors)
		if n > 2 {
			n = 2
		}
		keyPoints = append(keyPoints, "Authors: "+strings.Join(paper.Authors[:n], ", "))
	}
	keyPoints = append(keyPoints, "See the paper for details.")

	return &Data{
		HookOneLiner:  fmt.Sprintf("%s makes a notable contribution to %s.", title, topic),
		KeyPoints:     clampKeyPoints(keyPoints),
		Detailed:      strings.TrimSpace(fmt.Sprintf("This paper is recent %s research.\n%s", topic, abstract)),
		EvidenceScope: types.EvidenceScopeAbstract,
	}, nil
}

// ParseSummaryText recovers a summary from free-form model output when JSON
// parsing fails: first line is the hook, bulleted or numbered lines under a
// key-points heading become key points, lines under a details heading join
// into the narrative.
func ParseSummaryText(text string) *Data {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	hook := ""
	if len(lines) > 0 {
		hook = strings.TrimSpace(lines[0])
	}

	var keyPoints []string
	var detailed strings.Builder
	inKeyPoints := false
	inDetailed := false

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "key_points") || strings.Contains(lower, "key points"):
			inKeyPoints = true
			inDetailed = false
			continue
		case strings.Contains(lower, "detailed") || strings.Contains(lower, "details"):
			inKeyPoints = false
			inDetailed = true
			continue
		}

		if inKeyPoints && isListLine(line) {
			keyPoints = append(keyPoints, strings.TrimLeft(line, "-*0123456789. "))
		} else if inDetailed {
			if detailed.Len() > 0 {
				detailed.WriteString(" ")
			}
			detailed.WriteString(line)
		}
	}

	return &Data{
		HookOneLiner:  hook,
		KeyPoints:     clampKeyPoints(keyPoints),
		Detailed:      detailed.String(),
		EvidenceScope: types.EvidenceScopeAbstract,
	}
}

func isListLine(line string) bool {
	if line == "" {
		return false
	}
	c := line[0]
	return c == '-' || c == '*' || (c >= '0' && c <= '9')
}
