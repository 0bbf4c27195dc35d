package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
	"github.com/Gomguk-paper/Gomguk-BE/internal/utils"
)

const maxAbstractChars = 2000

type openAISummarizer struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	maxRetries int
	fallback   Summarizer
}

func NewOpenAISummarizer(log *logger.Logger, apiKey string) Summarizer {
	svcLog := log.With("service", "OpenAISummarizer")
	timeoutSec := utils.GetEnvAsInt("OPENAI_TIMEOUT_SECONDS", 120, log)
	return &openAISummarizer{
		log:        svcLog,
		baseURL:    utils.GetEnv("OPENAI_BASE_URL", "https://api.openai.com", log),
		apiKey:     apiKey,
		model:      utils.GetEnv("OPENAI_MODEL", "gpt-4o-mini", log),
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		maxRetries: utils.GetEnvAsInt("OPENAI_MAX_RETRIES", 3, log),
		fallback:   NewTemplateSummarizer(log),
	}
}

// Summarize asks the chat completions API for a structured summary. Any API
// or parse failure degrades to the template summarizer rather than stalling
// the batch run.
func (s *openAISummarizer) Summarize(ctx context.Context, paper types.Paper) (*Data, error) {
	abstract := paper.Abstract
	if len(abstract) > maxAbstractChars {
		abstract = abstract[:maxAbstractChars]
	}

	prompt := fmt.Sprintf(`Summarize the following paper.

Title: %s
Authors: %s
Abstract:
%s

Respond with JSON only:
{
  "hook_one_liner": "the core contribution in one sentence",
  "key_points": ["3 to 5 key points"],
  "detailed": "main contribution and methodology",
  "evidence_scope": "abstract"
}`, paper.Title, strings.Join(paper.Authors, ", "), abstract)

	raw, err := s.chatCompletion(ctx, prompt)
	if err != nil {
		s.log.Warn("OpenAI summarization failed, using template summary", "paper_id", paper.ID, "error", err)
		return s.fallback.Summarize(ctx, paper)
	}

	data := parseModelOutput(raw)
	if data.HookOneLiner == "" && data.Detailed == "" {
		s.log.Warn("OpenAI response yielded no usable summary, using template summary", "paper_id", paper.ID)
		return s.fallback.Summarize(ctx, paper)
	}
	return data, nil
}

// parseModelOutput extracts Data from the model response: JSON first
// (tolerating code fences), then the line-oriented text fallback.
func parseModelOutput(raw string) *Data {
	text := stripCodeFence(raw)

	var data Data
	if err := json.Unmarshal([]byte(text), &data); err == nil {
		data.KeyPoints = clampKeyPoints(data.KeyPoints)
		if data.EvidenceScope == "" {
			data.EvidenceScope = types.EvidenceScopeAbstract
		}
		return &data
	}
	return ParseSummaryText(raw)
}

func stripCodeFence(text string) string {
	if i := strings.Index(text, "```json"); i >= 0 {
		text = text[i+len("```json"):]
	} else if i := strings.Index(text, "```"); i >= 0 {
		text = text[i+len("```"):]
	}
	if i := strings.Index(text, "```"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *openAISummarizer) chatCompletion(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a researcher who summarizes AI papers clearly and concisely."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	var resp chatResponse
	if err := s.do(ctx, "POST", "/v1/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

type openAIHTTPError struct {
	StatusCode int
	Body       string
}

func (e *openAIHTTPError) Error() string {
	return fmt.Sprintf("openai http %d: %s", e.StatusCode, e.Body)
}

func isRetryableHTTP(code int) bool {
	if code == 408 || code == 429 {
		return true
	}
	return code >= 500 && code <= 599
}

func isRetryableErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var httpErr *openAIHTTPError
	if errors.As(err, &httpErr) {
		return isRetryableHTTP(httpErr.StatusCode)
	}
	return false
}

func jitterSleep(base time.Duration) time.Duration {
	// +/- 20%
	if base <= 0 {
		return 0
	}
	delta := base.Seconds() * 0.2
	low := base.Seconds() - delta
	v := low + rand.Float64()*(2*delta)
	return time.Duration(v * float64(time.Second))
}

func (s *openAISummarizer) doOnce(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, raw, &openAIHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, raw, nil
}

func (s *openAISummarizer) do(ctx context.Context, method, path string, body any, out any) error {
	backoff := 1 * time.Second

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		resp, raw, err := s.doOnce(ctx, method, path, body)
		if err == nil {
			if out == nil {
				return nil
			}
			if uErr := json.Unmarshal(raw, out); uErr != nil {
				return fmt.Errorf("openai decode error: %w", uErr)
			}
			return nil
		}

		if !isRetryableErr(err) {
			return err
		}
		if attempt == s.maxRetries {
			return err
		}

		sleepFor := backoff
		if resp != nil {
			ra := strings.TrimSpace(resp.Header.Get("Retry-After"))
			if ra != "" {
				if secs, parseErr := strconv.Atoi(ra); parseErr == nil && secs > 0 {
					sleepFor = time.Duration(secs) * time.Second
				}
			}
		}
		if sleepFor > 10*time.Second {
			sleepFor = 10 * time.Second
		}
		sleepFor = jitterSleep(sleepFor)

		s.log.Warn("OpenAI request retrying",
			"path", path,
			"attempt", attempt+1,
			"max_retries", s.maxRetries,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)

		time.Sleep(sleepFor)
		backoff *= 2
	}

	return fmt.Errorf("unreachable retry loop")
}
