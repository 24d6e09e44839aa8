package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"paper-letter/models"
)

// 전문 전체를 프롬프트에 넣으면 토큰 한도를 넘기므로 앞부분만 사용한다.
// (~30k tokens ≈ 120k chars)
const maxFullTextChars = 120000

// LLMRequestLog records one model call for usage tracking. A non-nil
// Error means the call failed or its output was rejected; the log is
// still returned so callers can persist it.
type LLMRequestLog struct {
	Operation    string     `json:"operation"`
	Response     string     `json:"response"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	GeneratedAt  time.Time  `json:"generated_at"`
	Error        *string    `json:"error,omitempty"`
}

func (l *LLMRequestLog) fail(err error) {
	msg := err.Error()
	l.Error = &msg
}

// Summarizer generates the per-paper reading artifacts: leveled
// summaries, a comprehension quiz, and a pre-reading guide.
type Summarizer struct {
	llm LLM
}

func New(llm LLM) *Summarizer {
	return &Summarizer{llm: llm}
}

// generate runs one model call and wraps the outcome in a request log.
// An empty response is treated as a failure, never as valid output.
func (s *Summarizer) generate(ctx context.Context, operation, systemInstruction, prompt string) (*GenerateResult, *LLMRequestLog, error) {
	startTime := time.Now()

	result, err := s.llm.Generate(ctx, systemInstruction, prompt)
	if err != nil {
		reqLog := &LLMRequestLog{
			Operation:   operation,
			LatencyMs:   time.Since(startTime).Milliseconds(),
			GeneratedAt: time.Now(),
		}
		reqLog.fail(err)
		return nil, reqLog, err
	}

	reqLog := &LLMRequestLog{
		Operation:    operation,
		Response:     result.Text,
		LatencyMs:    time.Since(startTime).Milliseconds(),
		TokenUsage:   result.TokenUsage,
		ModelName:    result.ModelName,
		ModelVersion: result.ModelVersion,
		GeneratedAt:  time.Now(),
	}

	if strings.TrimSpace(result.Text) == "" {
		err := fmt.Errorf("empty response from model")
		reqLog.fail(err)
		return nil, reqLog, err
	}
	return result, reqLog, nil
}

// GenerateSummaries produces one summary per reading level. The stage is
// all-or-nothing: any level failing fails the whole call, and nothing
// partial is returned.
func (s *Summarizer) GenerateSummaries(ctx context.Context, title, abstract string) (map[models.ReadingLevel]string, []LLMRequestLog, error) {
	summaries := make(map[models.ReadingLevel]string, len(models.AllReadingLevels))
	logs := make([]LLMRequestLog, 0, len(models.AllReadingLevels))

	for _, level := range models.AllReadingLevels {
		prompt := fmt.Sprintf("%s\n\nTitle: %s\nAbstract: %s", summaryPrompts[level], title, abstract)

		result, reqLog, err := s.generate(ctx, "summary_"+string(level), SYSTEM_INSTRUCTION, prompt)
		if reqLog != nil {
			logs = append(logs, *reqLog)
		}
		if err != nil {
			return nil, logs, fmt.Errorf("failed to generate %s summary: %w", level, err)
		}
		summaries[level] = strings.TrimSpace(result.Text)
	}

	return summaries, logs, nil
}

// GenerateQuiz produces a multiple-choice quiz for the paper. Output
// that does not parse as JSON or fails structural validation is a
// generation failure: the quiz is discarded, only the log survives.
func (s *Summarizer) GenerateQuiz(ctx context.Context, title, abstract string) (*models.QuizData, *LLMRequestLog, error) {
	prompt := fmt.Sprintf("%s\n\nTitle: %s\nAbstract: %s", QUIZ_PROMPT, title, abstract)

	result, reqLog, err := s.generate(ctx, "quiz", SYSTEM_INSTRUCTION, prompt)
	if err != nil {
		return nil, reqLog, err
	}

	var quiz models.QuizData
	if err := json.Unmarshal([]byte(result.Text), &quiz); err != nil {
		err = fmt.Errorf("failed to parse quiz JSON: %w", err)
		reqLog.fail(err)
		return nil, reqLog, err
	}
	if err := quiz.Validate(); err != nil {
		err = fmt.Errorf("invalid quiz structure: %w", err)
		reqLog.fail(err)
		return nil, reqLog, err
	}

	return &quiz, reqLog, nil
}

// GeneratePrereading produces the pre-reading guide from the paper's
// full text. Only parseability is enforced on the result.
func (s *Summarizer) GeneratePrereading(ctx context.Context, title, abstract, fullText, fieldName string) (*models.PrereadingData, *LLMRequestLog, error) {
	prompt := fmt.Sprintf("%s\n\nField: %s\nTitle: %s\nAbstract: %s\n\nFull Paper Text:\n%s",
		PREREADING_PROMPT, fieldName, title, abstract, truncateRunes(fullText, maxFullTextChars))

	result, reqLog, err := s.generate(ctx, "prereading", PREREADING_SYSTEM_INSTRUCTION, prompt)
	if err != nil {
		return nil, reqLog, err
	}

	var prereading models.PrereadingData
	if err := json.Unmarshal([]byte(result.Text), &prereading); err != nil {
		err = fmt.Errorf("failed to parse prereading JSON: %w", err)
		reqLog.fail(err)
		return nil, reqLog, err
	}

	return &prereading, reqLog, nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
