package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"paper-letter/config"
	"paper-letter/eventbus"
	"paper-letter/events"
	"paper-letter/feeder"
	"paper-letter/logger"
	"paper-letter/models"
	"paper-letter/summarizer"
)

// llm_logs 의 response_excerpt 컬럼에 저장할 응답 앞부분 길이.
const responseExcerptLength = 500

// Store is the persistence surface the services need.
// *repositories.Store satisfies it; tests use an in-memory fake.
type Store interface {
	ListFields(ctx context.Context) ([]models.Field, error)
	GetFieldBySlug(ctx context.Context, slug string) (*models.Field, error)

	UpsertPaper(ctx context.Context, p *models.Paper) (*models.Paper, error)
	GetPaperByID(ctx context.Context, id uuid.UUID) (*models.Paper, error)
	UpdatePaperFullText(ctx context.Context, id uuid.UUID, fullText string) error

	GetDailyPaper(ctx context.Context, date time.Time, fieldID uuid.UUID) (*models.DailyPaper, error)
	CreateDailyPaper(ctx context.Context, date time.Time, fieldID, paperID uuid.UUID) (*models.DailyPaper, error)
	UsedArxivIDs(ctx context.Context, fieldID uuid.UUID) (map[string]struct{}, error)

	CountSummaries(ctx context.Context, paperID, fieldID uuid.UUID) (int, error)
	UpsertSummary(ctx context.Context, s *models.Summary) error
	ListSummaries(ctx context.Context, paperID, fieldID uuid.UUID) ([]models.Summary, error)

	QuizExists(ctx context.Context, paperID, fieldID uuid.UUID) (bool, error)
	UpsertQuiz(ctx context.Context, q *models.Quiz) error
	GetQuiz(ctx context.Context, paperID, fieldID uuid.UUID) (*models.Quiz, error)

	PrereadingExists(ctx context.Context, paperID, fieldID uuid.UUID) (bool, error)
	UpsertPrereading(ctx context.Context, p *models.Prereading) error
	GetPrereading(ctx context.Context, paperID, fieldID uuid.UUID) (*models.Prereading, error)

	InsertLLMLog(ctx context.Context, l models.LLMLog) error
}

// CandidateFetcher searches arXiv for one field's candidate papers.
type CandidateFetcher interface {
	FetchCandidates(ctx context.Context, query string) ([]models.CandidatePaper, error)
}

// ArtifactGenerator produces the LLM artifacts for a selected paper.
type ArtifactGenerator interface {
	GenerateSummaries(ctx context.Context, title, abstract string) (map[models.ReadingLevel]string, []summarizer.LLMRequestLog, error)
	GenerateQuiz(ctx context.Context, title, abstract string) (*models.QuizData, *summarizer.LLMRequestLog, error)
	GeneratePrereading(ctx context.Context, title, abstract, fullText, fieldName string) (*models.PrereadingData, *summarizer.LLMRequestLog, error)
}

// FullTextExtractor pulls a paper's plain text from its HTML rendering.
type FullTextExtractor interface {
	ExtractFullText(ctx context.Context, arxivID string) (string, error)
}

// IngestService runs the daily pipeline: select one paper per field,
// then make sure every reading artifact exists for it. Every write is
// an upsert, so re-running a day repairs holes instead of duplicating.
type IngestService struct {
	store     Store
	fetcher   CandidateFetcher
	generator ArtifactGenerator
	extractor FullTextExtractor // nil 이면 본문 추출 생략
	bus       eventbus.EventBus // nil 이면 이벤트 발행 생략

	interFieldDelay time.Duration
	fetchFullText   bool

	// 테스트에서 대기를 치환하기 위한 주입 지점
	sleep func(ctx context.Context, d time.Duration)
}

func NewIngestService(store Store, fetcher CandidateFetcher, generator ArtifactGenerator, extractor FullTextExtractor, bus eventbus.EventBus) *IngestService {
	cfg := config.GetConfig()
	return &IngestService{
		store:           store,
		fetcher:         fetcher,
		generator:       generator,
		extractor:       extractor,
		bus:             bus,
		interFieldDelay: time.Duration(cfg.Ingest.InterFieldDelaySeconds) * time.Second,
		fetchFullText:   cfg.Ingest.FetchFullText,
		sleep:           sleepContext,
	}
}

// IngestDaily runs the daily batch across every registered field.
// Fields are processed sequentially with a fixed delay between them;
// one field's failure never stops the rest. The returned report carries
// the per-field outcomes, so partial failure is data, not an error.
func (s *IngestService) IngestDaily(ctx context.Context, date time.Time) (*models.IngestReport, error) {
	date = normalizeDate(date)
	dateStr := date.Format("2006-01-02")

	fields, err := s.store.ListFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}

	report := &models.IngestReport{
		Message: fmt.Sprintf("Processed %d fields", len(fields)),
		Date:    dateStr,
		Results: make([]models.FieldIngestResult, 0, len(fields)),
	}

	for i, field := range fields {
		if i > 0 && s.interFieldDelay > 0 {
			s.sleep(ctx, s.interFieldDelay)
		}

		result := models.FieldIngestResult{Field: field.Slug}

		paper, err := s.ingestField(ctx, date, field)
		if err != nil {
			msg := err.Error()
			result.Error = &msg
			report.FailCount++
			logger.ErrorWithFields("field ingest failed", logger.Fields{
				"field": field.Slug,
				"date":  dateStr,
				"error": msg,
			})
		} else {
			result.Success = true
			result.PaperID = paper.ID.String()
			result.ArxivID = paper.ArxivID
			report.SuccessCount++
			logger.InfoWithFields("field ingest succeeded", logger.Fields{
				"field":    field.Slug,
				"date":     dateStr,
				"arxiv_id": paper.ArxivID,
			})
			s.publishPaperIngested(ctx, field, dateStr, paper)
		}

		report.Results = append(report.Results, result)
	}

	s.publishIngestCompleted(ctx, dateStr, report)
	return report, nil
}

// ingestField runs the selection and generation stages for one field.
// An existing daily paper short-circuits selection entirely: the batch
// then only fills in whichever artifacts are still missing.
func (s *IngestService) ingestField(ctx context.Context, date time.Time, field models.Field) (*models.Paper, error) {
	dp, err := s.store.GetDailyPaper(ctx, date, field.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily paper: %w", err)
	}

	var paper *models.Paper
	if dp != nil {
		paper, err = s.store.GetPaperByID(ctx, dp.PaperID)
		if err != nil {
			return nil, fmt.Errorf("failed to load selected paper: %w", err)
		}
		if paper == nil {
			return nil, fmt.Errorf("daily paper references missing paper %s", dp.PaperID)
		}
	} else {
		paper, err = s.selectPaper(ctx, date, field)
		if err != nil {
			return nil, err
		}
	}

	if err := s.ensureSummaries(ctx, field, paper); err != nil {
		return nil, err
	}
	if err := s.ensureQuiz(ctx, field, paper); err != nil {
		return nil, err
	}
	// Prereading 은 선택적 아티팩트: 실패가 필드 실패로 번지지 않는다.
	s.ensurePrereading(ctx, field, paper)

	return paper, nil
}

// selectPaper picks today's paper for a field: fetch candidates, prefer
// ones never used for this field, take the newest by publication time.
func (s *IngestService) selectPaper(ctx context.Context, date time.Time, field models.Field) (*models.Paper, error) {
	candidates, err := s.fetcher.FetchCandidates(ctx, field.ArxivQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no papers found on arXiv for query %q", field.ArxivQuery)
	}

	used, err := s.store.UsedArxivIDs(ctx, field.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load used arxiv ids: %w", err)
	}

	pool := feeder.FilterUnused(candidates, used)
	if len(pool) == 0 {
		// 모든 후보가 이미 선정된 적이 있으면 재사용을 허용한다.
		logger.WarnWithFields("all candidates already used, falling back to full pool", logger.Fields{
			"field":      field.Slug,
			"candidates": len(candidates),
		})
		pool = candidates
	}

	selected := feeder.SelectNewest(pool)
	if selected == nil {
		return nil, fmt.Errorf("no candidate selectable for field %s", field.Slug)
	}

	paper, err := s.store.UpsertPaper(ctx, models.NewPaperFromCandidate(*selected))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert paper: %w", err)
	}

	if s.fetchFullText && s.extractor != nil && paper.FullText == nil {
		s.fetchPaperFullText(ctx, paper)
	}

	dp, err := s.store.CreateDailyPaper(ctx, date, field.ID, paper.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to record daily paper: %w", err)
	}

	// 동시 실행으로 다른 논문이 먼저 선정되었다면 그쪽을 따른다.
	if dp.PaperID != paper.ID {
		winner, err := s.store.GetPaperByID(ctx, dp.PaperID)
		if err != nil {
			return nil, fmt.Errorf("failed to load selected paper: %w", err)
		}
		if winner == nil {
			return nil, fmt.Errorf("daily paper references missing paper %s", dp.PaperID)
		}
		return winner, nil
	}

	return paper, nil
}

// fetchPaperFullText 는 best-effort: 실패해도 필드 수집은 계속된다.
func (s *IngestService) fetchPaperFullText(ctx context.Context, paper *models.Paper) {
	text, err := s.extractor.ExtractFullText(ctx, paper.ArxivID)
	if err != nil {
		logger.WarnWithFields("full text extraction failed", logger.Fields{
			"arxiv_id": paper.ArxivID,
			"error":    err.Error(),
		})
		return
	}

	if err := s.store.UpdatePaperFullText(ctx, paper.ID, text); err != nil {
		logger.ErrorWithFields("failed to store full text", logger.Fields{
			"arxiv_id": paper.ArxivID,
			"error":    err.Error(),
		})
		return
	}
	paper.FullText = &text
}

func (s *IngestService) ensureSummaries(ctx context.Context, field models.Field, paper *models.Paper) error {
	count, err := s.store.CountSummaries(ctx, paper.ID, field.ID)
	if err != nil {
		return fmt.Errorf("failed to count summaries: %w", err)
	}
	if count >= len(models.AllReadingLevels) {
		return nil
	}

	summaries, reqLogs, err := s.generator.GenerateSummaries(ctx, paper.Title, paper.Abstract)
	s.recordLLMLogs(ctx, paper.ID, reqLogs)
	if err != nil {
		return fmt.Errorf("failed to generate summaries: %w", err)
	}

	for _, level := range models.AllReadingLevels {
		summary := &models.Summary{
			PaperID:     paper.ID,
			FieldID:     field.ID,
			Level:       level,
			SummaryText: summaries[level],
		}
		if err := s.store.UpsertSummary(ctx, summary); err != nil {
			return fmt.Errorf("failed to store %s summary: %w", level, err)
		}
	}
	return nil
}

func (s *IngestService) ensureQuiz(ctx context.Context, field models.Field, paper *models.Paper) error {
	exists, err := s.store.QuizExists(ctx, paper.ID, field.ID)
	if err != nil {
		return fmt.Errorf("failed to check quiz: %w", err)
	}
	if exists {
		return nil
	}

	quiz, reqLog, err := s.generator.GenerateQuiz(ctx, paper.Title, paper.Abstract)
	s.recordLLMLog(ctx, paper.ID, reqLog)
	if err != nil {
		// 구조 검증 실패 포함: 불량 퀴즈는 저장하지 않고 필드 실패로 처리한다.
		return fmt.Errorf("failed to generate quiz: %w", err)
	}

	if err := s.store.UpsertQuiz(ctx, &models.Quiz{
		PaperID:  paper.ID,
		FieldID:  field.ID,
		QuizData: *quiz,
	}); err != nil {
		return fmt.Errorf("failed to store quiz: %w", err)
	}
	return nil
}

func (s *IngestService) ensurePrereading(ctx context.Context, field models.Field, paper *models.Paper) {
	exists, err := s.store.PrereadingExists(ctx, paper.ID, field.ID)
	if err != nil {
		logger.ErrorWithFields("failed to check prereading", logger.Fields{
			"arxiv_id": paper.ArxivID,
			"error":    err.Error(),
		})
		return
	}
	if exists {
		return
	}

	if paper.FullText == nil || strings.TrimSpace(*paper.FullText) == "" {
		logger.DebugWithFields("skipping prereading, no full text", logger.Fields{
			"arxiv_id": paper.ArxivID,
		})
		return
	}

	data, reqLog, err := s.generator.GeneratePrereading(ctx, paper.Title, paper.Abstract, *paper.FullText, field.Name)
	s.recordLLMLog(ctx, paper.ID, reqLog)
	if err != nil {
		logger.WarnWithFields("prereading generation failed", logger.Fields{
			"arxiv_id": paper.ArxivID,
			"error":    err.Error(),
		})
		return
	}

	if err := s.store.UpsertPrereading(ctx, &models.Prereading{
		PaperID:        paper.ID,
		FieldID:        field.ID,
		PrereadingData: *data,
	}); err != nil {
		logger.ErrorWithFields("failed to store prereading", logger.Fields{
			"arxiv_id": paper.ArxivID,
			"error":    err.Error(),
		})
	}
}

func (s *IngestService) recordLLMLog(ctx context.Context, paperID uuid.UUID, reqLog *summarizer.LLMRequestLog) {
	if reqLog == nil {
		return
	}
	s.recordLLMLogs(ctx, paperID, []summarizer.LLMRequestLog{*reqLog})
}

// recordLLMLogs persists model usage rows. Best-effort: usage logging
// must never fail the pipeline.
func (s *IngestService) recordLLMLogs(ctx context.Context, paperID uuid.UUID, reqLogs []summarizer.LLMRequestLog) {
	for _, reqLog := range reqLogs {
		entry := models.LLMLog{
			ModelName:       reqLog.ModelName,
			ModelVersion:    reqLog.ModelVersion,
			Operation:       reqLog.Operation,
			PaperID:         &paperID,
			InputTokens:     reqLog.TokenUsage.InputTokens,
			OutputTokens:    reqLog.TokenUsage.OutputTokens,
			TotalTokens:     reqLog.TokenUsage.TotalTokens,
			DurationMs:      reqLog.LatencyMs,
			Success:         reqLog.Error == nil,
			ErrorMessage:    reqLog.Error,
			ResponseExcerpt: excerpt(reqLog.Response, responseExcerptLength),
			RequestedAt:     reqLog.GeneratedAt.Add(-time.Duration(reqLog.LatencyMs) * time.Millisecond),
			CompletedAt:     reqLog.GeneratedAt,
		}
		if err := s.store.InsertLLMLog(ctx, entry); err != nil {
			logger.ErrorWithFields("failed to record llm usage", logger.Fields{
				"operation": reqLog.Operation,
				"error":     err.Error(),
			})
		}
	}
}

// 이벤트 발행은 best-effort: Kafka 미구성(nil bus)이나 발행 실패가
// 수집 결과를 바꾸지 않는다.
func (s *IngestService) publishPaperIngested(ctx context.Context, field models.Field, date string, paper *models.Paper) {
	if s.bus == nil {
		return
	}

	e := events.PaperIngestedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.PaperIngested,
			Timestamp: time.Now(),
			Source:    "ingest",
			Version:   "1.0",
		},
		FieldSlug: field.Slug,
		Date:      date,
		PaperID:   paper.ID,
		ArxivID:   paper.ArxivID,
		Title:     paper.Title,
	}

	evt, err := eventbus.NewJSONEvent("", e)
	if err != nil {
		logger.ErrorWithFields("failed to build paper.ingested event", logger.Fields{"error": err.Error()})
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicPaperEvents.Base(), evt); err != nil {
		logger.ErrorWithFields("failed to publish paper.ingested event", logger.Fields{"error": err.Error()})
	}
}

func (s *IngestService) publishIngestCompleted(ctx context.Context, date string, report *models.IngestReport) {
	if s.bus == nil {
		return
	}

	e := events.IngestCompletedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.IngestCompleted,
			Timestamp: time.Now(),
			Source:    "ingest",
			Version:   "1.0",
		},
		Date:         date,
		SuccessCount: report.SuccessCount,
		FailCount:    report.FailCount,
	}

	evt, err := eventbus.NewJSONEvent("", e)
	if err != nil {
		logger.ErrorWithFields("failed to build ingest.completed event", logger.Fields{"error": err.Error()})
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicPaperEvents.Base(), evt); err != nil {
		logger.ErrorWithFields("failed to publish ingest.completed event", logger.Fields{"error": err.Error()})
	}
}

// normalizeDate 는 수집 날짜를 UTC 자정으로 고정한다.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
