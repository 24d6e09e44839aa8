package services

import (
	"context"
	"errors"
	"time"

	"paper-letter/dto"
)

// 404 매핑을 위한 조회 실패 사유. 핸들러가 errors.Is 로 구분한다.
var (
	ErrFieldNotFound      = errors.New("field not found")
	ErrDailyPaperNotFound = errors.New("no paper selected for this field and date")
)

// DailyService assembles the reader-facing view of a day's paper.
type DailyService struct {
	store Store
}

func NewDailyService(store Store) *DailyService {
	return &DailyService{store: store}
}

// ListFields returns every registered field.
func (s *DailyService) ListFields(ctx context.Context) ([]dto.FieldDTO, error) {
	fields, err := s.store.ListFields(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.FieldDTO, 0, len(fields))
	for _, f := range fields {
		out = append(out, dto.NewFieldDTO(f))
	}
	return out, nil
}

// GetDaily returns the daily bundle for one field and date: the paper
// plus whichever artifacts the ingest pipeline has produced so far.
func (s *DailyService) GetDaily(ctx context.Context, slug string, date time.Time) (*dto.DailyPaperDTO, error) {
	date = normalizeDate(date)

	field, err := s.store.GetFieldBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if field == nil {
		return nil, ErrFieldNotFound
	}

	dp, err := s.store.GetDailyPaper(ctx, date, field.ID)
	if err != nil {
		return nil, err
	}
	if dp == nil {
		return nil, ErrDailyPaperNotFound
	}

	paper, err := s.store.GetPaperByID(ctx, dp.PaperID)
	if err != nil {
		return nil, err
	}
	if paper == nil {
		return nil, ErrDailyPaperNotFound
	}

	summaries, err := s.store.ListSummaries(ctx, paper.ID, field.ID)
	if err != nil {
		return nil, err
	}
	quiz, err := s.store.GetQuiz(ctx, paper.ID, field.ID)
	if err != nil {
		return nil, err
	}
	prereading, err := s.store.GetPrereading(ctx, paper.ID, field.ID)
	if err != nil {
		return nil, err
	}

	d := dto.NewDailyPaperDTO(date, *field, *paper, summaries, quiz, prereading)
	return &d, nil
}
