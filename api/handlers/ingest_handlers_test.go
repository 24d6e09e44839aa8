package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paper-letter/api/handlers"
	"paper-letter/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeIngestRunner struct {
	report   *models.IngestReport
	err      error
	calls    int
	lastDate time.Time
}

func (f *fakeIngestRunner) IngestDaily(_ context.Context, date time.Time) (*models.IngestReport, error) {
	f.calls++
	f.lastDate = date
	if f.err != nil {
		return nil, f.err
	}
	if f.report != nil {
		return f.report, nil
	}
	return &models.IngestReport{Message: "Processed 0 fields", Date: date.Format("2006-01-02")}, nil
}

func performIngest(secret string, runner *fakeIngestRunner, header, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/daily-ingest", handlers.DailyIngestHandler(secret, runner))

	req := httptest.NewRequest(http.MethodPost, "/daily-ingest", strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if header != "" {
		req.Header.Set("X-Cron-Secret", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDailyIngestRejectsBadSecret(t *testing.T) {
	runner := &fakeIngestRunner{}
	w := performIngest("s3cret", runner, "wrong", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid cron secret")
	assert.Equal(t, 0, runner.calls)
}

func TestDailyIngestRejectsMissingSecretHeader(t *testing.T) {
	runner := &fakeIngestRunner{}
	w := performIngest("s3cret", runner, "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, runner.calls)
}

func TestDailyIngestAcceptsMatchingSecret(t *testing.T) {
	runner := &fakeIngestRunner{report: &models.IngestReport{
		Message:      "Processed 2 fields",
		Date:         "2026-08-25",
		SuccessCount: 2,
	}}
	w := performIngest("s3cret", runner, "s3cret", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, runner.calls)

	var report models.IngestReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "Processed 2 fields", report.Message)
	assert.Equal(t, 2, report.SuccessCount)
}

func TestDailyIngestAllowsTriggerWhenNoSecretConfigured(t *testing.T) {
	runner := &fakeIngestRunner{}
	w := performIngest("", runner, "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, runner.calls)
}

func TestDailyIngestRejectsInvalidDateBeforeRunning(t *testing.T) {
	runner := &fakeIngestRunner{}
	w := performIngest("", runner, "", `{"date":"2026-13-99"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid date")
	assert.Equal(t, 0, runner.calls)
}

func TestDailyIngestRejectsMalformedBody(t *testing.T) {
	runner := &fakeIngestRunner{}
	w := performIngest("", runner, "", `{"date":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
	assert.Equal(t, 0, runner.calls)
}

func TestDailyIngestDefaultsToTodayUTC(t *testing.T) {
	runner := &fakeIngestRunner{}
	w := performIngest("", runner, "", "")

	require.Equal(t, http.StatusOK, w.Code)
	now := time.Now().UTC()
	assert.Equal(t, now.Format("2006-01-02"), runner.lastDate.Format("2006-01-02"))
}

func TestDailyIngestUsesExplicitDate(t *testing.T) {
	runner := &fakeIngestRunner{}
	w := performIngest("", runner, "", `{"date":"2026-08-01"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), runner.lastDate)
}

func TestDailyIngestBatchFailureReturns500(t *testing.T) {
	runner := &fakeIngestRunner{err: errors.New("failed to list fields: connection refused")}
	w := performIngest("", runner, "", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to list fields")
}
