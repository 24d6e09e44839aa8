package main

import (
	"context"
	"flag"
	"log"
	"time"

	"paper-letter/config"
	"paper-letter/db"
	"paper-letter/eventbus"
	"paper-letter/feeder"
	"paper-letter/logger"
	"paper-letter/parser"
	"paper-letter/repositories"
	"paper-letter/services"
	"paper-letter/summarizer"
)

// 일일 수집 배치를 1회 수행하고 종료하는 바이너리.
// 스케줄러(cron, Cloud Scheduler 등)에서 직접 실행하는 용도이다.
func main() {
	dateFlag := flag.String("date", "", "target date (YYYY-MM-DD, defaults to today UTC)")
	flag.Parse()

	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	date := time.Now().UTC()
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			log.Fatalf("invalid -date %q, expected YYYY-MM-DD: %v", *dateFlag, err)
		}
		date = parsed
	}

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize Postgres:", err)
	}
	defer db.Close()

	store := repositories.NewStore(db.Pool())

	limiter := feeder.NewIntervalLimiter(time.Duration(cfg.Arxiv.RateLimitSeconds) * time.Second)
	fetcher := feeder.NewClient(cfg.Arxiv.BaseURL, cfg.Arxiv.MaxResults, limiter)

	llm, err := summarizer.NewGeminiLLM(ctx)
	if err != nil {
		log.Fatal("failed to initialize Gemini client:", err)
	}

	var bus eventbus.EventBus
	if cfg.KafkaBrokers != "" {
		kb, err := eventbus.NewKafkaEventBus(cfg.KafkaBrokers)
		if err != nil {
			log.Fatal("failed to initialize Kafka producer:", err)
		}
		defer kb.Close()
		bus = kb
	}

	svc := services.NewIngestService(store, fetcher, summarizer.New(llm), parser.NewExtractor(), bus)

	report, err := svc.IngestDaily(ctx, date)
	if err != nil {
		log.Fatalf("daily ingest failed: %v", err)
	}

	logger.InfoWithFields("daily ingest finished", logger.Fields{
		"date":          report.Date,
		"success_count": report.SuccessCount,
		"fail_count":    report.FailCount,
	})
	for _, res := range report.Results {
		if res.Success {
			continue
		}
		logger.WarnWithFields("field failed", logger.Fields{
			"field": res.Field,
			"error": *res.Error,
		})
	}
}
