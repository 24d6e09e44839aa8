package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	_ "paper-letter/docs" // swag will generate this package
	"paper-letter/api/router"
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

// @title           Paper-Letter API
// @version         1.0
// @description     Daily arXiv paper picks with multi-level summaries, quizzes and pre-reading guides
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

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

	// Kafka 브로커가 설정된 경우에만 이벤트를 발행한다.
	var bus eventbus.EventBus
	if cfg.KafkaBrokers != "" {
		kb, err := eventbus.NewKafkaEventBus(cfg.KafkaBrokers)
		if err != nil {
			log.Fatal("failed to initialize Kafka producer:", err)
		}
		defer kb.Close()
		bus = kb
	}

	ingestSvc := services.NewIngestService(store, fetcher, summarizer.New(llm), parser.NewExtractor(), bus)
	dailySvc := services.NewDailyService(store)

	r := router.New(cfg.CronSecret, ingestSvc, dailySvc)

	// gin 엔진을 net/http 핸들러로 감싸 CORS 를 적용한다.
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-Cron-Secret"},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.InfoWithFields("starting api server", logger.Fields{"addr": addr})
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
