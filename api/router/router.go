package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"paper-letter/api/handlers"
	"paper-letter/api/middleware"
	"paper-letter/db"
	_ "paper-letter/docs"
)

// New wires the HTTP surface: liveness/readiness probes, the cron
// trigger, and the public read API.
func New(cronSecret string, ingestSvc handlers.IngestRunner, dailySvc handlers.DailyReader) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Liveness: 의존성 확인 없이 즉시 응답한다.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: DB 연결까지 확인한다.
	r.GET("/status", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 스케줄러 전용 트리거
	r.POST("/daily-ingest", handlers.DailyIngestHandler(cronSecret, ingestSvc))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/fields", handlers.ListFieldsHandler(dailySvc))
		api.GET("/daily", handlers.GetDailyHandler(dailySvc))
	}

	return r
}
