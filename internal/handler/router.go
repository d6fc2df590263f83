package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"payping-dispatch/internal/handler/api"
	"payping-dispatch/internal/handler/middleware"
	"payping-dispatch/internal/pkg/config"
)

func NewRouter(engine *gin.Engine, cfg config.Config, dispatchHandler *api.DispatchHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, dispatchHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, dispatchHandler *api.DispatchHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	jobs := engine.Group("/jobs")
	jobs.Use(middleware.RequireCronSecret(cfg.Cron))
	{
		jobs.POST("/send-reminders", dispatchHandler.Trigger)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
