package http

import (
	"dayplanner/internal/adapter/http/handlers"
	"dayplanner/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Task      *handlers.TaskHandler
	TimeBlock *handlers.TimeBlockHandler
	Stats     *handlers.StatsHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Task.ListTasks)
		api.POST("/tasks", h.Task.CreateTask)
		api.PUT("/tasks/:id/complete", h.Task.SetCompletion)
		api.DELETE("/tasks/:id", h.Task.DeleteTask)

		api.GET("/timeblocks", h.TimeBlock.ListTimeBlocks)
		api.POST("/timeblocks", h.TimeBlock.CreateTimeBlock)
		api.DELETE("/timeblocks/:id", h.TimeBlock.DeleteTimeBlock)

		api.GET("/stats", h.Stats.DayStats)
	}
}
