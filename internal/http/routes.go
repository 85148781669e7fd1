package http

import (
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the full HTTP surface onto the engine. db may be
// nil when the in-memory backend is active; it is only used for readiness.
func RegisterRoutes(r *gin.Engine, users repository.UserRepository, tasks repository.TaskRepository, db *pgxpool.Pool) {
	h := handlers.NewHandler(users, tasks)
	health := handlers.NewHealthHandler(db)

	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	r.GET("/", health.Root)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Auth (unauthenticated)
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	// Tasks, all behind the bearer token gate
	tasksGroup := api.Group("/tasks")
	tasksGroup.Use(middleware.Auth())
	{
		tasksGroup.GET("", h.ListTasks)
		tasksGroup.POST("", h.CreateTask)
		tasksGroup.POST("/:id/done", h.CompleteTask)
		tasksGroup.DELETE("/:id", h.DeleteTask)
	}
}
