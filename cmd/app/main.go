package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/db"
	httpServer "taskboard/internal/http"
	"taskboard/internal/logger"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	service.InitJWT(cfg.JWTSecret)

	var (
		users repository.UserRepository
		tasks repository.TaskRepository
		pool  *pgxpool.Pool
	)
	if cfg.DatabaseURL != "" {
		pool = db.Connect(cfg.DatabaseURL)
		defer pool.Close()
		if err := db.EnsureSchema(context.Background(), pool); err != nil {
			logger.Fatal("schema setup failed", "error", err)
		}
		users = repository.NewPostgresUserRepository(pool)
		tasks = repository.NewPostgresTaskRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory stores")
		users = repository.NewMemoryUserRepository()
		tasks = repository.NewMemoryTaskRepository()
	}

	r := gin.Default()

	// CORS for clients on other origins
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	httpServer.RegisterRoutes(r, users, tasks, pool)

	// Deadline reminders run only when a mail key is configured.
	reminderCtx, stopReminders := context.WithCancel(context.Background())
	defer stopReminders()
	if cfg.SendGridAPIKey != "" {
		mailer := service.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFrom)
		reminders := service.NewReminderService(tasks, users, mailer, cfg.ReminderInterval)
		go reminders.Run(reminderCtx)
		logger.Info("deadline reminders enabled", "interval", cfg.ReminderInterval.String())
	}

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	stopReminders()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
