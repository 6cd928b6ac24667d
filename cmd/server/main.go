package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pbtc21/dsw-wallpaper/internal/http/handlers"
	"github.com/pbtc21/dsw-wallpaper/internal/repo/postgres"
	"github.com/pbtc21/dsw-wallpaper/internal/service"
	"github.com/pbtc21/dsw-wallpaper/internal/web"
	"github.com/pbtc21/dsw-wallpaper/pkg/config"
	"github.com/pbtc21/dsw-wallpaper/pkg/database"
	"github.com/pbtc21/dsw-wallpaper/pkg/logger"
	mw "github.com/pbtc21/dsw-wallpaper/pkg/middleware"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// The database binding is optional: without DATABASE_URL the site still
	// serves pages and the API answers "database not configured".
	var repo postgres.AppointmentRepo
	if cfg.Database.URL != "" {
		pool, err := database.Connect(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			logger.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}

		repo = postgres.NewAppointmentRepo(pool)
	} else {
		logger.Warn("DATABASE_URL not set, running without a booking store")
	}

	renderer, err := web.NewRenderer(time.Now)
	if err != nil {
		logger.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	svc := service.NewBookingService(repo, time.Now)
	pages := handlers.NewPagesHandler(renderer)
	api := handlers.NewAppointmentsHandler(svc)

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(mw.Health)

	r.Get("/", pages.Home)
	r.Get("/thank-you", pages.ThankYou)
	r.Get("/admin", pages.Admin)

	r.Post("/api/book", api.Create)
	r.Route("/api/appointments", func(r chi.Router) {
		r.Get("/", api.List)
		r.Patch("/{id}", api.UpdateStatus)
	})

	r.Handle("/static/*", web.Static())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("starting server", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
