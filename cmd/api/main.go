package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/balsons/erp-backend-go/internal/app"
	"github.com/balsons/erp-backend-go/internal/config"
	appHTTP "github.com/balsons/erp-backend-go/internal/handler/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize application: ", err)
	}
	defer application.Close()

	employeeHandler := appHTTP.NewEmployeeHandler(application.EmployeeService, application.ExportService)
	dashboardHandler := appHTTP.NewDashboardHandler(application.DashboardService)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       level,
		},
		employeeHandler,
		dashboardHandler,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server running", "addr", "http://localhost"+srv.Addr, "storage", cfg.Storage.Type)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
	}
}
