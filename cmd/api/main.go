package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hashirsyed/portfolio-api/config"
	_ "github.com/hashirsyed/portfolio-api/docs" // swagger registration
	v1 "github.com/hashirsyed/portfolio-api/internal/delivery/http/v1"
	"github.com/hashirsyed/portfolio-api/internal/usecase"
	"github.com/hashirsyed/portfolio-api/pkg/email"
	"github.com/hashirsyed/portfolio-api/pkg/logger"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact-form relay and project listings for the portfolio site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "mail_provider", cfg.MailProvider)

	// 3. Setup Mail Transport
	// Built once from the environment and injected everywhere it is needed;
	// nothing else may reach for transport credentials.
	var sender email.Sender
	switch cfg.MailProvider {
	case "resend":
		sender = email.NewResendSender(cfg.ResendAPIKey)
	case "noop":
		sender = email.NewNoopSender()
	default:
		sender = email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}

	// 4. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(
		sender,
		validate,
		cfg.ContactEmail,
		time.Duration(cfg.SendTimeoutSeconds)*time.Second,
	)
	projectUC := usecase.NewProjectUsecase()

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ProjectUC: projectUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Contact notifications will be sent to", "mailbox", cfg.ContactEmail)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
