package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/config"
	"northlinktelecom.com/cmd/server/database"
	"northlinktelecom.com/cmd/server/handler"
	"northlinktelecom.com/cmd/server/mailer"
	"northlinktelecom.com/cmd/server/router"
	"northlinktelecom.com/cmd/server/storage"
)

func main() {
	// .env is optional; real deployments configure the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := config.Load()

	clients, err := database.NewClients(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database clients: %v\n", err)
		os.Exit(1)
	}

	guard := auth.NewGuard(clients.Anon, clients.Service)
	uploader := storage.NewUploader(clients.Service.Storage)

	var archiver handler.ResumeArchiver
	if cfg.ArchivalConfigured() {
		s3Archiver, err := storage.NewS3Archiver(cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.S3BucketName)
		if err != nil {
			log.Printf("WARNING: resume archival disabled: %v\n", err)
		} else {
			archiver = s3Archiver
		}
	}

	var notifier handler.ApplicationNotifier
	if m := mailer.New(cfg.ResendAPIKey, cfg.MailFrom, cfg.CareersMailbox); m != nil {
		notifier = m
	} else {
		log.Println("WARNING: RESEND_API_KEY or CAREERS_MAILBOX not set, application notifications disabled")
	}

	divisions := database.NewDivisionRepository(clients)
	categories := database.NewCategoryRepository(clients)
	services := database.NewServiceRepository(clients, uploader)
	partners := database.NewPartnerRepository(clients, uploader)
	jobs := database.NewJobRepository(clients)
	applications := database.NewApplicationRepository(clients)
	media := database.NewMediaRepository(clients)

	divisionHandler := handler.NewDivisionHandler(divisions)
	serviceHandler := handler.NewServiceHandler(services)
	partnerHandler := handler.NewPartnerHandler(partners)
	jobHandler := handler.NewJobHandler(jobs)
	mediaHandler := handler.NewMediaHandler(media)

	mux := router.Setup(&router.Deps{
		Auth:         guard,
		Divisions:    divisionHandler,
		Categories:   handler.NewCategoryHandler(categories),
		Services:     serviceHandler,
		Partners:     partnerHandler,
		Jobs:         jobHandler,
		Applications: handler.NewApplicationHandler(applications, jobs, uploader, archiver, notifier),
		Media:        mediaHandler,
		Sitemap:      handler.NewSitemapHandler(divisions, services, partners, jobs, media),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        mux,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Channel for server errors
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		fmt.Printf("Server starting on %s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			errChan <- err
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		// Graceful shutdown on signal
	case err := <-errChan:
		// Server error occurred
		fmt.Fprintf(os.Stderr, "Fatal server error: %v\n", err)
		os.Exit(1)
	}

	// Graceful shutdown with timeout
	fmt.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Server stopped")
}
