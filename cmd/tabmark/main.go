package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tabmark/internal/config"
	"tabmark/internal/filestore"
	"tabmark/internal/handler"
	"tabmark/internal/job"
	"tabmark/internal/pkg/logger"
	"tabmark/internal/repo"
	"tabmark/internal/schedule"
	"tabmark/internal/scraper"
	"tabmark/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tabmark",
		Short: "tabmark bookmark organizer server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run tabmark server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(cfg.Log)
			logger.FromContext(context.Background()).Info("config loaded", zap.String("config", configPath))

			db, err := repo.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := repo.ApplyMigrations(db); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, db)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.FromContext(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, db *sql.DB) error {
	log := logger.FromContext(context.Background())
	log.Info("starting server",
		zap.Int("port", cfg.Port),
		zap.String("db_path", cfg.DBPath),
		zap.String("file_store", cfg.FileStore.Type),
	)

	tabRepo := repo.NewTabRepo(db)
	sectionRepo := repo.NewSectionRepo(db)
	bookmarkRepo := repo.NewBookmarkRepo(db)
	settingsRepo := repo.NewSettingsRepo(db)

	pageScraper := scraper.New(time.Duration(cfg.Metadata.TimeoutSeconds) * time.Second)

	tabService := service.NewTabService(tabRepo, sectionRepo, bookmarkRepo)
	sectionService := service.NewSectionService(sectionRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	metadataService := service.NewMetadataService(
		pageScraper,
		cfg.Metadata.CacheSize,
		time.Duration(cfg.Metadata.CacheTTLSeconds)*time.Second,
	)

	store, err := filestore.New(cfg.FileStore)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.RouterDeps{
		Tabs:              handler.NewTabHandler(tabService),
		Sections:          handler.NewSectionHandler(sectionService),
		Bookmarks:         handler.NewBookmarkHandler(bookmarkService),
		Settings:          handler.NewSettingsHandler(settingsService),
		Metadata:          handler.NewMetadataHandler(metadataService),
		Files:             handler.NewFileHandler(store, cfg.PublicURL),
		CORSOrigins:       cfg.CORSOrigins,
		MetadataRateLimit: time.Duration(cfg.Metadata.RateLimitSeconds) * time.Second,
		WebDir:            cfg.WebDir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	if cfg.FaviconJob.Enable {
		faviconJob := job.NewFaviconRefreshJob(bookmarkRepo, pageScraper, uint(cfg.FaviconJob.BatchSize))
		if err := scheduler.AddJob(faviconJob, cfg.FaviconJob.Spec); err != nil {
			return fmt.Errorf("schedule favicon job: %w", err)
		}
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler: router,
	}
	log.Info("http server listening", zap.String("addr", server.Addr))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
