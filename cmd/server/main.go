package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"revos/internal/config"
	"revos/internal/handler"
	"revos/internal/host"
	"revos/internal/host/event"
	"revos/internal/host/memdoc"
	"revos/internal/mapping"
	"revos/internal/port"
	"revos/internal/repository/memory"
	"revos/internal/repository/postgres"
	"revos/internal/router"
	"revos/internal/service"
	s3storage "revos/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Load the building model document
	var doc host.Document
	if cfg.Host.ModelPath != "" {
		d, err := memdoc.Load(cfg.Host.ModelPath)
		if err != nil {
			return fmt.Errorf("failed to load model %s: %w", cfg.Host.ModelPath, err)
		}
		doc = d
		log.Printf("loaded model from %s (%d elements)", cfg.Host.ModelPath, len(d.Elements()))
	} else {
		doc = memdoc.New()
		log.Printf("no model path configured, starting with an empty document")
	}

	// All host access goes through the event queue
	queue := event.New(cfg.Host.EventTimeout)
	defer queue.Close()

	// Command audit log store
	var (
		db      *sqlx.DB
		logRepo port.CommandLogRepository
	)
	if cfg.DB.Enabled {
		db, err = postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		logRepo = postgres.NewCommandLogRepo(db)
	} else {
		logRepo = memory.NewCommandLogRepo(memory.DefaultCapacity)
		log.Printf("audit database disabled, keeping command log in memory")
	}

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize services
	reg := mapping.NewRegistry()
	authSvc := service.NewAuthService(cfg.Auth, cfg.JWT)
	elementSvc := service.NewElementService(doc, queue, reg)
	parameterSvc := service.NewParameterService(doc, queue, reg)
	categorySvc := service.NewCategoryService(reg)
	viewRangeSvc := service.NewViewRangeService(doc, queue)
	reportSvc := service.NewReportService(elementSvc, s3Client, cfg.S3)
	commandSvc := service.NewCommandService(logRepo)

	// Initialize handlers
	h := router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Element:   handler.NewElementHandler(elementSvc),
		Parameter: handler.NewParameterHandler(parameterSvc),
		Category:  handler.NewCategoryHandler(categorySvc),
		ViewRange: handler.NewViewRangeHandler(viewRangeSvc),
		Report:    handler.NewReportHandler(reportSvc),
		Command:   handler.NewCommandHandler(commandSvc),
		Health:    handler.NewHealthHandler(db, doc, queue),
	}

	// Setup router
	r := router.Setup(cfg, authSvc, commandSvc, h)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
