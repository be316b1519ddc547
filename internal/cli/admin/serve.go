package admin

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/meridianhr/pathfinder/internal/api/handlers"
	"github.com/meridianhr/pathfinder/internal/config"
	"github.com/meridianhr/pathfinder/internal/database"
	"github.com/meridianhr/pathfinder/internal/engine"
	"github.com/meridianhr/pathfinder/internal/jobs"
	"github.com/meridianhr/pathfinder/internal/openai"
	"github.com/meridianhr/pathfinder/internal/repository"
	"github.com/meridianhr/pathfinder/internal/server"
	"github.com/meridianhr/pathfinder/internal/service"
	"github.com/meridianhr/pathfinder/internal/telemetry"
	"github.com/spf13/cobra"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the pathfinder API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().Bool("no-migrate", false, "Skip automatic database migrations on startup")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if a DSN is configured
	if cfg.SentryDSN != "" {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      environment,
			TracesSampleRate: sampleRate,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	portFlag, _ := cmd.Flags().GetString("port")
	if portFlag != "" && portFlag != "8080" {
		cfg.Port = portFlag
	}

	pool, err := database.NewPool(ctx, database.Config{URL: cfg.DatabaseURL})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()
	log.Println("connected to database")

	// Run migrations unless --no-migrate flag is set
	noMigrate, _ := cmd.Flags().GetBool("no-migrate")
	if !noMigrate {
		if err := runMigrations(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	profileRepo := repository.NewProfileRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	policyRepo := repository.NewPolicyRepository(pool)
	rulesRepo := repository.NewRulesRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)

	lexical := engine.NewLexicalRetriever(cfg.TFIDFThreshold, cfg.KeywordBoost)

	var retriever engine.Retriever = lexical
	var embeddingWorker *jobs.Worker
	if cfg.HasOpenAI() {
		client := openai.NewClient(cfg.OpenAIAPIKey)
		retriever = engine.NewSemanticRetriever(lexical, client, client)

		processor := jobs.NewPolicyEmbeddingProcessor(policyRepo, client)
		embeddingWorker = jobs.NewWorker(processor, time.Duration(cfg.EmbeddingPollInterval)*time.Second)
		go embeddingWorker.Start(ctx)
		log.Println("semantic retrieval enabled, policy embedding worker started")
	} else {
		log.Println("no OpenAI key configured, running lexical retrieval only")
	}

	eng := engine.New(retriever)
	portalSvc := service.NewPortalService(profileRepo, catalogRepo, policyRepo, rulesRepo, leaveRepo, progressRepo, eng)

	routerCfg := server.RouterConfig{
		RecommendationHandler: handlers.NewRecommendationHandler(portalSvc),
		ChatHandler:           handlers.NewChatHandler(portalSvc),
		CareerHandler:         handlers.NewCareerHandler(portalSvc),
		ProgressHandler:       handlers.NewProgressHandler(portalSvc),
	}

	router := server.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	if embeddingWorker != nil {
		embeddingWorker.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

func runMigrations(databaseURL string) error {
	// Create a sql.DB connection for golang-migrate
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if err == migrate.ErrNilVersion {
		log.Println("migrations: database is up to date (no migrations applied)")
	} else if dirty {
		return fmt.Errorf("migration version %d is dirty - manual intervention required", version)
	} else if err == migrate.ErrNoChange {
		log.Printf("migrations: database is up to date (version %d)", version)
	} else {
		log.Printf("migrations: applied successfully (version %d)", version)
	}

	return nil
}
