package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dencare/dencare/internal/config"
	"github.com/dencare/dencare/internal/domain/catalog"
	"github.com/dencare/dencare/internal/domain/claim"
	"github.com/dencare/dencare/internal/domain/consultation"
	"github.com/dencare/dencare/internal/domain/dashboard"
	"github.com/dencare/dencare/internal/domain/patient"
	"github.com/dencare/dencare/internal/platform/db"
	"github.com/dencare/dencare/internal/platform/middleware"
	"github.com/dencare/dencare/internal/platform/sandbox"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dencare-server",
		Short: "Dental practice management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "", "Path to migrations directory (default from config)")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "", "Path to migrations directory (default from config)")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference and demo data",
	}

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Load the national dental fee schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			app := buildApp(pool, cfg, logger)
			sum, err := app.catalogSvc.Seed(ctx)
			if err != nil {
				return fmt.Errorf("catalog seed failed: %w", err)
			}

			fmt.Printf("Catalog loaded: %d chapters, %d sections, %d groups, %d acts.\n",
				sum.Chapters, sum.Sections, sum.Groups, sum.Acts)
			return nil
		},
	}
	cmd.AddCommand(catalogCmd)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate synthetic patients and consultations",
		RunE: func(cmd *cobra.Command, args []string) error {
			patients, _ := cmd.Flags().GetInt("patients")
			seed, _ := cmd.Flags().GetInt64("seed")

			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			app := buildApp(pool, cfg, logger)
			seedCfg := sandbox.DefaultSeedConfig()
			if patients > 0 {
				seedCfg.PatientCount = patients
			}
			if seed != 0 {
				seedCfg.Seed = seed
			}

			seeder := sandbox.NewSeeder(app.patientSvc, app.consultationSvc, app.catalogSvc, logger)
			result, err := seeder.Seed(ctx, seedCfg)
			if err != nil {
				return fmt.Errorf("demo seed failed: %w", err)
			}

			fmt.Printf("Generated %d patients (%d enrolled) and %d consultations in %s.\n",
				result.Patients, result.Enrollments, result.Consultations, result.Duration.Round(time.Millisecond))
			return nil
		},
	}
	demoCmd.Flags().Int("patients", 0, "Number of patients to generate (default 100)")
	demoCmd.Flags().Int64("seed", 0, "Random seed for reproducible datasets")
	cmd.AddCommand(demoCmd)

	return cmd
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

// app holds the wired services; the CLI seed commands reuse the same wiring
// as the HTTP server.
type app struct {
	patientSvc      *patient.Service
	consultationSvc *consultation.Service
	catalogSvc      *catalog.Service
	claimSvc        *claim.Service
	dashboardSvc    *dashboard.Service
}

func buildApp(pool *pgxpool.Pool, cfg *config.Config, logger zerolog.Logger) *app {
	// The consultation repo doubles as the patient delete cascade and the
	// catalog's reference checker.
	consultationRepo := consultation.NewRepo(pool)

	patientRepo := patient.NewRepo(pool)
	patientSvc := patient.NewService(patientRepo, consultationRepo, logger)

	catalogRepo := catalog.NewRepo(pool)
	catalogSvc := catalog.NewService(catalogRepo, consultationRepo)

	consultationSvc := consultation.NewService(consultationRepo, patientSvc, catalogSvc)

	renderer := claim.NewRenderer(cfg.ClaimTemplatePath)
	claimRepo := claim.NewRepo(pool)
	claimSvc := claim.NewService(claimRepo, patientSvc, catalogSvc, renderer, logger)

	dashboardRepo := dashboard.NewRepo(pool)
	dashboardSvc := dashboard.NewService(dashboardRepo)

	return &app{
		patientSvc:      patientSvc,
		consultationSvc: consultationSvc,
		catalogSvc:      catalogSvc,
		claimSvc:        claimSvc,
		dashboardSvc:    dashboardSvc,
	}
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	apiV1 := e.Group("/api/v1")

	a := buildApp(pool, cfg, logger)

	patient.NewHandler(a.patientSvc).RegisterRoutes(apiV1)
	consultation.NewHandler(a.consultationSvc).RegisterRoutes(apiV1)
	catalog.NewHandler(a.catalogSvc).RegisterRoutes(apiV1)
	claim.NewHandler(a.claimSvc).RegisterRoutes(apiV1)
	dashboard.NewHandler(a.dashboardSvc).RegisterRoutes(apiV1)

	// Demo-data endpoint stays off in production.
	if !cfg.IsProduction() {
		seeder := sandbox.NewSeeder(a.patientSvc, a.consultationSvc, a.catalogSvc, logger)
		sandbox.NewHandler(seeder).RegisterRoutes(apiV1)
	}

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
