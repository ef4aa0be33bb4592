package main

import (
	"context"
	crypto_rand "crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/radreport/radreport/internal/config"
	"github.com/radreport/radreport/internal/domain/identity"
	"github.com/radreport/radreport/internal/domain/report"
	"github.com/radreport/radreport/internal/domain/template"
	"github.com/radreport/radreport/internal/platform/auth"
	"github.com/radreport/radreport/internal/platform/middleware"
	"github.com/radreport/radreport/internal/platform/seed"
	"github.com/radreport/radreport/internal/platform/storage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "radreport-server",
		Short: "Ultrasound report authoring API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(templatesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the report API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load default users and sample reports into the data file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(os.Stdout, cfg.IsDev())

			store, err := storage.Open(cfg.DataPath)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := context.Background()
			userRepo := identity.NewBoltRepository(store)
			reportRepo := report.NewBoltRepository(store)
			if err := seed.Run(ctx, userRepo, reportRepo, logger); err != nil {
				return err
			}
			fmt.Println("Seed complete.")
			return nil
		},
	}
}

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the compiled report templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-18s %-28s %s\n", "ID", "NAME", "DESCRIPTION")
			for _, t := range template.List() {
				fmt.Printf("%-18s %-28s %s\n", t.ID, t.Name, t.Description)
			}
			return nil
		},
	}
}

// newLogger emits JSON lines, or console output when dev is set.
func newLogger(out io.Writer, dev bool) zerolog.Logger {
	if dev {
		return zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

func runServer() error {
	logger := newLogger(os.Stdout, false)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}
	// Console output once the config says we are in development.
	logger = newLogger(os.Stdout, cfg.IsDev())

	signingKey, randomKey, err := resolveSigningKey(cfg.SessionSigningKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to resolve session signing key")
	}
	if randomKey {
		logger.Warn().Msg("SESSION_SIGNING_KEY not set, sessions will not survive a restart")
	}

	store, err := storage.Open(cfg.DataPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DataPath).Msg("failed to open data file")
	}
	defer store.Close()
	logger.Info().Str("path", cfg.DataPath).Msg("opened data file")

	// Repositories and services
	userRepo := identity.NewBoltRepository(store)
	reportRepo := report.NewBoltRepository(store)
	draftRepo := report.NewBoltDraftRepository(store)

	identitySvc := identity.NewService(userRepo, logger)
	reportSvc := report.NewService(reportRepo, draftRepo, logger)
	engine := template.NewEngine()

	ctx := context.Background()
	if cfg.SeedData {
		if err := seed.Run(ctx, userRepo, reportRepo, logger); err != nil {
			logger.Fatal().Err(err).Msg("seed failed")
		}
	}

	session := auth.NewSession(
		identitySvc,
		identitySvc,
		signingKey,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
		logger,
	)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// API groups: everything except login sits behind the session gate.
	open := e.Group("/api/v1")
	authed := e.Group("/api/v1", session.Require())
	session.RegisterRoutes(open, authed)

	template.NewHandler(engine).RegisterRoutes(authed)
	report.NewHandler(reportSvc).RegisterRoutes(authed)

	// Graceful shutdown
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

// resolveSigningKey returns the session signing key from its hex-encoded
// config value, or generates a random 32-byte key. The second return
// value is true when a random key was generated.
func resolveSigningKey(value string) ([]byte, bool, error) {
	if value != "" {
		decoded, err := hex.DecodeString(value)
		if err != nil {
			return nil, false, fmt.Errorf("invalid SESSION_SIGNING_KEY hex value: %w", err)
		}
		return decoded, false, nil
	}
	key := make([]byte, 32)
	if _, err := crypto_rand.Read(key); err != nil {
		return nil, false, fmt.Errorf("failed to generate random session signing key: %w", err)
	}
	return key, true, nil
}
