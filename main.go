package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridiron/config"
	"gridiron/middleware"
	"gridiron/roster"
	"gridiron/scheduler"
	"gridiron/templates"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()
	setupLogger(cfg)

	if os.Getenv("SKIP_SERVER_RUN") != "" {
		log.Info().Msg("SKIP_SERVER_RUN set, exiting")
		return
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)
	if !cfg.AdminEnabled() {
		log.Info().Msg("ADMIN_PASSWORD_HASH not set, admin API disabled")
	}

	tmpls, err := templates.Parse(cfg.TemplatesDir)
	if err != nil {
		return err
	}

	// A failed initial load still serves, with an empty dataset
	store := roster.NewStore(cfg.RosterCSV)
	_, _ = store.Reload(ctx)

	go reloadOnHangup(ctx, store)

	if cfg.ReloadCron != "" {
		sched := scheduler.NewScheduler(cfg.ReloadCron, store)
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()
	}

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           newRouter(cfg, store, tmpls),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.ServerPort).Str("env", cfg.AppEnv).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("Server stopped")
	return nil
}

func reloadOnHangup(ctx context.Context, store *roster.Store) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			log.Info().Msg("SIGHUP received, reloading roster data")
			_, _ = store.Reload(ctx)
		}
	}
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}
