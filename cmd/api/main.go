package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/nomadmatch/internal/catalog"
	"github.com/MrJamesThe3rd/nomadmatch/internal/citypref"
	cityprefStore "github.com/MrJamesThe3rd/nomadmatch/internal/citypref/store"
	"github.com/MrJamesThe3rd/nomadmatch/internal/config"
	"github.com/MrJamesThe3rd/nomadmatch/internal/database"
	nomadHttp "github.com/MrJamesThe3rd/nomadmatch/internal/http"
	"github.com/MrJamesThe3rd/nomadmatch/internal/http/auth"
	cityprefHandler "github.com/MrJamesThe3rd/nomadmatch/internal/http/citypref"
	healthHandler "github.com/MrJamesThe3rd/nomadmatch/internal/http/health"
	matchHandler "github.com/MrJamesThe3rd/nomadmatch/internal/http/match"
	"github.com/MrJamesThe3rd/nomadmatch/internal/logging"
	"github.com/MrJamesThe3rd/nomadmatch/internal/match"
	"github.com/MrJamesThe3rd/nomadmatch/internal/matcher"
	"github.com/MrJamesThe3rd/nomadmatch/internal/observability"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
	"github.com/MrJamesThe3rd/nomadmatch/internal/ranking"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.App.Env, cfg.App.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	candidates, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	opts := nomadHttp.Options{
		Logger: logger,
		Auth:   auth.New(cfg.Auth.Secret),
	}

	if cfg.Metrics.Enabled {
		if opts.Metrics, err = observability.InitPrometheus(); err != nil {
			return err
		}
	}

	var exclusions match.Exclusions

	if cfg.DB.Enabled {
		db, err := database.New(ctx, cfg.ConnectionString())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer db.Close()

		store := cityprefStore.New(db)
		if err := store.Migrate(ctx); err != nil {
			return err
		}

		prefs := citypref.NewService(store)
		exclusions = prefs
		opts.Preferences = cityprefHandler.NewHandler(prefs)
	}

	var (
		client     = matcher.NewClient(cfg.Matcher.BaseURL, cfg.Matcher.Timeout, cfg.Matcher.HealthTTL)
		ranker     = ranking.NewRanker(candidates, ranking.DefaultRules())
		dispatcher = match.NewDispatcher(client, ranker, cfg.Matcher.NumResults, logger)
		matchSvc   = match.NewService(preference.NewEncoder(preference.DefaultTables()), dispatcher, exclusions, logger)
	)

	router := nomadHttp.New(
		healthHandler.NewHandler(client),
		matchHandler.NewHandler(matchSvc),
		opts,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server",
			"addr", srv.Addr,
			"matcher", cfg.Matcher.BaseURL,
			"catalog_cities", len(candidates),
			"preferences", cfg.DB.Enabled,
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
