package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jogos-org/jogos/internal/config"
	"github.com/jogos-org/jogos/internal/covers"
	"github.com/jogos-org/jogos/internal/preferences"
	"github.com/jogos-org/jogos/internal/services"
	"github.com/jogos-org/jogos/internal/store"
	"github.com/jogos-org/jogos/internal/store/migrations"
	"github.com/jogos-org/jogos/pkg/igdb"
	"github.com/jogos-org/jogos/pkg/scheduler"
)

// app wires the layers for one command run.
type app struct {
	cfg       *config.Configuration
	prefs     *preferences.Preferences
	store     *store.Store
	covers    *covers.Store
	scheduler *scheduler.Scheduler
	catalog   *services.CatalogService
	metadata  *services.MetadataService
}

func openApp(ctx context.Context, cfg *config.Configuration) (*app, error) {
	log := zap.S().Named("app")
	log.Debugw("configuration", "config", cfg.DebugMap())

	prefs, err := preferences.Open(cfg.PreferencesPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}

	db, err := store.NewDB(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.DatabasePath(), err)
	}

	if err := migrations.Run(ctx, db, prefs); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	lang := prefs.Locale().Language
	coverStore := covers.New(cfg.CoversPath(), &http.Client{Timeout: cfg.Metadata.Timeout})
	st := store.NewStore(db,
		store.WithCovers(coverStore),
		store.WithCollationLanguage(lang),
	)

	sched := scheduler.NewScheduler(cfg.Metadata.Workers)
	client := igdb.NewClient(cfg.Metadata.ClientID, cfg.Metadata.ClientSecret, igdb.WithTokenCache(prefs))

	return &app{
		cfg:       cfg,
		prefs:     prefs,
		store:     st,
		covers:    coverStore,
		scheduler: sched,
		catalog:   services.NewCatalogService(st.Game(), prefs, lang),
		metadata:  services.NewMetadataService(sched, client, coverStore, cfg.Metadata.Timeout),
	}, nil
}

func (a *app) Close() {
	a.scheduler.Close()
	if err := a.store.Close(); err != nil {
		zap.S().Named("app").Warnw("failed to close database", "error", err)
	}
}

// withApp opens the app, runs fn and closes the app.
func withApp(ctx context.Context, cfg *config.Configuration, fn func(*app) error) error {
	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
