package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/johnwards/propcat/internal/catalog"
	"github.com/johnwards/propcat/internal/config"
	"github.com/johnwards/propcat/internal/database"
	"github.com/johnwards/propcat/internal/domain"
	"github.com/johnwards/propcat/internal/seed"
	"github.com/johnwards/propcat/internal/store"
)

// app is the state shared by every command of one invocation.
type app struct {
	cfg     config.Config
	jsonOut bool

	out    io.Writer
	logger *slog.Logger
	db     *sql.DB
	store  *store.Store
	cat    *catalog.Manager
}

// open prepares the database and loads the catalog into memory.
func (a *app) open(ctx context.Context, out, errOut io.Writer) error {
	level, err := config.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.out = out
	a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	db, err := database.Open(a.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	a.db = db

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	a.store = store.New(db)

	if a.cfg.Seed {
		if err := seed.Seed(ctx, a.store); err != nil {
			return fmt.Errorf("seed data: %w", err)
		}
	}
	if a.cfg.CatalogPath != "" {
		if _, err := a.importFile(ctx, a.cfg.CatalogPath); err != nil {
			return err
		}
	}

	return a.reload(ctx)
}

// reload rebuilds the in-memory catalog from the store.
func (a *app) reload(ctx context.Context) error {
	c, err := a.store.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	a.cat = catalog.New(c, catalog.WithLogger(a.logger))
	a.logger.Debug("catalog loaded",
		"properties", len(c.Properties),
		"locations", len(c.Locations),
		"developers", len(c.Developers),
		"agents", len(c.Agents),
	)
	return nil
}

func (a *app) importFile(ctx context.Context, path string) (seed.Result, error) {
	c, err := seed.LoadFile(path)
	if err != nil {
		return seed.Result{}, fmt.Errorf("load catalog: %w", err)
	}
	res, err := seed.Import(ctx, a.store, c)
	if err != nil {
		return res, err
	}
	a.logger.Info("catalog imported", "path", path,
		"properties", res.Properties,
		"locations", res.Locations,
		"developers", res.Developers,
		"agents", res.Agents,
	)
	return res, nil
}

// saveViews writes the in-memory view counter of p back to the store.
func (a *app) saveViews(ctx context.Context, p *domain.Property) error {
	if err := a.store.Properties.SaveViews(ctx, p.ID, p.Views); err != nil {
		return fmt.Errorf("save views: %w", err)
	}
	return nil
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
}
