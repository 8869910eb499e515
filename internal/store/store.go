// Package store reads and writes catalog records in SQLite. It is the data
// source the query engine is loaded from; the engine itself never touches
// storage.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/johnwards/propcat/internal/catalog"
	"github.com/johnwards/propcat/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = fmt.Errorf("record not found")

// Store holds all sub-stores used by the application.
type Store struct {
	DB         *sql.DB
	Properties PropertyStore
	Locations  RecordStore[domain.Location]
	Developers RecordStore[domain.Developer]
	Agents     RecordStore[domain.Agent]
}

// New creates a Store with all sub-stores initialized.
func New(db *sql.DB) *Store {
	return &Store{
		DB:         db,
		Properties: NewSQLitePropertyStore(db),
		Locations:  NewSQLiteLocationStore(db),
		Developers: NewSQLiteDeveloperStore(db),
		Agents:     NewSQLiteAgentStore(db),
	}
}

// LoadCatalog reads every stored record, in catalog order, ready for
// catalog.New.
func (s *Store) LoadCatalog(ctx context.Context) (catalog.Collections, error) {
	var (
		c   catalog.Collections
		err error
	)
	if c.Properties, err = s.Properties.List(ctx); err != nil {
		return catalog.Collections{}, fmt.Errorf("load properties: %w", err)
	}
	if c.Locations, err = s.Locations.List(ctx); err != nil {
		return catalog.Collections{}, fmt.Errorf("load locations: %w", err)
	}
	if c.Developers, err = s.Developers.List(ctx); err != nil {
		return catalog.Collections{}, fmt.Errorf("load developers: %w", err)
	}
	if c.Agents, err = s.Agents.List(ctx); err != nil {
		return catalog.Collections{}, fmt.Errorf("load agents: %w", err)
	}
	return c, nil
}

// Empty reports whether the database holds no listings.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	n, err := s.Properties.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
