package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/johnwards/propcat/internal/domain"
)

// RecordStore persists a reference record kind (locations, developers,
// agents) as JSON documents keyed by id.
type RecordStore[T any] interface {
	Upsert(ctx context.Context, rec *T) error
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Count(ctx context.Context) (int, error)
}

// SQLiteRecordStore implements RecordStore for one table.
type SQLiteRecordStore[T any] struct {
	db    *sql.DB
	table string
	key   func(*T) (id, name string)
	fill  func(T) *T
}

// NewSQLiteLocationStore creates a RecordStore for locations.
func NewSQLiteLocationStore(db *sql.DB) *SQLiteRecordStore[domain.Location] {
	return &SQLiteRecordStore[domain.Location]{
		db:    db,
		table: "locations",
		key:   func(l *domain.Location) (string, string) { return l.ID, l.Name },
		fill:  domain.NewLocation,
	}
}

// NewSQLiteDeveloperStore creates a RecordStore for developers.
func NewSQLiteDeveloperStore(db *sql.DB) *SQLiteRecordStore[domain.Developer] {
	return &SQLiteRecordStore[domain.Developer]{
		db:    db,
		table: "developers",
		key:   func(d *domain.Developer) (string, string) { return d.ID, d.Name },
		fill:  domain.NewDeveloper,
	}
}

// NewSQLiteAgentStore creates a RecordStore for agents.
func NewSQLiteAgentStore(db *sql.DB) *SQLiteRecordStore[domain.Agent] {
	return &SQLiteRecordStore[domain.Agent]{
		db:    db,
		table: "agents",
		key:   func(a *domain.Agent) (string, string) { return a.ID, a.Name },
		fill:  domain.NewAgent,
	}
}

// Upsert inserts rec or replaces the stored document with the same id.
func (s *SQLiteRecordStore[T]) Upsert(ctx context.Context, rec *T) error {
	id, name := s.key(rec)
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", s.table, id, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO `+s.table+` (id, name, doc, position) VALUES (?, ?, ?, `+nextPosition(s.table)+`)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, doc = excluded.doc`,
		id, name, string(doc),
	)
	if err != nil {
		return fmt.Errorf("upsert %s %s: %w", s.table, id, err)
	}
	return nil
}

// Get returns the record with the given id.
func (s *SQLiteRecordStore[T]) Get(ctx context.Context, id string) (*T, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM `+s.table+` WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", s.table, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", s.table, id, err)
	}
	return s.decode(doc)
}

// List returns every record in insertion order.
func (s *SQLiteRecordStore[T]) List(ctx context.Context) ([]*T, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc FROM `+s.table+` ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table, err)
	}
	defer func() { _ = rows.Close() }()

	var out []*T
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		rec, err := s.decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table, err)
	}
	return out, nil
}

// Count returns the number of stored records.
func (s *SQLiteRecordStore[T]) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+s.table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.table, err)
	}
	return n, nil
}

func (s *SQLiteRecordStore[T]) decode(doc string) (*T, error) {
	var rec T
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.table, err)
	}
	return s.fill(rec), nil
}
