// Package postgres persists cases, sentence events and custody reference data
// in PostgreSQL. Every query joins the transaction carried in context when one
// is open.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	txcontext "casework/pkg/platform/tx"
)

//go:embed schema.sql
var schema string

// Store implements the case, event, institution, history and reference data
// stores.
type Store struct {
	db *sql.DB
}

// New creates a store on an open pool.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the schema if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply custody schema: %w", err)
	}
	return nil
}

func (s *Store) execer(ctx context.Context) txcontext.Executor {
	return txcontext.Execer(ctx, s.db)
}

func nullTime(t *sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
