// Package sqlite provides SQLite storage for studyplan.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/studyplan/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const queryTimeout = 30 * time.Second

// Store keeps planner state in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := NewMigrator(db).MigrateUp(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks if the database is accessible.
func (s *Store) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return s.db.PingContext(ctx)
}

func (s *Store) LoadState() (*model.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var data string

	err := s.db.QueryRowContext(ctx, `SELECT data FROM state WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return &model.State{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	st := &model.State{}
	if err := json.Unmarshal([]byte(data), st); err != nil {
		return nil, fmt.Errorf("decoding state: %w", err)
	}

	return st, nil
}

func (s *Store) SaveState(st *model.State) error {
	if st == nil {
		return errors.New("state is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st.Revision = uuid.New().String()
	st.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(st)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO state (id, revision, data, updated_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET revision = excluded.revision, data = excluded.data, updated_at = excluded.updated_at
	`, st.Revision, string(data), st.UpdatedAt); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO history (revision, data, saved_at) VALUES (?, ?, ?)`,
		st.Revision, string(data), st.UpdatedAt,
	); err != nil {
		return fmt.Errorf("appending history: %w", err)
	}

	return tx.Commit()
}

func (s *Store) ClearState() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE id = 1`)

	return err
}

func (s *Store) History(limit int) ([]model.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `SELECT data FROM history ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []model.State

	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}

		var st model.State
		if err := json.Unmarshal([]byte(data), &st); err != nil {
			return nil, fmt.Errorf("decoding history: %w", err)
		}

		out = append(out, st)
	}

	return out, rows.Err()
}
