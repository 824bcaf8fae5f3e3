package store

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/store/sqlite"
)

// Store defines the persistence operations used by the app.
type Store interface {
	Ping() error

	// LoadState returns the current state, or an empty state when nothing
	// was saved yet.
	LoadState() (*model.State, error)

	// SaveState replaces the current state and appends it to the history.
	// It stamps st with a fresh Revision and UpdatedAt.
	SaveState(st *model.State) error

	// ClearState forgets the current state. History is kept.
	ClearState() error

	// History returns up to limit saved states, newest first. A limit of
	// zero or less returns everything.
	History(limit int) ([]model.State, error)

	Close() error
}

var ErrUnknownBackend = errors.New("unknown storage backend")

// Open opens the backend selected by cfg. Database files live in dir unless
// cfg.DBPath names one explicitly.
func Open(cfg model.Config, dir string) (Store, error) {
	switch cfg.Backend {
	case "", model.BackendBolt:
		path := cfg.DBPath
		if path == "" {
			path = filepath.Join(dir, "studyplan.bolt")
		}

		return NewBolt(path)

	case model.BackendSQLite:
		path := cfg.DBPath
		if path == "" {
			path = filepath.Join(dir, "studyplan.db")
		}

		return sqlite.New(path)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
