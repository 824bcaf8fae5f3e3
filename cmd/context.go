package cmd

import (
	"fmt"
	"log/slog"

	"github.com/inovacc/studyplan/internal/application"
	"github.com/inovacc/studyplan/internal/cli"
	"github.com/inovacc/studyplan/internal/config"
	"github.com/inovacc/studyplan/internal/core"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/store"
)

// appContext carries what every command needs. The store is opened on
// first use so that commands such as config and version never touch it.
type appContext struct {
	dir        string
	configPath string
	cfg        model.Config
	logger     *slog.Logger

	db  store.Store
	svc *core.Service
}

func newAppContext(configPath string, logger *slog.Logger) (*appContext, error) {
	dir, err := application.Dir()
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		configPath = config.Path(dir)
	}

	// a broken settings file still yields a usable context so that
	// "config reset" can repair it
	cfg, err := config.Load(configPath)
	if err != nil {
		return &appContext{dir: dir, configPath: configPath, cfg: model.DefaultConfig(), logger: logger}, err
	}

	logger.Debug("config loaded",
		slog.String("path", configPath),
		slog.String("backend", cfg.Backend),
		slog.String("mode", cfg.Mode.String()),
	)

	return &appContext{dir: dir, configPath: configPath, cfg: cfg, logger: logger}, nil
}

// Service opens the configured store and returns the planner service.
func (a *appContext) Service() (*core.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	db, err := store.Open(a.cfg, a.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", a.cfg.Backend, err)
	}

	a.db = db
	a.svc = core.NewService(db, a.cfg, a.logger)

	return a.svc, nil
}

// Theme returns the configured color theme.
func (a *appContext) Theme() cli.Theme {
	return cli.ThemeFor(a.cfg.Theme)
}

func (a *appContext) Close() {
	if a.db == nil {
		return
	}

	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close store", slog.Any("error", err))
	}

	a.db = nil
	a.svc = nil
}
