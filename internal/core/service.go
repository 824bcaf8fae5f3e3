package core

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/planner"
	"github.com/inovacc/studyplan/internal/store"
	"github.com/inovacc/studyplan/internal/transfer"
)

// Service runs planner operations against a store.
type Service struct {
	store  store.Store
	cfg    model.Config
	logger *slog.Logger
}

// NewService returns a Service. A nil logger discards output.
func NewService(s store.Store, cfg model.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{store: s, cfg: cfg, logger: logger}
}

// Config returns the configuration the service was built with.
func (s *Service) Config() model.Config {
	return s.cfg
}

// State returns the current saved state.
func (s *Service) State() (*model.State, error) {
	return s.store.LoadState()
}

func (s *Service) save(op string, st *model.State) error {
	if err := s.store.SaveState(st); err != nil {
		return &PersistError{Operation: op, Err: err}
	}

	s.logger.Debug("state saved",
		slog.String("op", op),
		slog.String("revision", st.Revision),
		slog.Int("subjects", len(st.Subjects)),
		slog.Int("blocks", len(st.Schedule)),
	)

	return nil
}

// AddSubjects registers names in order and returns the ones that were new.
// Blank and duplicate names are skipped. Nothing is saved when no name was
// added.
func (s *Service) AddSubjects(names ...string) ([]string, error) {
	st, err := s.store.LoadState()
	if err != nil {
		return nil, err
	}

	var added []string

	for _, name := range names {
		var ok bool

		st, ok = planner.AddSubject(st, name)
		if ok {
			added = append(added, st.Subjects[len(st.Subjects)-1])
		}
	}

	if len(added) == 0 {
		return nil, nil
	}

	if err := s.save("add subject", st); err != nil {
		return nil, err
	}

	return added, nil
}

// RemoveSubject drops name from the registry. It reports false, and saves
// nothing, when name was not registered.
func (s *Service) RemoveSubject(name string) (bool, error) {
	st, err := s.store.LoadState()
	if err != nil {
		return false, err
	}

	st, removed := planner.RemoveSubject(st, name)
	if !removed {
		return false, nil
	}

	if err := s.save("remove subject", st); err != nil {
		return false, err
	}

	return true, nil
}

// Subjects returns the registered subjects in insertion order.
func (s *Service) Subjects() ([]string, error) {
	st, err := s.store.LoadState()
	if err != nil {
		return nil, err
	}

	return st.Subjects, nil
}

// DefaultRequest returns a generation request filled from the configuration
// and the registered subjects.
func (s *Service) DefaultRequest() (planner.Request, error) {
	subjects, err := s.Subjects()
	if err != nil {
		return planner.Request{}, err
	}

	return planner.Request{
		Subjects:     subjects,
		Start:        s.cfg.DayStart,
		End:          s.cfg.DayEnd,
		StudyMinutes: s.cfg.StudyMinutes,
		BreakMinutes: s.cfg.BreakMinutes,
		Mode:         s.cfg.Mode,
	}, nil
}

// Generate builds a schedule for req and makes it the current schedule.
// The subject list stored alongside is left untouched.
func (s *Service) Generate(req planner.Request) ([]model.Block, error) {
	blocks, err := planner.Generate(req)
	if err != nil {
		return nil, err
	}

	st, err := s.store.LoadState()
	if err != nil {
		return nil, err
	}

	st = planner.ReplaceSchedule(st, blocks)

	if err := s.save("generate", st); err != nil {
		return nil, err
	}

	s.logger.Info("schedule generated",
		slog.String("mode", req.Mode.String()),
		slog.String("start", req.Start.String()),
		slog.String("end", req.End.String()),
		slog.Int("blocks", len(blocks)),
	)

	return blocks, nil
}

// Import replaces the subjects and the schedule with the contents of path.
func (s *Service) Import(path string) (*model.State, transfer.Format, error) {
	st, f, err := transfer.ImportFile(path)
	if err != nil {
		return nil, f, err
	}

	if err := s.save("import", st); err != nil {
		return nil, f, err
	}

	s.logger.Info("schedule imported",
		slog.String("path", path),
		slog.String("format", string(f)),
		slog.Int("blocks", len(st.Schedule)),
	)

	return st, f, nil
}

// Export writes the current state to path in format f and returns the path
// written. An empty path writes the default file name into dir.
func (s *Service) Export(path, dir string, f transfer.Format) (string, error) {
	st, err := s.store.LoadState()
	if err != nil {
		return "", err
	}

	if path == "" {
		path = filepath.Join(dir, transfer.DefaultFileName(f))
	}

	if err := transfer.ExportFile(path, f, st); err != nil {
		return "", err
	}

	s.logger.Info("schedule exported", slog.String("path", path), slog.String("format", string(f)))

	return path, nil
}

// Clear forgets the subjects and the schedule.
func (s *Service) Clear() error {
	return s.store.ClearState()
}

// History returns up to limit previously saved states, newest first.
func (s *Service) History(limit int) ([]model.State, error) {
	return s.store.History(limit)
}
