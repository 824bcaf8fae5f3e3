package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/planner"
	"github.com/inovacc/studyplan/internal/store"
	"github.com/inovacc/studyplan/internal/transfer"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := store.NewBolt(filepath.Join(t.TempDir(), "test.bolt"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return NewService(db, model.DefaultConfig(), nil)
}

// failingStore loads fine but refuses to save.
type failingStore struct {
	store.Store
	state *model.State
}

func (f *failingStore) LoadState() (*model.State, error) { return f.state.Clone(), nil }
func (f *failingStore) SaveState(*model.State) error     { return errors.New("disk full") }

func TestService_AddSubjects(t *testing.T) {
	svc := newTestService(t)

	added, err := svc.AddSubjects("Math", "Physics", "Math", " ")
	require.NoError(t, err)
	require.Equal(t, []string{"Math", "Physics"}, added)

	added, err = svc.AddSubjects("Physics")
	require.NoError(t, err)
	require.Empty(t, added)

	subjects, err := svc.Subjects()
	require.NoError(t, err)
	require.Equal(t, []string{"Math", "Physics"}, subjects)

	hist, err := svc.History(0)
	require.NoError(t, err)
	require.Len(t, hist, 1, "no-op add must not save")
}

func TestService_RemoveSubject(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddSubjects("Math", "Physics")
	require.NoError(t, err)

	removed, err := svc.RemoveSubject("Biology")
	require.NoError(t, err)
	require.False(t, removed)

	removed, err = svc.RemoveSubject("Math")
	require.NoError(t, err)
	require.True(t, removed)

	subjects, err := svc.Subjects()
	require.NoError(t, err)
	require.Equal(t, []string{"Physics"}, subjects)
}

func TestService_Generate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddSubjects("Math", "Physics")
	require.NoError(t, err)

	req, err := svc.DefaultRequest()
	require.NoError(t, err)
	require.Equal(t, []string{"Math", "Physics"}, req.Subjects)
	require.Equal(t, model.ModeBalanced, req.Mode)

	blocks, err := svc.Generate(req)
	require.NoError(t, err)
	require.NotEmpty(t, blocks)

	st, err := svc.State()
	require.NoError(t, err)
	require.Equal(t, blocks, st.Schedule)
	require.Equal(t, []string{"Math", "Physics"}, st.Subjects)
}

func TestService_GenerateErrorKeepsState(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddSubjects("Math")
	require.NoError(t, err)

	req, err := svc.DefaultRequest()
	require.NoError(t, err)

	first, err := svc.Generate(req)
	require.NoError(t, err)

	req.End = req.Start
	_, err = svc.Generate(req)
	require.ErrorIs(t, err, planner.ErrInvalidWindow)

	st, err := svc.State()
	require.NoError(t, err)
	require.Equal(t, first, st.Schedule)
}

func TestService_GenerateWithoutSubjects(t *testing.T) {
	svc := newTestService(t)

	req, err := svc.DefaultRequest()
	require.NoError(t, err)

	_, err = svc.Generate(req)
	require.ErrorIs(t, err, planner.ErrNoSubjects)
}

func TestService_ExportImport(t *testing.T) {
	svc := newTestService(t)
	dir := t.TempDir()

	_, err := svc.Export("", dir, transfer.FormatText)
	require.ErrorIs(t, err, transfer.ErrNothingToExport)

	_, err = svc.AddSubjects("Math", "Physics")
	require.NoError(t, err)

	req, err := svc.DefaultRequest()
	require.NoError(t, err)

	blocks, err := svc.Generate(req)
	require.NoError(t, err)

	path, err := svc.Export("", dir, transfer.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "study_schedule.json"), path)

	other := newTestService(t)
	_, err = other.AddSubjects("History")
	require.NoError(t, err)

	st, f, err := other.Import(path)
	require.NoError(t, err)
	require.Equal(t, transfer.FormatJSON, f)
	require.Equal(t, blocks, st.Schedule)

	current, err := other.State()
	require.NoError(t, err)
	require.Equal(t, []string{"Math", "Physics"}, current.Subjects)
}

func TestService_ImportMalformedJSONKeepsState(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddSubjects("Math")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"subject":`), 0o600))

	_, _, err = svc.Import(path)
	require.ErrorIs(t, err, transfer.ErrMalformedImport)

	subjects, err := svc.Subjects()
	require.NoError(t, err)
	require.Equal(t, []string{"Math"}, subjects)
}

func TestService_Clear(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddSubjects("Math")
	require.NoError(t, err)
	require.NoError(t, svc.Clear())

	subjects, err := svc.Subjects()
	require.NoError(t, err)
	require.Empty(t, subjects)
}

func TestService_PersistError(t *testing.T) {
	svc := NewService(&failingStore{state: &model.State{}}, model.DefaultConfig(), nil)

	_, err := svc.AddSubjects("Math")

	var perr *PersistError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "add subject", perr.Operation)
	require.Equal(t, "add subject: saving state: disk full", err.Error())
}
