package store

import (
	"path/filepath"
	"testing"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/stretchr/testify/require"
)

func openTestStores(t *testing.T) map[string]Store {
	t.Helper()

	stores := map[string]Store{}

	for _, backend := range []string{model.BackendBolt, model.BackendSQLite} {
		cfg := model.DefaultConfig()
		cfg.Backend = backend

		s, err := Open(cfg, filepath.Join(t.TempDir(), backend))
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := s.Close(); err != nil {
				t.Logf("failed to close %s store: %v", backend, err)
			}
		})

		stores[backend] = s
	}

	return stores
}

func sampleState() *model.State {
	return &model.State{
		Subjects: []string{"Math", "Physics"},
		Schedule: []model.Block{
			{Label: "Math", Kind: model.StudySession, Start: model.MustTimeOfDay("09:00"), End: model.MustTimeOfDay("09:50")},
			{Label: model.BreakLabel, Kind: model.Break, Start: model.MustTimeOfDay("09:50"), End: model.MustTimeOfDay("10:00")},
		},
	}
}

func TestStore_Ping(t *testing.T) {
	for name, s := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Ping())
		})
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	for name, s := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			st, err := s.LoadState()
			require.NoError(t, err)
			require.Empty(t, st.Subjects)
			require.Empty(t, st.Schedule)
			require.Empty(t, st.Revision)
		})
	}
}

func TestStore_SaveLoad(t *testing.T) {
	for name, s := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			st := sampleState()
			require.NoError(t, s.SaveState(st))
			require.NotEmpty(t, st.Revision)
			require.False(t, st.UpdatedAt.IsZero())

			got, err := s.LoadState()
			require.NoError(t, err)
			require.Equal(t, st.Subjects, got.Subjects)
			require.Equal(t, st.Schedule, got.Schedule)
			require.Equal(t, st.Revision, got.Revision)
		})
	}
}

func TestStore_HistoryNewestFirst(t *testing.T) {
	for name, s := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			var revisions []string

			for _, subject := range []string{"A", "B", "C"} {
				st := &model.State{Subjects: []string{subject}}
				require.NoError(t, s.SaveState(st))
				revisions = append(revisions, st.Revision)
			}

			all, err := s.History(0)
			require.NoError(t, err)
			require.Len(t, all, 3)
			require.Equal(t, revisions[2], all[0].Revision)
			require.Equal(t, []string{"A"}, all[2].Subjects)

			two, err := s.History(2)
			require.NoError(t, err)
			require.Len(t, two, 2)
			require.Equal(t, revisions[1], two[1].Revision)
		})
	}
}

func TestStore_ClearKeepsHistory(t *testing.T) {
	for name, s := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SaveState(sampleState()))
			require.NoError(t, s.ClearState())

			st, err := s.LoadState()
			require.NoError(t, err)
			require.Empty(t, st.Subjects)

			hist, err := s.History(0)
			require.NoError(t, err)
			require.Len(t, hist, 1)
		})
	}
}

func TestStore_ReopenKeepsState(t *testing.T) {
	dir := t.TempDir()

	for _, backend := range []string{model.BackendBolt, model.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := model.DefaultConfig()
			cfg.Backend = backend

			s, err := Open(cfg, dir)
			require.NoError(t, err)
			require.NoError(t, s.SaveState(sampleState()))
			require.NoError(t, s.Close())

			s, err = Open(cfg, dir)
			require.NoError(t, err)

			defer func() { _ = s.Close() }()

			st, err := s.LoadState()
			require.NoError(t, err)
			require.Equal(t, []string{"Math", "Physics"}, st.Subjects)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Backend = "redis"

	_, err := Open(cfg, t.TempDir())
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestOpen_DBPathOverride(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "custom", "plan.bolt")

	s, err := Open(cfg, t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.FileExists(t, cfg.DBPath)
}
