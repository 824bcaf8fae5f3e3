package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/inovacc/studyplan/internal/transfer"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/plans/a.txt")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "plans", "a.txt"), got)

	got, err = expandPath("rel.json")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(got))

	_, err = expandPath("")
	require.Error(t, err)
}

func TestShortRevision(t *testing.T) {
	require.Equal(t, "0f8c2a1b", shortRevision("0f8c2a1b-7d4e-4c1a-9b1e-1f2a3b4c5d6e"))
	require.Equal(t, "abc", shortRevision("abc"))
}

// setupCommands points the root command at a fresh settings file and store
// and returns a runner for it.
func setupCommands(t *testing.T) (string, func(args ...string) error) {
	t.Helper()

	tmp := t.TempDir()
	t.Setenv("STUDYPLAN_DIR", filepath.Join(tmp, "data"))

	ini := filepath.Join(tmp, "studyplan.ini")
	settings := "[storage]\nbackend = bolt\npath = " + filepath.Join(tmp, "plan.bolt") + "\n"
	require.NoError(t, os.WriteFile(ini, []byte(settings), 0o600))

	run := func(args ...string) error {
		rootCmd.SetArgs(append([]string{"--config", ini}, args...))
		return rootCmd.Execute()
	}

	return tmp, run
}

func TestCommandFlow(t *testing.T) {
	tmp, run := setupCommands(t)

	require.NoError(t, run("subject", "add", "Math", "Physics", "Math"))
	require.NoError(t, run("generate", "--mode", "intensive", "--start", "09:00", "--end", "11:00", "--study", "50", "--break", "10"))

	out := filepath.Join(tmp, "out", "plan.json")
	require.NoError(t, run("export", "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(strings.TrimSpace(string(data)), "["))

	st, _, err := transfer.ImportFile(out)
	require.NoError(t, err)
	require.Len(t, st.Schedule, 4)
	require.Equal(t, []string{"Math", "Physics"}, st.Subjects)

	require.NoError(t, run("subject", "remove", "Math"))
	require.NoError(t, run("import", out))
	require.NoError(t, run("countdown", "--once"))

	require.Error(t, run("import", filepath.Join(tmp, "plan.csv")))
}

func TestExport_AsksBeforeOverwrite(t *testing.T) {
	tmp, run := setupCommands(t)

	require.NoError(t, run("subject", "add", "Math"))
	require.NoError(t, run("generate", "--mode", "intensive", "--start", "09:00", "--end", "10:00", "--study", "50", "--break", "10"))

	out := filepath.Join(tmp, "plan.txt")
	require.NoError(t, os.WriteFile(out, []byte("keep me"), 0o600))

	prev := promptInput
	t.Cleanup(func() { promptInput = prev })

	promptInput = strings.NewReader("n\n")
	require.NoError(t, run("export", "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "keep me", string(data))

	require.NoError(t, run("export", "-o", out, "--yes"))

	data, err = os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "Subject: Math\n"))
}

func TestGenerate_WithCountdownAfterLastBlock(t *testing.T) {
	_, run := setupCommands(t)

	prev := timeNow
	t.Cleanup(func() { timeNow = prev })

	timeNow = func() time.Time {
		y, m, d := time.Now().Date()
		return time.Date(y, m, d, 23, 59, 0, 0, time.Local)
	}

	require.NoError(t, run("subject", "add", "Math", "Physics"))

	done := make(chan error, 1)
	go func() {
		done <- run("generate", "--mode", "intensive", "--start", "09:00", "--end", "11:00",
			"--study", "50", "--break", "10", "--countdown", "--notify")
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("countdown did not finish for a schedule that has already passed")
	}
}
