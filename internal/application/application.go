// Package application holds the program identity and the directory where
// settings and the store live.
package application

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	AppName = "studyplan"
	Version = "0.3.0"

	// DirEnv overrides the data directory.
	DirEnv = "STUDYPLAN_DIR"
)

// Dir returns the studyplan data directory, creating it with owner-only
// permissions. STUDYPLAN_DIR wins over <user config dir>/studyplan.
func Dir() (string, error) {
	dir := os.Getenv(DirEnv)

	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get config directory: %w", err)
		}

		dir = filepath.Join(base, AppName)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	return dir, nil
}
