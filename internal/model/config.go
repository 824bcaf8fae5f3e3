package model

// Storage backends
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// UI themes
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config holds the application configuration
type Config struct {
	// Mode is the default generation mode
	Mode Mode

	// DayStart and DayEnd bound generated schedules
	DayStart TimeOfDay
	DayEnd   TimeOfDay

	// StudyMinutes is the study session length. Zero lets balanced mode
	// derive it from the window.
	StudyMinutes int

	// BreakMinutes is the break length between sessions
	BreakMinutes int

	// Backend is the storage backend, bolt or sqlite
	Backend string

	// DBPath overrides the database file location when set
	DBPath string

	// Theme is the terminal color theme, dark or light
	Theme string

	// Bell rings the terminal bell when a countdown block starts
	Bell bool
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Mode:         ModeBalanced,
		DayStart:     9 * 60,
		DayEnd:       17 * 60,
		StudyMinutes: 50,
		BreakMinutes: 10,
		Backend:      BackendBolt,
		Theme:        ThemeDark,
	}
}
