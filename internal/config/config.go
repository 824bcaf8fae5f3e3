// Package config loads and saves the studyplan settings file.
//
// The file is INI formatted:
//
//	[schedule]
//	mode          = balanced
//	start         = 09:00
//	end           = 17:00
//	study_minutes = 50
//	break_minutes = 10
//
//	[storage]
//	backend = bolt
//	path    =
//
//	[ui]
//	theme = dark
//	bell  = false
//
// Missing keys fall back to model.DefaultConfig.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/inovacc/studyplan/internal/encoding"
	"github.com/inovacc/studyplan/internal/model"
	"gopkg.in/ini.v1"
)

// FileName is the settings file name inside the application directory.
const FileName = "studyplan.ini"

var ErrUnknownKey = errors.New("unknown config key")

// key describes one settable entry as section.name.
type key struct {
	section string
	name    string
	get     func(c *model.Config) string
	set     func(c *model.Config, v string) error
}

var keys = []key{
	{
		section: "schedule", name: "mode",
		get: func(c *model.Config) string { return c.Mode.String() },
		set: func(c *model.Config, v string) error { return c.Mode.Set(v) },
	},
	{
		section: "schedule", name: "start",
		get: func(c *model.Config) string { return c.DayStart.String() },
		set: func(c *model.Config, v string) error { return c.DayStart.Set(v) },
	},
	{
		section: "schedule", name: "end",
		get: func(c *model.Config) string { return c.DayEnd.String() },
		set: func(c *model.Config, v string) error { return c.DayEnd.Set(v) },
	},
	{
		section: "schedule", name: "study_minutes",
		get: func(c *model.Config) string { return strconv.Itoa(c.StudyMinutes) },
		set: func(c *model.Config, v string) error { return setMinutes(&c.StudyMinutes, v) },
	},
	{
		section: "schedule", name: "break_minutes",
		get: func(c *model.Config) string { return strconv.Itoa(c.BreakMinutes) },
		set: func(c *model.Config, v string) error { return setMinutes(&c.BreakMinutes, v) },
	},
	{
		section: "storage", name: "backend",
		get: func(c *model.Config) string { return c.Backend },
		set: func(c *model.Config, v string) error {
			return oneOf(&c.Backend, v, model.BackendBolt, model.BackendSQLite)
		},
	},
	{
		section: "storage", name: "path",
		get: func(c *model.Config) string { return c.DBPath },
		set: func(c *model.Config, v string) error {
			c.DBPath = strings.TrimSpace(v)
			return nil
		},
	},
	{
		section: "ui", name: "theme",
		get: func(c *model.Config) string { return c.Theme },
		set: func(c *model.Config, v string) error {
			return oneOf(&c.Theme, v, model.ThemeDark, model.ThemeLight)
		},
	},
	{
		section: "ui", name: "bell",
		get: func(c *model.Config) string { return strconv.FormatBool(c.Bell) },
		set: func(c *model.Config, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("invalid boolean %q", v)
			}

			c.Bell = b

			return nil
		},
	},
}

func setMinutes(dst *int, v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 || n >= model.MinutesPerDay {
		return fmt.Errorf("invalid minutes %q", v)
	}

	*dst = n

	return nil
}

func oneOf(dst *string, v string, allowed ...string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	if !slices.Contains(allowed, v) {
		return fmt.Errorf("invalid value %q (want one of %s)", v, strings.Join(allowed, ", "))
	}

	*dst = v

	return nil
}

// Path returns the settings file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Keys lists the settable keys as section.name.
func Keys() []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.section + "." + k.name
	}

	return out
}

// Load reads the settings file at path. A missing file yields the defaults.
func Load(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	file, err := ini.LooseLoad(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, k := range keys {
		sec := file.Section(k.section)
		if !sec.HasKey(k.name) {
			continue
		}

		if err := k.set(&cfg, sec.Key(k.name).String()); err != nil {
			return cfg, fmt.Errorf("%s: [%s] %s: %w", path, k.section, k.name, err)
		}
	}

	return cfg, nil
}

// Save writes cfg to path, replacing any previous file.
func Save(path string, cfg model.Config) error {
	file := ini.Empty()

	for _, k := range keys {
		if _, err := file.Section(k.section).NewKey(k.name, k.get(&cfg)); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return encoding.WriteFile(path, buf.Bytes(), 0o600)
}

// Get returns the value of a section.name key.
func Get(cfg model.Config, name string) (string, error) {
	k, err := lookup(name)
	if err != nil {
		return "", err
	}

	return k.get(&cfg), nil
}

// Set validates and applies value to the section.name key of cfg.
func Set(cfg *model.Config, name, value string) error {
	k, err := lookup(name)
	if err != nil {
		return err
	}

	if err := k.set(cfg, value); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func lookup(name string) (key, error) {
	for _, k := range keys {
		if k.section+"."+k.name == name {
			return k, nil
		}
	}

	return key{}, fmt.Errorf("%w %q (known keys: %s)", ErrUnknownKey, name, strings.Join(Keys(), ", "))
}
