// Package transfer reads and writes schedules in the two exchange formats:
// a line-based text format and a JSON array of blocks.
package transfer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/inovacc/studyplan/internal/encoding"
	"github.com/inovacc/studyplan/internal/model"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported import file, use a .txt or .json file")
	ErrMalformedImport   = errors.New("malformed import")
	ErrNothingToExport   = errors.New("no schedule to export")
)

// Format names an exchange format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatText, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// DefaultFileName is the export file name used when none is given.
func DefaultFileName(f Format) string {
	if f == FormatJSON {
		return "study_schedule.json"
	}

	return "study_schedule.txt"
}

// Encode writes st to w in format f.
func Encode(w io.Writer, f Format, st *model.State) error {
	switch f {
	case FormatText:
		return EncodeText(w, st)
	case FormatJSON:
		return EncodeJSON(w, st)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Decode reads a state from r in format f.
func Decode(r io.Reader, f Format) (*model.State, error) {
	switch f {
	case FormatText:
		return DecodeText(r)
	case FormatJSON:
		return DecodeJSON(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// ExportFile writes st to path. An empty schedule is refused.
func ExportFile(path string, f Format, st *model.State) error {
	if st == nil || len(st.Schedule) == 0 {
		return ErrNothingToExport
	}

	var buf bytes.Buffer
	if err := Encode(&buf, f, st); err != nil {
		return err
	}

	return encoding.WriteFile(path, buf.Bytes(), 0o644)
}

// ImportFile reads the state stored at path, choosing the format by
// extension. The returned state is meant to replace the current one
// wholesale.
func ImportFile(path string) (*model.State, Format, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, "", err
	}

	data, err := encoding.ReadFile(path)
	if err != nil {
		return nil, f, err
	}

	st, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, f, err
	}

	return st, f, nil
}
