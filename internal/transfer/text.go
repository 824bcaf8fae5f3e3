package transfer

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/inovacc/studyplan/internal/model"
)

const (
	subjectPrefix  = "Subject:"
	schedulePrefix = "Schedule:"
)

// EncodeText writes one "Subject: <name>" line per subject followed by one
// "Schedule: <label>,<start>,<end>" line per block.
func EncodeText(w io.Writer, st *model.State) error {
	bw := bufio.NewWriter(w)

	for _, s := range st.Subjects {
		if _, err := fmt.Fprintf(bw, "%s %s\n", subjectPrefix, s); err != nil {
			return err
		}
	}

	for _, b := range st.Schedule {
		if _, err := fmt.Fprintf(bw, "%s %s,%s,%s\n", schedulePrefix, b.Label, b.Start, b.End); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// DecodeText parses the text format. Blank lines, unknown lines and
// malformed schedule lines are skipped. A block labelled "Break" is a break;
// anything else is a study session.
func DecodeText(r io.Reader) (*model.State, error) {
	st := &model.State{}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		switch {
		case strings.HasPrefix(line, subjectPrefix):
			name := strings.TrimSpace(strings.TrimPrefix(line, subjectPrefix))
			if name != "" && !slices.Contains(st.Subjects, name) {
				st.Subjects = append(st.Subjects, name)
			}

		case strings.HasPrefix(line, schedulePrefix):
			if b, ok := parseScheduleLine(strings.TrimPrefix(line, schedulePrefix)); ok {
				st.Schedule = append(st.Schedule, b)
			}
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return st, nil
}

// parseScheduleLine splits from the right so labels may contain commas.
func parseScheduleLine(s string) (model.Block, bool) {
	rest, endStr, ok := cutLast(s, ",")
	if !ok {
		return model.Block{}, false
	}

	label, startStr, ok := cutLast(rest, ",")
	if !ok {
		return model.Block{}, false
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return model.Block{}, false
	}

	start, err := model.ParseTimeOfDay(startStr)
	if err != nil {
		return model.Block{}, false
	}

	end, err := model.ParseTimeOfDay(endStr)
	if err != nil {
		return model.Block{}, false
	}

	kind := model.StudySession
	if label == model.BreakLabel {
		kind = model.Break
	}

	return model.Block{Label: label, Kind: kind, Start: start, End: end}, true
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+len(sep):], true
}
