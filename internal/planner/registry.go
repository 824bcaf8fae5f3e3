package planner

import (
	"slices"
	"strings"

	"github.com/inovacc/studyplan/internal/model"
)

// AddSubject returns a copy of st with name appended to the subject list.
// Blank and duplicate names, and the reserved break label, leave the state
// unchanged and report false.
func AddSubject(st *model.State, name string) (*model.State, bool) {
	name = strings.TrimSpace(name)

	out := st.Clone()
	if name == "" || name == model.BreakLabel || slices.Contains(out.Subjects, name) {
		return out, false
	}

	out.Subjects = append(out.Subjects, name)

	return out, true
}

// RemoveSubject returns a copy of st without name. Removing an unknown
// subject is a no-op reporting false. The current schedule is kept as is.
func RemoveSubject(st *model.State, name string) (*model.State, bool) {
	name = strings.TrimSpace(name)

	out := st.Clone()

	i := slices.Index(out.Subjects, name)
	if i < 0 {
		return out, false
	}

	out.Subjects = slices.Delete(out.Subjects, i, i+1)

	return out, true
}

// ReplaceSchedule returns a copy of st carrying blocks as its schedule.
func ReplaceSchedule(st *model.State, blocks []model.Block) *model.State {
	out := st.Clone()
	out.Schedule = append([]model.Block(nil), blocks...)

	return out
}
