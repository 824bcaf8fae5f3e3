package planner

import (
	"fmt"

	"github.com/inovacc/studyplan/internal/model"
)

// Request describes one schedule generation.
type Request struct {
	Subjects []string
	Start    model.TimeOfDay
	End      model.TimeOfDay

	// StudyMinutes is the session length. Balanced mode derives it from
	// the window when zero.
	StudyMinutes int
	BreakMinutes int

	// Mode defaults to balanced when empty.
	Mode model.Mode
}

// Generate builds the block sequence for req. Each subject in turn gets a
// study session followed by a break, advancing a running clock from Start,
// until the next study session would run past End. A break that would run
// past End is dropped while the session before it is kept.
//
// Both modes share that rule. Balanced mode may leave StudyMinutes at zero,
// in which case the session length is chosen so one pass over the subjects
// fills the window.
//
// Generated blocks are contiguous: each block ends where the next starts.
func Generate(req Request) ([]model.Block, error) {
	if len(req.Subjects) == 0 {
		return nil, ErrNoSubjects
	}

	if !req.Start.Valid() || !req.End.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, model.ErrInvalidTime)
	}

	if req.End <= req.Start {
		return nil, fmt.Errorf("%w: %s - %s", ErrInvalidWindow, req.Start, req.End)
	}

	if req.BreakMinutes < 0 || req.StudyMinutes < 0 ||
		req.BreakMinutes > model.MinutesPerDay || req.StudyMinutes > model.MinutesPerDay {
		return nil, fmt.Errorf("%w: study %d, break %d", ErrInvalidDuration, req.StudyMinutes, req.BreakMinutes)
	}

	mode := req.Mode
	if mode == "" {
		mode = model.ModeBalanced
	}

	if mode != model.ModeIntensive && mode != model.ModeBalanced {
		return nil, fmt.Errorf("unknown schedule mode %q", mode)
	}

	var (
		n      = len(req.Subjects)
		window = int(req.End - req.Start)
		study  = req.StudyMinutes
	)

	if study == 0 {
		if mode != model.ModeBalanced {
			return nil, fmt.Errorf("%w: study length is required in %s mode", ErrInvalidDuration, mode)
		}

		// one round of n sessions separated by n-1 breaks fills the window
		study = (window - (n-1)*req.BreakMinutes) / n
		if study <= 0 {
			return nil, &WindowTooShortError{WindowMinutes: window, NeedMinutes: n + (n-1)*req.BreakMinutes}
		}
	}

	blocks := emit(req.Subjects, req.Start, req.End, study, req.BreakMinutes)
	if len(blocks) == 0 {
		return nil, &WindowTooShortError{WindowMinutes: window, NeedMinutes: study}
	}

	return blocks, nil
}

func emit(subjects []string, start, end model.TimeOfDay, study, brk int) []model.Block {
	var (
		blocks []model.Block
		t      = start
	)

	for i := 0; ; i++ {
		if t.Add(study) > end {
			break
		}

		blocks = append(blocks, model.Block{
			Label: subjects[i%len(subjects)],
			Kind:  model.StudySession,
			Start: t,
			End:   t.Add(study),
		})
		t = t.Add(study)

		if brk == 0 {
			continue
		}

		if t.Add(brk) > end {
			break
		}

		blocks = append(blocks, model.Block{
			Label: model.BreakLabel,
			Kind:  model.Break,
			Start: t,
			End:   t.Add(brk),
		})
		t = t.Add(brk)
	}

	return blocks
}
