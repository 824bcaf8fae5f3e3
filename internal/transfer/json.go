package transfer

import (
	"fmt"
	"io"
	"slices"

	"github.com/inovacc/studyplan/internal/encoding"
	"github.com/inovacc/studyplan/internal/model"
)

// jsonBlock is the wire form of a block. Fields are kept as strings so
// missing values are told apart from midnight.
type jsonBlock struct {
	Subject string `json:"subject"`
	Type    string `json:"type"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// EncodeJSON writes the schedule as an indented JSON array.
func EncodeJSON(w io.Writer, st *model.State) error {
	out := make([]jsonBlock, 0, len(st.Schedule))

	for _, b := range st.Schedule {
		out = append(out, jsonBlock{
			Subject: b.Label,
			Type:    b.Kind.String(),
			Start:   b.Start.String(),
			End:     b.End.String(),
		})
	}

	data, err := encoding.ToJSONIndent(out)
	if err != nil {
		return err
	}

	data = append(data, '\n')

	_, err = w.Write(data)

	return err
}

// DecodeJSON parses a JSON block array. Any decode or validation failure
// rejects the whole input. Subjects are the distinct study-session labels
// in order of first appearance.
func DecodeJSON(r io.Reader) (*model.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw, err := encoding.ParseJSON[[]jsonBlock](data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}

	st := &model.State{}

	for i, jb := range *raw {
		b, err := jb.block()
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %w", ErrMalformedImport, i, err)
		}

		st.Schedule = append(st.Schedule, b)

		if b.Kind == model.StudySession && !slices.Contains(st.Subjects, b.Label) {
			st.Subjects = append(st.Subjects, b.Label)
		}
	}

	return st, nil
}

func (jb jsonBlock) block() (model.Block, error) {
	if jb.Subject == "" {
		return model.Block{}, fmt.Errorf("missing subject")
	}

	kind, err := model.ParseBlockKind(jb.Type)
	if err != nil {
		return model.Block{}, err
	}

	start, err := model.ParseTimeOfDay(jb.Start)
	if err != nil {
		return model.Block{}, err
	}

	end, err := model.ParseTimeOfDay(jb.End)
	if err != nil {
		return model.Block{}, err
	}

	return model.Block{Label: jb.Subject, Kind: kind, Start: start, End: end}, nil
}
