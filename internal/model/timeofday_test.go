package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "09:30", want: 570},
		{input: "9:30", want: 570},
		{input: " 23:59 ", want: 1439},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "1230", wantErr: true},
		{input: "12:5", wantErr: true},
		{input: "ab:cd", wantErr: true},
		{input: "", wantErr: true},
		{input: "-1:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrInvalidTime))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	require.Equal(t, "00:05", TimeOfDay(5).String())
	require.Equal(t, "13:07", TimeOfDay(13*60+7).String())
}

func TestTimeOfDay_On(t *testing.T) {
	loc := time.FixedZone("test", 3*3600)
	ref := time.Date(2026, 3, 14, 22, 15, 9, 0, loc)

	got := MustTimeOfDay("08:45").On(ref)

	require.Equal(t, time.Date(2026, 3, 14, 8, 45, 0, 0, loc), got)
}

func TestTimeOfDay_SetRejectsGarbage(t *testing.T) {
	var tod TimeOfDay

	require.NoError(t, tod.Set("07:15"))
	require.Equal(t, "07:15", tod.String())
	require.Error(t, tod.Set("late"))
	require.Equal(t, "07:15", tod.String())
}

func TestBlock_JSONShape(t *testing.T) {
	b := Block{Label: "Math", Kind: StudySession, Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("09:50")}

	data, err := json.Marshal(b)
	require.NoError(t, err)
	require.JSONEq(t, `{"subject":"Math","type":"Study Session","start":"09:00","end":"09:50"}`, string(data))

	var back Block
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, b, back)
}

func TestBlock_UnmarshalUnknownType(t *testing.T) {
	var b Block

	err := json.Unmarshal([]byte(`{"subject":"Nap","type":"Siesta","start":"13:00","end":"14:00"}`), &b)
	require.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Intensive ")
	require.NoError(t, err)
	require.Equal(t, ModeIntensive, m)

	m, err = ParseMode("balanced")
	require.NoError(t, err)
	require.Equal(t, ModeBalanced, m)

	_, err = ParseMode("relaxed")
	require.Error(t, err)
}

func TestState_CloneIsDeep(t *testing.T) {
	s := &State{Subjects: []string{"Math"}, Schedule: []Block{{Label: "Math"}}}

	c := s.Clone()
	c.Subjects[0] = "Physics"
	c.Schedule[0].Label = "Physics"

	require.Equal(t, "Math", s.Subjects[0])
	require.Equal(t, "Math", s.Schedule[0].Label)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, ModeBalanced, cfg.Mode)
	require.Equal(t, "09:00", cfg.DayStart.String())
	require.Equal(t, "17:00", cfg.DayEnd.String())
	require.Equal(t, 50, cfg.StudyMinutes)
	require.Equal(t, 10, cfg.BreakMinutes)
	require.Equal(t, BackendBolt, cfg.Backend)
	require.Equal(t, ThemeDark, cfg.Theme)
}
