package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/inovacc/studyplan/internal/model"
)

// RenderSchedule draws blocks as a table. Rows are styled by block kind.
func RenderSchedule(blocks []model.Block, theme Theme) string {
	rows := make([][]string, len(blocks))
	for i, b := range blocks {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			b.Label,
			b.Kind.String(),
			b.Start.String(),
			b.End.String(),
			strconv.Itoa(b.Minutes()) + "m",
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("#", "SUBJECT", "TYPE", "START", "END", "LENGTH").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)

			if row == table.HeaderRow {
				return base.Inherit(theme.Title)
			}

			if row < 0 || row >= len(blocks) {
				return base
			}

			return base.Inherit(theme.BlockStyle(blocks[row].Kind))
		})

	return t.Render()
}

// RenderSubjects draws the subject registry as a numbered list.
func RenderSubjects(subjects []string, theme Theme) string {
	var out string

	for i, s := range subjects {
		out += theme.Muted.Render(strconv.Itoa(i+1)+".") + " " + theme.Study.Render(s) + "\n"
	}

	return out
}
