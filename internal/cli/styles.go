package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/studyplan/internal/model"
)

// Theme groups the styles used by every component.
type Theme struct {
	Name     string
	Title    lipgloss.Style
	Study    lipgloss.Style
	Break    lipgloss.Style
	Muted    lipgloss.Style
	Timer    lipgloss.Style
	Selected lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Border   lipgloss.Color
}

// ThemeFor returns the named theme, falling back to dark.
func ThemeFor(name string) Theme {
	if name == model.ThemeLight {
		return Theme{
			Name:     model.ThemeLight,
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			Study:    lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
			Break:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
			Timer:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("17")),
			Selected: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("127")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			Border:   lipgloss.Color("250"),
		}
	}

	return Theme{
		Name:     model.ThemeDark,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Study:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Break:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Timer:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Selected: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Border:   lipgloss.Color("240"),
	}
}

// BlockStyle picks the study or break style for kind.
func (t Theme) BlockStyle(kind model.BlockKind) lipgloss.Style {
	if kind == model.Break {
		return t.Break
	}

	return t.Study
}
