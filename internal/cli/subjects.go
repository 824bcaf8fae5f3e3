package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	docStyle  = lipgloss.NewStyle().Margin(1, 2)
	itemStyle = lipgloss.NewStyle().PaddingLeft(4)
)

type subjectItem string

func (i subjectItem) FilterValue() string { return string(i) }

type subjectDelegate struct {
	selected lipgloss.Style
}

func (d subjectDelegate) Height() int                             { return 1 }
func (d subjectDelegate) Spacing() int                            { return 0 }
func (d subjectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d subjectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(subjectItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, string(i))

	if index == m.Index() {
		_, _ = fmt.Fprint(w, d.selected.Render("> "+str))
		return
	}

	_, _ = fmt.Fprint(w, itemStyle.Render(str))
}

// SubjectPickerModel lets the user choose one subject.
type SubjectPickerModel struct {
	list     list.Model
	selected string
	quitting bool
}

// NewSubjectPicker lists subjects under title.
func NewSubjectPicker(title string, subjects []string, theme Theme) SubjectPickerModel {
	items := make([]list.Item, len(subjects))
	for i, s := range subjects {
		items[i] = subjectItem(s)
	}

	l := list.New(items, subjectDelegate{selected: theme.Selected}, 30, 14)
	l.Title = title
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return SubjectPickerModel{list: l}
}

func (m SubjectPickerModel) Init() tea.Cmd {
	return nil
}

func (m SubjectPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(subjectItem); ok {
				m.selected = string(i)
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m SubjectPickerModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Selected returns the chosen subject, or "" when the picker was dismissed.
func (m SubjectPickerModel) Selected() string {
	return m.selected
}
