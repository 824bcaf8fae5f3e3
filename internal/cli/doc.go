// Package cli provides the terminal user interface components for studyplan.
//
// The package uses [Bubbletea] for interactive views and [Lipgloss] for
// styling. Components follow the standard Bubbletea Model-View-Update
// architecture.
//
// # Components
//
//   - Countdown: live countdown to the next block, fed by countdown.Driver
//   - SubjectPicker: filterable list used to pick a subject to remove
//   - RenderSchedule: static table of a schedule for non-interactive output
//
// Colors come from a [Theme], selected by the ui.theme setting.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
