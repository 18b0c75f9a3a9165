package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WorkoutsModel is the workouts list screen model
type WorkoutsModel struct {
	entries []Entry
	cursor  int
}

// NewWorkoutsModel creates a new workouts list model
func NewWorkoutsModel(entries []Entry) WorkoutsModel {
	return WorkoutsModel{entries: entries}
}

// OpenWorkoutDetailMsg asks the app to show the detail of an entry
type OpenWorkoutDetailMsg struct {
	Index int
}

// Init initializes the workouts screen
func (m WorkoutsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m WorkoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if len(m.entries) > 0 {
				m.cursor = len(m.entries) - 1
			}
		case "enter":
			if m.cursor < len(m.entries) {
				index := m.cursor
				return m, func() tea.Msg {
					return OpenWorkoutDetailMsg{Index: index}
				}
			}
		}
	}
	return m, nil
}

// Cursor returns the selected row
func (m WorkoutsModel) Cursor() int {
	return m.cursor
}

// View renders the workouts list
func (m WorkoutsModel) View() string {
	if len(m.entries) == 0 {
		return "\n  No workouts to show."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Workouts (%d)", len(m.entries)))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("  %-4s  %-14s  %8s  %9s  %9s  %10s",
		"Code", "Type", "Hours", "Km", "Km/h", "Kcal"))
	sections = append(sections, header)

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var row string
		if e.Err != nil {
			row = fmt.Sprintf("%s%-4s  %s", cursor, e.Package.Code, truncate(e.Err.Error(), 56))
		} else {
			row = fmt.Sprintf("%s%-4s  %-14s  %8.3f  %9.3f  %9.3f  %10.3f",
				cursor,
				e.Package.Code,
				e.Info.TrainingType,
				e.Info.Duration,
				e.Info.Distance,
				e.Info.Speed,
				e.Info.Calories,
			)
		}

		switch {
		case i == m.cursor:
			sections = append(sections, tableSelectedStyle.Render(row))
		case e.Err != nil:
			sections = append(sections, errorStyle.Padding(0, 1).Render(row))
		default:
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	help := statusStyle.Render("  enter: details  j/k: navigate  g/G: first/last")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// truncate shortens s to limit runes, never splitting a multi-byte rune
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}
