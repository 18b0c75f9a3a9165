package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ftracker/internal/workout"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Workouts list"},
		{"2", "Calories chart"},
		{"?", "Help (this screen)"},
		{"esc", "Back / close help"},
		{"q", "Quit"},
	}))

	sections = append(sections, m.renderSection("Workouts List", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"g / G", "First / last workout"},
		{"enter", "Show workout details"},
	}))

	sections = append(sections, m.renderCodes())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderCodes() string {
	fields := map[string]string{
		workout.CodeRunning:  "steps, hours, kg",
		workout.CodeWalking:  "steps, hours, kg, height cm",
		workout.CodeSwimming: "strokes, hours, kg, pool length m, laps",
	}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Package Codes"))
	for _, code := range workout.Codes() {
		lines = append(lines, "  "+RenderKeyHelp(code, fields[code]))
	}

	return strings.Join(lines, "\n")
}
