package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ftracker/internal/config"
	"ftracker/internal/report"
)

// DetailModel shows a single workout
type DetailModel struct {
	entry    Entry
	style    string
	viewport viewport.Model
	ready    bool
}

// NewDetailModel creates a detail view for entry
func NewDetailModel(entry Entry, style string, width, height int) DetailModel {
	m := DetailModel{
		entry: entry,
		style: style,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen
func (m DetailModel) View() string {
	if !m.ready {
		return m.renderContent()
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  esc: back")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m DetailModel) renderContent() string {
	e := m.entry
	data := formatData(e.Package.Data)

	if e.Err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			cardTitleStyle.Render(fmt.Sprintf("%s %s", e.Package.Code, data)),
			errorStyle.Render("Error: "+e.Err.Error()),
		)
	}

	if m.style != config.StyleCard {
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			fmt.Sprintf("%s %s", e.Package.Code, data),
			report.Message(e.Info),
		)
	}

	title := cardTitleStyle.Render(e.Info.TrainingType)
	lines := []string{
		RenderMetric("Package", fmt.Sprintf("%s %s", e.Package.Code, data)),
		RenderMetric("Duration", fmt.Sprintf("%.3f h", e.Info.Duration)),
		RenderMetric("Distance", fmt.Sprintf("%.3f km", e.Info.Distance)),
		RenderMetric("Avg. speed", fmt.Sprintf("%.3f km/h", e.Info.Speed)),
		RenderMetric("Calories", fmt.Sprintf("%.3f kcal", e.Info.Calories)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func formatData(data []float64) string {
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
