package tui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// ChartModel plots calories burned across the loaded workouts
type ChartModel struct {
	entries []Entry
	width   int
}

// NewChartModel creates a new chart model
func NewChartModel(entries []Entry, width int) ChartModel {
	return ChartModel{entries: entries, width: width}
}

// Init initializes the chart screen
func (m ChartModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
	}
	return m, nil
}

// View renders the chart
func (m ChartModel) View() string {
	title := cardTitleStyle.Render("Calories Burned per Workout")

	data := finite(calorieSeries(m.entries))
	if len(data) < 2 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title,
			"Need at least two valid workouts to plot."))
	}

	width := 60
	if m.width > 0 && m.width-12 < width {
		width = max(m.width-12, 10)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Precision(1),
	)

	caption := RenderMetric("Workouts", fmt.Sprintf("%d plotted", len(data)))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, "", caption))
}

// finite drops Inf and NaN, which asciigraph can't scale
func finite(data []float64) []float64 {
	out := data[:0:0]
	for _, v := range data {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
