package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenWorkouts Screen = iota
	ScreenDetail
	ScreenChart
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	entries []Entry
	style   string

	// Screen models
	workouts WorkoutsModel
	detail   DetailModel
	chart    ChartModel
	help     HelpModel

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App over the resolved entries
func NewApp(entries []Entry, style string) *App {
	return &App{
		screen:   ScreenWorkouts,
		entries:  entries,
		style:    style,
		workouts: NewWorkoutsModel(entries),
		chart:    NewChartModel(entries, 0),
		help:     NewHelpModel(),
	}
}

// Screen returns the active screen
func (a *App) Screen() Screen {
	return a.screen
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.workouts.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenWorkouts
			return a, nil
		case "2":
			a.screen = ScreenChart
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
			case ScreenDetail:
				a.screen = ScreenWorkouts
			}
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		// Keep inactive screens sized too
		m, _ := a.chart.Update(msg)
		a.chart = m.(ChartModel)
		if a.screen != ScreenDetail {
			return a, nil
		}

	case OpenWorkoutDetailMsg:
		if msg.Index >= 0 && msg.Index < len(a.entries) {
			a.detail = NewDetailModel(a.entries[msg.Index], a.style, a.width, a.height)
			a.screen = ScreenDetail
		}
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenWorkouts:
		var m tea.Model
		m, cmd = a.workouts.Update(msg)
		a.workouts = m.(WorkoutsModel)
	case ScreenDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(DetailModel)
	case ScreenChart:
		var m tea.Model
		m, cmd = a.chart.Update(msg)
		a.chart = m.(ChartModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := headerStyle.Render("Fitness Tracker")
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenWorkouts:
		content = a.workouts.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenChart:
		content = a.chart.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Workouts", ScreenWorkouts},
		{"2", "Chart", ScreenChart},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		active := a.screen == item.screen || (item.screen == ScreenWorkouts && a.screen == ScreenDetail)
		if active {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}
