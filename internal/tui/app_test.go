package tui

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftracker/internal/config"
	"ftracker/internal/packages"
	"ftracker/internal/workout"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the app and runs any returned command once, feeding its
// result back, the way the Bubble Tea runtime would.
func send(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()
	_, cmd := a.Update(msg)
	if cmd == nil {
		return
	}
	if next := cmd(); next != nil {
		if _, ok := next.(tea.QuitMsg); ok {
			return
		}
		_, _ = a.Update(next)
	}
}

func TestBuildEntries(t *testing.T) {
	pkgs := append(packages.Default(), packages.Package{Code: "XYZ", Data: []float64{1, 1, 1}})

	entries := BuildEntries(pkgs, nil)
	require.Len(t, entries, 4)

	assert.Equal(t, "Swimming", entries[0].Info.TrainingType)
	assert.Equal(t, "Running", entries[1].Info.TrainingType)
	assert.Equal(t, "SportsWalking", entries[2].Info.TrainingType)
	assert.ErrorIs(t, entries[3].Err, workout.ErrUnknownWorkoutType)

	assert.Len(t, calorieSeries(entries), 3)
}

func TestBuildEntriesStrict(t *testing.T) {
	entries := BuildEntries([]packages.Package{{Code: "RUN", Data: []float64{15000, 0, 75}}}, workout.ReadStrict)
	require.Len(t, entries, 1)
	assert.ErrorIs(t, entries[0].Err, workout.ErrInvalidDomain)
}

func TestAppNavigation(t *testing.T) {
	a := NewApp(BuildEntries(packages.Default(), nil), config.StylePlain)
	send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, ScreenWorkouts, a.Screen())
	assert.Contains(t, a.View(), "Workouts (3)")

	send(t, a, keyMsg("j"))
	send(t, a, keyMsg("down"))
	assert.Equal(t, 2, a.workouts.Cursor())

	// Cursor stops at the last row
	send(t, a, keyMsg("j"))
	assert.Equal(t, 2, a.workouts.Cursor())

	send(t, a, keyMsg("enter"))
	require.Equal(t, ScreenDetail, a.Screen())
	assert.Contains(t, a.View(), "Type: SportsWalking; Duration: 1.000 h.")

	send(t, a, keyMsg("esc"))
	assert.Equal(t, ScreenWorkouts, a.Screen())

	send(t, a, keyMsg("?"))
	assert.Equal(t, ScreenHelp, a.Screen())
	assert.Contains(t, a.View(), "Package Codes")

	send(t, a, keyMsg("esc"))
	assert.Equal(t, ScreenWorkouts, a.Screen())

	send(t, a, keyMsg("2"))
	assert.Equal(t, ScreenChart, a.Screen())
	assert.Contains(t, a.View(), "Calories Burned per Workout")

	send(t, a, keyMsg("g"))
	send(t, a, keyMsg("1"))
	assert.Equal(t, ScreenWorkouts, a.Screen())
}

func TestAppQuit(t *testing.T) {
	a := NewApp(nil, config.StylePlain)

	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok, "q should quit")
}

func TestDetailCardStyle(t *testing.T) {
	entries := BuildEntries(packages.Default(), nil)

	view := NewDetailModel(entries[1], config.StyleCard, 0, 0).View()
	assert.Contains(t, view, "Running")
	assert.Contains(t, view, "9.750 km")
	assert.Contains(t, view, "797.805 kcal")
}

func TestDetailShowsError(t *testing.T) {
	entry := Entry{
		Package: packages.Package{Code: "XYZ", Data: []float64{1, 2.5}},
		Err:     errors.New("boom"),
	}

	view := NewDetailModel(entry, config.StyleCard, 0, 0).View()
	assert.Contains(t, view, "XYZ [1, 2.5]")
	assert.Contains(t, view, "Error: boom")
}

func TestChartNeedsTwoPoints(t *testing.T) {
	entries := BuildEntries(packages.Default()[:1], nil)
	assert.Contains(t, NewChartModel(entries, 80).View(), "Need at least two")

	entries = BuildEntries(packages.Default(), nil)
	assert.Contains(t, NewChartModel(entries, 80).View(), "3 plotted")
}

func TestFiniteDropsNonFinite(t *testing.T) {
	data := []float64{1, math.Inf(1), math.NaN(), 2}
	assert.Equal(t, []float64{1, 2}, finite(data))
	// Input isn't modified
	assert.True(t, math.IsInf(data[1], 1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.True(t, strings.HasSuffix(truncate(strings.Repeat("x", 100), 20), "..."))

	// Cyrillic runes are two bytes each
	cut := truncate(`unknown workout type: "БЕГБЕГБЕГ"`, 26)
	assert.True(t, utf8.ValidString(cut), "%q is not valid UTF-8", cut)
	assert.Equal(t, `unknown workout type: "...`, cut)
	assert.Equal(t, "БЕ", truncate("БЕГ", 2))
	assert.Equal(t, "Б...", truncate("БЕГБЕГ", 4))
}

func TestWorkoutsViewKeepsErrorRowValidUTF8(t *testing.T) {
	code := strings.Repeat("Ж", 40)
	entries := BuildEntries([]packages.Package{{Code: code, Data: []float64{1, 1, 1}}}, nil)

	view := NewWorkoutsModel(entries).View()
	assert.True(t, utf8.ValidString(view), "workouts view is not valid UTF-8")
}
