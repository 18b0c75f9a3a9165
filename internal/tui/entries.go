package tui

import (
	"ftracker/internal/packages"
	"ftracker/internal/report"
	"ftracker/internal/workout"
)

// Entry is one package with its computed summary. Err is set when the
// package could not be resolved; Info is then zero.
type Entry struct {
	Package packages.Package
	Info    workout.InfoMessage
	Err     error
}

// BuildEntries resolves every package. Unlike the report, a failing package
// doesn't stop the rest from being shown.
func BuildEntries(pkgs []packages.Package, read report.ReadFunc) []Entry {
	if read == nil {
		read = workout.Read
	}

	entries := make([]Entry, 0, len(pkgs))
	for _, p := range pkgs {
		e := Entry{Package: p}
		training, err := read(p.Code, p.Data)
		if err != nil {
			e.Err = err
		} else {
			e.Info = training.ShowTrainingInfo()
		}
		entries = append(entries, e)
	}
	return entries
}

// calorieSeries returns the calories of the resolved entries, in order
func calorieSeries(entries []Entry) []float64 {
	var data []float64
	for _, e := range entries {
		if e.Err == nil {
			data = append(data, e.Info.Calories)
		}
	}
	return data
}
