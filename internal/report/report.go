package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"ftracker/internal/packages"
	"ftracker/internal/workout"
)

const messageTemplate = "Type: %s; Duration: %.3f h.; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f."

// Message renders a training summary as a single report line (no newline)
func Message(info workout.InfoMessage) string {
	return fmt.Sprintf(messageTemplate,
		info.TrainingType,
		info.Duration,
		info.Distance,
		info.Speed,
		info.Calories,
	)
}

// ReadFunc resolves a sensor package into a training
type ReadFunc func(code string, data []float64) (workout.Training, error)

// Writer emits one report line per package
type Writer struct {
	w      io.Writer
	read   ReadFunc
	logger *slog.Logger
}

// NewWriter creates a Writer. A nil read defaults to workout.Read.
func NewWriter(w io.Writer, read ReadFunc, logger *slog.Logger) *Writer {
	if read == nil {
		read = workout.Read
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{
		w:      w,
		read:   read,
		logger: logger,
	}
}

// Write emits the report line for one summary
func (rw *Writer) Write(info workout.InfoMessage) error {
	if _, err := fmt.Fprintln(rw.w, Message(info)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteAll resolves and reports packages in order. The first failing package
// aborts the rest of the batch.
func (rw *Writer) WriteAll(ctx context.Context, pkgs []packages.Package) error {
	for i, p := range pkgs {
		if err := ctx.Err(); err != nil {
			return err
		}

		training, err := rw.read(p.Code, p.Data)
		if err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}

		info := training.ShowTrainingInfo()
		rw.logger.Debug("package resolved",
			slog.Int("index", i),
			slog.String("code", p.Code),
			slog.String("type", info.TrainingType),
		)

		if err := rw.Write(info); err != nil {
			return err
		}
	}
	return nil
}
