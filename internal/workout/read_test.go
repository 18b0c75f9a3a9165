package workout

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		data         []float64
		expectedType string
		expectedErr  error
	}{
		{
			name:         "swimming",
			code:         "SWM",
			data:         []float64{720, 1, 80, 25, 40},
			expectedType: "Swimming",
		},
		{
			name:         "running",
			code:         "RUN",
			data:         []float64{15000, 1, 75},
			expectedType: "Running",
		},
		{
			name:         "walking",
			code:         "WLK",
			data:         []float64{9000, 1, 75, 180},
			expectedType: "SportsWalking",
		},
		{
			name:        "unknown code",
			code:        "XYZ",
			data:        []float64{1, 1, 1},
			expectedErr: ErrUnknownWorkoutType,
		},
		{
			name:        "lowercase code is unknown",
			code:        "run",
			data:        []float64{15000, 1, 75},
			expectedErr: ErrUnknownWorkoutType,
		},
		{
			name:        "too few fields",
			code:        "WLK",
			data:        []float64{9000, 1, 75},
			expectedErr: ErrArityMismatch,
		},
		{
			name:        "too many fields",
			code:        "RUN",
			data:        []float64{15000, 1, 75, 180},
			expectedErr: ErrArityMismatch,
		},
		{
			name:        "no fields",
			code:        "SWM",
			data:        nil,
			expectedErr: ErrArityMismatch,
		},
		{
			name:        "fractional step count",
			code:        "RUN",
			data:        []float64{15000.5, 1, 75},
			expectedErr: ErrInvalidField,
		},
		{
			name:        "fractional pool laps",
			code:        "SWM",
			data:        []float64{720, 1, 80, 25, 40.2},
			expectedErr: ErrInvalidField,
		},
		{
			name:        "NaN height",
			code:        "WLK",
			data:        []float64{9000, 1, 75, math.NaN()},
			expectedErr: ErrInvalidField,
		},
		{
			name:        "step count beyond int range",
			code:        "RUN",
			data:        []float64{1e19, 1, 75},
			expectedErr: ErrInvalidField,
		},
		{
			name:        "negative step count beyond exact range",
			code:        "WLK",
			data:        []float64{-1 << 53, 1, 75, 180},
			expectedErr: ErrInvalidField,
		},
		{
			name:         "largest exact step count",
			code:         "RUN",
			data:         []float64{1<<53 - 1, 1, 75},
			expectedType: "Running",
		},
		{
			name:         "fractional duration and weight are fine",
			code:         "RUN",
			data:         []float64{15000, 1.25, 75.5},
			expectedType: "Running",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			training, err := Read(tt.code, tt.data)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr), "error %q should wrap %q", err, tt.expectedErr)
				assert.Nil(t, training)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, training.ShowTrainingInfo().TrainingType)
		})
	}
}

func TestReadMapsFieldsPositionally(t *testing.T) {
	training, err := Read(CodeSwimming, []float64{720, 1.5, 80, 25, 40})
	require.NoError(t, err)

	s, ok := training.(Swimming)
	require.True(t, ok, "got %T, want Swimming", training)
	assert.Equal(t, 720, s.Action)
	assert.Equal(t, 1.5, s.Duration)
	assert.Equal(t, 80.0, s.Weight)
	assert.Equal(t, 25, s.LengthPool)
	assert.Equal(t, 40, s.CountPool)

	training, err = Read(CodeWalking, []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	w, ok := training.(SportsWalking)
	require.True(t, ok, "got %T, want SportsWalking", training)
	assert.Equal(t, 180, w.Height)
}

func TestReadStrict(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		data        []float64
		expectedErr error
	}{
		{"valid running", "RUN", []float64{15000, 1, 75}, nil},
		{"valid walking", "WLK", []float64{9000, 1, 75, 180}, nil},
		{"zero duration", "RUN", []float64{15000, 0, 75}, ErrInvalidDomain},
		{"negative duration", "SWM", []float64{720, -1, 80, 25, 40}, ErrInvalidDomain},
		{"NaN duration", "RUN", []float64{15000, math.NaN(), 75}, ErrInvalidDomain},
		{"zero height", "WLK", []float64{9000, 1, 75, 0}, ErrInvalidDomain},
		{"arity still checked first", "WLK", []float64{9000, 0}, ErrArityMismatch},
		{"unknown still reported", "XYZ", []float64{1, 1, 1}, ErrUnknownWorkoutType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadStrict(tt.code, tt.data)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestCodes(t *testing.T) {
	assert.Equal(t, []string{"RUN", "SWM", "WLK"}, Codes())
}
