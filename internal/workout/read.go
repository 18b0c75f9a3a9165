package workout

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownWorkoutType is returned when a package carries an unrecognised code
var ErrUnknownWorkoutType = errors.New("unknown workout type")

// ErrArityMismatch is returned when the field count doesn't fit the workout kind
var ErrArityMismatch = errors.New("wrong number of fields")

// ErrInvalidField is returned when an integer field holds a fractional value
var ErrInvalidField = errors.New("invalid field value")

// ErrInvalidDomain is returned by ReadStrict for values that would divide by zero
var ErrInvalidDomain = errors.New("value out of domain")

// Workout codes as sent by the sensor block
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// maxWholeField bounds integer fields to the range float64 holds exactly.
const maxWholeField = 1 << 53

type constructor struct {
	arity int
	ints  []int // positions that must hold whole numbers
	build func(data []float64) Training
}

var constructors = map[string]constructor{
	CodeSwimming: {
		arity: 5,
		ints:  []int{0, 3, 4},
		build: func(d []float64) Training {
			return NewSwimming(int(d[0]), d[1], d[2], int(d[3]), int(d[4]))
		},
	},
	CodeRunning: {
		arity: 3,
		ints:  []int{0},
		build: func(d []float64) Training {
			return NewRunning(int(d[0]), d[1], d[2])
		},
	},
	CodeWalking: {
		arity: 4,
		ints:  []int{0, 3},
		build: func(d []float64) Training {
			return NewSportsWalking(int(d[0]), d[1], d[2], int(d[3]))
		},
	},
}

// Codes returns the known workout codes in sorted order
func Codes() []string {
	codes := make([]string, 0, len(constructors))
	for code := range constructors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Read builds the training for a sensor package. The data fields are applied
// positionally and must match the kind's arity exactly.
func Read(code string, data []float64) (Training, error) {
	c, ok := constructors[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}

	if len(data) != c.arity {
		return nil, fmt.Errorf("%s: %w: want %d, got %d", code, ErrArityMismatch, c.arity, len(data))
	}

	for _, i := range c.ints {
		if math.IsInf(data[i], 0) || data[i] != math.Trunc(data[i]) {
			return nil, fmt.Errorf("%s: %w: field %d must be a whole number, got %v", code, ErrInvalidField, i, data[i])
		}
		if math.Abs(data[i]) >= maxWholeField {
			return nil, fmt.Errorf("%s: %w: field %d is out of range, got %v", code, ErrInvalidField, i, data[i])
		}
	}

	return c.build(data), nil
}

// ReadStrict is Read plus a check that duration and height are positive, so
// the summary can't come out as Inf or NaN.
func ReadStrict(code string, data []float64) (Training, error) {
	t, err := Read(code, data)
	if err != nil {
		return nil, err
	}

	// duration is always the second field
	if !(data[1] > 0) {
		return nil, fmt.Errorf("%s: %w: duration must be positive, got %v", code, ErrInvalidDomain, data[1])
	}
	if w, ok := t.(SportsWalking); ok && w.Height <= 0 {
		return nil, fmt.Errorf("%s: %w: height must be positive, got %d", code, ErrInvalidDomain, w.Height)
	}

	return t, nil
}
