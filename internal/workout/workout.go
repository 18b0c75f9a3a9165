package workout

import "math"

const (
	// Shared conversions
	mInKm          = 1000
	minutesInHour  = 60
	defaultLenStep = 0.65 // metres per step

	// Running
	runningSpeedMultiplier = 18
	runningSpeedShift      = 1.79

	// Sports walking
	walkingWeightMultiplier   = 0.035
	walkingCaloriesMultiplier = 0.029
	kmhInMs                   = 0.278
	cmInM                     = 100

	// Swimming
	swimmingLenStep         = 1.38 // metres per stroke
	swimmingSpeedShift      = 1.1
	swimmingSpeedMultiplier = 2
)

// InfoMessage is the computed summary of a single training
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Training is implemented by every workout kind
type Training interface {
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	ShowTrainingInfo() InfoMessage
}

// training holds the sensor fields common to every kind.
type training struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
	lenStep  float64
}

func newTraining(action int, duration, weight, lenStep float64) training {
	return training{
		Action:   action,
		Duration: duration,
		Weight:   weight,
		lenStep:  lenStep,
	}
}

// Distance returns the covered distance in km
func (t training) Distance() float64 {
	return float64(t.Action) * t.lenStep / mInKm
}

// MeanSpeed returns the average speed in km/h
func (t training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

// info builds the summary in distance, speed, calories order.
func info(name string, t Training, duration float64) InfoMessage {
	distance := t.Distance()
	speed := t.MeanSpeed()
	calories := t.SpentCalories()
	return InfoMessage{
		TrainingType: name,
		Duration:     duration,
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}
}

// Running is a run recorded by step count
type Running struct {
	training
}

// NewRunning creates a running training
func NewRunning(action int, duration, weight float64) Running {
	return Running{training: newTraining(action, duration, weight, defaultLenStep)}
}

// SpentCalories returns the burned kcal
func (r Running) SpentCalories() float64 {
	minutes := r.Duration * minutesInHour
	return (runningSpeedMultiplier*r.MeanSpeed() + runningSpeedShift) * r.Weight / mInKm * minutes
}

// ShowTrainingInfo returns the summary for the run
func (r Running) ShowTrainingInfo() InfoMessage {
	return info("Running", r, r.Duration)
}

// SportsWalking is a walk recorded by step count. Height is in cm.
type SportsWalking struct {
	training
	Height int
}

// NewSportsWalking creates a sports walking training
func NewSportsWalking(action int, duration, weight float64, height int) SportsWalking {
	return SportsWalking{
		training: newTraining(action, duration, weight, defaultLenStep),
		Height:   height,
	}
}

// SpentCalories returns the burned kcal
func (w SportsWalking) SpentCalories() float64 {
	speedMs := w.MeanSpeed() * kmhInMs
	heightM := float64(w.Height) / cmInM
	return (walkingWeightMultiplier*w.Weight +
		(math.Pow(speedMs, 2)/heightM)*walkingCaloriesMultiplier*w.Weight) *
		w.Duration * minutesInHour
}

// ShowTrainingInfo returns the summary for the walk
func (w SportsWalking) ShowTrainingInfo() InfoMessage {
	return info("SportsWalking", w, w.Duration)
}

// Swimming is a pool session recorded by stroke count.
// Speed is derived from the pool length and laps, not from strokes.
type Swimming struct {
	training
	LengthPool int // metres
	CountPool  int // laps
}

// NewSwimming creates a swimming training
func NewSwimming(action int, duration, weight float64, lengthPool, countPool int) Swimming {
	return Swimming{
		training:   newTraining(action, duration, weight, swimmingLenStep),
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

// MeanSpeed returns the average speed over the pool distance in km/h
func (s Swimming) MeanSpeed() float64 {
	distance := float64(s.LengthPool) * float64(s.CountPool)
	return distance / mInKm / s.Duration
}

// SpentCalories returns the burned kcal
func (s Swimming) SpentCalories() float64 {
	multiplier := swimmingSpeedMultiplier * s.Weight * s.Duration
	return (s.MeanSpeed() + swimmingSpeedShift) * multiplier
}

// ShowTrainingInfo returns the summary for the swim
func (s Swimming) ShowTrainingInfo() InfoMessage {
	return info("Swimming", s, s.Duration)
}
