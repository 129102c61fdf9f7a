// Package progress keeps the append-only log of per exercise results and
// builds the dashboard summary from it.
package progress

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

const (
	DefaultDifficulty = 3
	MinDifficulty     = 1
	MaxDifficulty     = 5

	bodyWeightHistorySize = 10
	recentEntriesSize     = 10

	DefaultMeasurementsLimit = 20
	MaxMeasurementsLimit     = 100

	// completed sessions older than this never count towards the streak
	streakLookbackDays = 366
)

var (
	ErrInvalidEntry       = errors.New("invalid progress entry")
	ErrInvalidMeasurement = errors.New("invalid body measurement")
	ErrSessionNotFound    = errors.New("workout session not found")
)

type Entry struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	SessionID    uuid.UUID `json:"workoutSessionId"`
	ExerciseName string    `json:"exerciseName"`
	WeightUsed   *float64  `json:"weightUsed"`
	Reps         *int      `json:"repsCompleted"`
	Difficulty   int       `json:"difficultyRating"`
	BodyWeight   *float64  `json:"bodyWeight"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Request is the body of a progress log call. Numeric fields are optional.
type Request struct {
	SessionID    uuid.UUID `json:"workoutSessionId"`
	ExerciseName string    `json:"exerciseName"`
	WeightUsed   *float64  `json:"weightUsed"`
	Reps         *int      `json:"repsCompleted"`
	Difficulty   *int      `json:"difficultyRating"`
	BodyWeight   *float64  `json:"bodyWeight"`
	Notes        string    `json:"notes"`
}

func (r Request) ToEntry(userID uuid.UUID) (*Entry, error) {
	e := &Entry{
		UserID:       userID,
		SessionID:    r.SessionID,
		ExerciseName: strings.TrimSpace(r.ExerciseName),
		WeightUsed:   r.WeightUsed,
		Reps:         r.Reps,
		Difficulty:   DefaultDifficulty,
		BodyWeight:   r.BodyWeight,
		Notes:        strings.TrimSpace(r.Notes),
	}
	if r.Difficulty != nil {
		e.Difficulty = *r.Difficulty
	}

	var err error
	if e.SessionID == uuid.Nil {
		err = multierr.Append(err, errors.New("workout session is required"))
	}
	if e.ExerciseName == "" {
		err = multierr.Append(err, errors.New("exercise name is required"))
	}
	if e.Difficulty < MinDifficulty || e.Difficulty > MaxDifficulty {
		err = multierr.Append(err, fmt.Errorf("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty))
	}
	if e.WeightUsed != nil && *e.WeightUsed < 0 {
		err = multierr.Append(err, errors.New("weight used must not be negative"))
	}
	if e.Reps != nil && *e.Reps < 0 {
		err = multierr.Append(err, errors.New("reps must not be negative"))
	}
	if e.BodyWeight != nil && *e.BodyWeight <= 0 {
		err = multierr.Append(err, errors.New("body weight must be positive"))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	return e, nil
}

type BodyWeightPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

type CompletedSession struct {
	ID          uuid.UUID `json:"id"`
	DayName     string    `json:"dayName"`
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completedAt"`
}

// Measurements are body circumferences in centimeters.
type Measurements struct {
	ArmCm   *float64 `json:"armCm"`
	ChestCm *float64 `json:"chestCm"`
	WaistCm *float64 `json:"waistCm"`
	ThighCm *float64 `json:"thighCm"`
}

func (m Measurements) empty() bool {
	return m.ArmCm == nil && m.ChestCm == nil && m.WaistCm == nil && m.ThighCm == nil
}

// Measurement is one body check-in. A check-in carrying only the body weight
// is the standalone weight save.
type Measurement struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	BodyWeight *float64  `json:"bodyWeight"`
	Measurements
	CreatedAt time.Time `json:"createdAt"`
}

type MeasurementRequest struct {
	BodyWeight *float64 `json:"bodyWeight"`
	ArmCm      *float64 `json:"armCm"`
	ChestCm    *float64 `json:"chestCm"`
	WaistCm    *float64 `json:"waistCm"`
	ThighCm    *float64 `json:"thighCm"`
}

func (r MeasurementRequest) ToMeasurement(userID uuid.UUID) (*Measurement, error) {
	m := &Measurement{
		UserID:     userID,
		BodyWeight: r.BodyWeight,
		Measurements: Measurements{
			ArmCm:   r.ArmCm,
			ChestCm: r.ChestCm,
			WaistCm: r.WaistCm,
			ThighCm: r.ThighCm,
		},
	}

	if m.BodyWeight == nil && m.Measurements.empty() {
		return nil, fmt.Errorf("%w: at least one value is required", ErrInvalidMeasurement)
	}

	var err error
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"body weight", m.BodyWeight},
		{"arm", m.ArmCm},
		{"chest", m.ChestCm},
		{"waist", m.WaistCm},
		{"thigh", m.ThighCm},
	} {
		if f.value != nil && *f.value <= 0 {
			err = multierr.Append(err, fmt.Errorf("%s must be positive", f.name))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMeasurement, err)
	}
	return m, nil
}

// BodyWeightRequest is the body of the standalone body weight save.
type BodyWeightRequest struct {
	Weight float64 `json:"weight"`
}

func (r BodyWeightRequest) ToMeasurement(userID uuid.UUID) (*Measurement, error) {
	return MeasurementRequest{BodyWeight: &r.Weight}.ToMeasurement(userID)
}

type Dashboard struct {
	WeekStart          time.Time         `json:"weekStart"`
	CompletedTotal     int               `json:"completedTotal"`
	CompletedThisWeek  int               `json:"completedThisWeek"`
	SessionsThisWeek   int               `json:"sessionsThisWeek"`
	Streak             int               `json:"streakDays"`
	LastCompleted      *CompletedSession `json:"lastCompleted,omitempty"`
	LatestMeasurements *Measurements     `json:"latestMeasurements,omitempty"`
	BodyWeight         []BodyWeightPoint `json:"bodyWeightHistory"`
	Recent             []Entry           `json:"recentEntries"`
}

// Streak counts the consecutive days with at least one completed session,
// ending today, or yesterday when nothing was completed today yet. Days are
// taken in the location of today.
func Streak(completedAt []time.Time, today time.Time) int {
	loc := today.Location()
	days := make(map[string]struct{}, len(completedAt))
	for _, c := range completedAt {
		days[c.In(loc).Format(time.DateOnly)] = struct{}{}
	}

	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if _, ok := days[day.Format(time.DateOnly)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[day.Format(time.DateOnly)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}
