// Package profile stores the onboarding survey: body metrics and training
// preferences of a user.
package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/2beens/fitplanner/internal/plan"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
	ErrInvalidProfile  = errors.New("invalid profile")
)

type Preferences struct {
	Goal                  plan.Goal         `json:"goal"`
	FitnessLevel          plan.FitnessLevel `json:"fitnessLevel"`
	TrainingDays          int               `json:"trainingDays"`
	PreferredMuscleGroups []string          `json:"preferredMuscleGroups"`
}

type Profile struct {
	UserID      uuid.UUID   `json:"userId"`
	FullName    string      `json:"fullName"`
	Age         int         `json:"age"`
	HeightCm    float64     `json:"heightCm"`
	WeightKg    float64     `json:"weightKg"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Request is the onboarding form payload. Goal and level are kept as raw
// strings so the aliases of the onboarding survey can be resolved.
type Request struct {
	FullName              string   `json:"fullName"`
	Age                   int      `json:"age"`
	HeightCm              float64  `json:"heightCm"`
	WeightKg              float64  `json:"weightKg"`
	Goal                  string   `json:"goal"`
	FitnessLevel          string   `json:"fitnessLevel"`
	TrainingDays          int      `json:"trainingDays"`
	PreferredMuscleGroups []string `json:"preferredMuscleGroups"`
}

// ToProfile validates the request, following the order of the onboarding
// steps, and returns the profile for userID. All problems are reported at
// once, wrapped in ErrInvalidProfile.
func (r Request) ToProfile(userID uuid.UUID) (*Profile, error) {
	var err error

	name := strings.TrimSpace(r.FullName)
	if name == "" {
		err = multierr.Append(err, errors.New("full name is required"))
	}
	if r.Age <= 0 {
		err = multierr.Append(err, errors.New("age must be positive"))
	}
	if r.HeightCm <= 0 {
		err = multierr.Append(err, errors.New("height must be positive"))
	}
	if r.WeightKg <= 0 {
		err = multierr.Append(err, errors.New("weight must be positive"))
	}

	goal, gerr := plan.ParseGoal(r.Goal)
	if gerr != nil {
		err = multierr.Append(err, gerr)
	}
	level, lerr := plan.ParseFitnessLevel(r.FitnessLevel)
	if lerr != nil {
		err = multierr.Append(err, lerr)
	}

	groups := make([]string, 0, len(r.PreferredMuscleGroups))
	seen := make(map[string]bool, len(r.PreferredMuscleGroups))
	for _, g := range r.PreferredMuscleGroups {
		g = strings.TrimSpace(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		groups = append(groups, g)
	}
	if len(groups) == 0 {
		err = multierr.Append(err, errors.New("at least one muscle group is required"))
	}

	days := r.TrainingDays
	if days == 0 {
		days = plan.DefaultDayCount
	}
	if days < plan.MinDayCount || days > plan.MaxDayCount {
		err = multierr.Append(err, fmt.Errorf("training days must be between %d and %d", plan.MinDayCount, plan.MaxDayCount))
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	return &Profile{
		UserID:   userID,
		FullName: name,
		Age:      r.Age,
		HeightCm: r.HeightCm,
		WeightKg: r.WeightKg,
		Preferences: Preferences{
			Goal:                  goal,
			FitnessLevel:          level,
			TrainingDays:          days,
			PreferredMuscleGroups: groups,
		},
	}, nil
}
