// Package plan holds the static workout catalog and derives weekly session
// templates from it.
package plan

import (
	"fmt"
	"strings"
)

const (
	MinDayCount     = 2
	MaxDayCount     = 6
	DefaultDayCount = 3
)

type Goal string

const (
	GoalHypertrophy  Goal = "hypertrophy"
	GoalFatLoss      Goal = "fat-loss"
	GoalConditioning Goal = "conditioning"
	GoalMaintenance  Goal = "maintenance"
)

// ParseGoal accepts canonical goal names and the onboarding aliases
// "mass" and "weight-loss".
func ParseGoal(s string) (Goal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hypertrophy", "mass":
		return GoalHypertrophy, nil
	case "fat-loss", "weight-loss":
		return GoalFatLoss, nil
	case "conditioning":
		return GoalConditioning, nil
	case "maintenance":
		return GoalMaintenance, nil
	default:
		return "", fmt.Errorf("unknown goal: %q", s)
	}
}

func (g Goal) String() string {
	return string(g)
}

// Description is the pt-BR phrase used when describing the goal to the AI.
func (g Goal) Description() string {
	switch g {
	case GoalFatLoss:
		return "Perder gordura"
	case GoalHypertrophy:
		return "Ganhar massa muscular"
	case GoalConditioning:
		return "Melhorar condicionamento físico"
	default:
		return "Manter forma física"
	}
}

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

func ParseFitnessLevel(s string) (FitnessLevel, error) {
	switch FitnessLevel(strings.ToLower(strings.TrimSpace(s))) {
	case LevelBeginner:
		return LevelBeginner, nil
	case LevelIntermediate:
		return LevelIntermediate, nil
	case LevelAdvanced:
		return LevelAdvanced, nil
	default:
		return "", fmt.Errorf("unknown fitness level: %q", s)
	}
}

// Difficulty is the pt-BR label shown on session cards.
func (l FitnessLevel) Difficulty() string {
	switch l {
	case LevelBeginner:
		return "Iniciante"
	case LevelAdvanced:
		return "Avançado"
	default:
		return "Intermediário"
	}
}

// Duration is the expected session duration range for the level.
func (l FitnessLevel) Duration() string {
	switch l {
	case LevelBeginner:
		return "30-45 min"
	case LevelAdvanced:
		return "60-75 min"
	default:
		return "45-60 min"
	}
}

// Exercise is one prescribed exercise of a session. ExerciseID references
// the external exercise catalog and is 0 when unknown.
type Exercise struct {
	Name         string `json:"name"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	ExerciseID   int    `json:"exerciseId"`
	Rest         string `json:"rest"`
	Instructions string `json:"instructions,omitempty"`
}

// DayTemplate is a hand-authored session definition of the catalog.
type DayTemplate struct {
	Day       string
	Title     string
	Exercises []Exercise
}

// SessionTemplate is a generated, not yet persisted, session.
type SessionTemplate struct {
	Day        string     `json:"day"`
	Title      string     `json:"title"`
	Exercises  []Exercise `json:"exercises"`
	Difficulty string     `json:"difficulty,omitempty"`
	Duration   string     `json:"duration,omitempty"`
}
