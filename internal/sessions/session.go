// Package sessions persists the weekly workout sessions of a user and
// serves the current week from a read-through cache.
package sessions

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/fitplanner/internal/plan"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrWeekExists      = errors.New("week already has sessions")
	ErrNoProfile       = errors.New("profile required")
	ErrPlanRequest     = errors.New("ai plan request failed")
)

type Method string

const (
	MethodStatic Method = "static"
	MethodAI     Method = "ai"
)

// PlanMeta is the plan_data document of a workout plan.
type PlanMeta struct {
	DayCount    int               `json:"day_count"`
	Method      Method            `json:"method"`
	Goal        plan.Goal         `json:"goal,omitempty"`
	Level       plan.FitnessLevel `json:"level,omitempty"`
	Difficulty  string            `json:"difficulty,omitempty"`
	Duration    string            `json:"duration,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

type Session struct {
	ID          uuid.UUID       `json:"id"`
	PlanID      uuid.UUID       `json:"workoutPlanId"`
	UserID      uuid.UUID       `json:"userId"`
	DayName     string          `json:"dayName"`
	Title       string          `json:"title"`
	Date        time.Time       `json:"sessionDate"`
	Exercises   []plan.Exercise `json:"exercises"`
	Difficulty  string          `json:"difficulty,omitempty"`
	Duration    string          `json:"duration,omitempty"`
	IsCompleted bool            `json:"isCompleted"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Week struct {
	Start    time.Time `json:"weekStart"`
	Sessions []Session `json:"sessions"`
	// Created is set when the sessions were generated by this call.
	Created bool `json:"created"`
}

// NewWeek is a generated week to persist: one plan row plus one session
// per template, dated Start+i.
type NewWeek struct {
	UserID    uuid.UUID
	Start     time.Time
	Meta      PlanMeta
	Templates []plan.SessionTemplate
}
