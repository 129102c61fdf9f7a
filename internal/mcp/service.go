package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/fitplanner/internal/plan"
	"github.com/2beens/fitplanner/internal/progress"
	"github.com/2beens/fitplanner/internal/sessions"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

// weekLoader provides the current week of a user (for dependency injection and testing).
type weekLoader interface {
	LoadCurrentWeek(ctx context.Context, userID uuid.UUID) (*sessions.Week, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*sessions.Session, error)
}

// progressReader provides logged progress and the dashboard aggregates.
type progressReader interface {
	ListBySession(ctx context.Context, userID, sessionID uuid.UUID) ([]progress.Entry, error)
	Dashboard(ctx context.Context, userID uuid.UUID, weekStart, today time.Time) (*progress.Dashboard, error)
}

// WorkoutProgress is a session together with the progress logged against it.
type WorkoutProgress struct {
	Session *sessions.Session `json:"session"`
	Entries []progress.Entry  `json:"entries"`
}

type NewContextServiceParams struct {
	Weeks    weekLoader
	Progress progressReader
	Location *time.Location
	Now      func() time.Time
}

// ContextService holds dependencies and implements the workout context
// business logic exposed to MCP clients.
type ContextService struct {
	weeks    weekLoader
	progress progressReader
	loc      *time.Location
	now      func() time.Time
}

func NewContextService(params NewContextServiceParams) *ContextService {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &ContextService{
		weeks:    params.Weeks,
		progress: params.Progress,
		loc:      loc,
		now:      now,
	}
}

func (s *ContextService) CurrentWeek(ctx context.Context, userID uuid.UUID) (_ *sessions.Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mcp.currentweek")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return s.weeks.LoadCurrentWeek(ctx, userID)
}

// PlanTemplate previews the static plan for the given parameters. Empty
// goal and level fall back to maintenance and beginner.
func (s *ContextService) PlanTemplate(dayCount int, goal, level string) (*plan.Preview, error) {
	return plan.NewPreview(dayCount, goal, level)
}

func (s *ContextService) WorkoutProgress(ctx context.Context, userID, sessionID uuid.UUID) (_ *WorkoutProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mcp.workoutprogress")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := s.weeks.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	entries, err := s.progress.ListBySession(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	if entries == nil {
		entries = []progress.Entry{}
	}
	return &WorkoutProgress{Session: session, Entries: entries}, nil
}

func (s *ContextService) Dashboard(ctx context.Context, userID uuid.UUID) (_ *progress.Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mcp.dashboard")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	today := s.now().In(s.loc)
	return s.progress.Dashboard(ctx, userID, sessions.WeekStart(today, s.loc), today)
}
