package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplanner/internal/plan"
	"github.com/2beens/fitplanner/internal/profile"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	ListWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) ([]Session, error)
	CreateWeek(ctx context.Context, nw NewWeek) ([]Session, error)
	ReplaceWeek(ctx context.Context, nw NewWeek) ([]Session, error)
	MarkComplete(ctx context.Context, userID, sessionID uuid.UUID, at time.Time) (*Session, error)
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*Session, error)
	LastCompleted(ctx context.Context, userID uuid.UUID) (*Session, error)
}

type profileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
}

type planRequester interface {
	Request(ctx context.Context, p profile.Profile) ([]plan.SessionTemplate, error)
}

type NewServiceParams struct {
	Repo        sessionsRepo
	Profiles    profileGetter
	AIRequester planRequester
	Metrics     *metrics.Manager
	Location    *time.Location
	CacheSizeMB int
	Now         func() time.Time
}

type Service struct {
	repo        sessionsRepo
	profiles    profileGetter
	aiRequester planRequester
	metrics     *metrics.Manager
	loc         *time.Location
	cache       *weekCache
	now         func() time.Time
}

func NewService(params NewServiceParams) *Service {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:        params.Repo,
		profiles:    params.Profiles,
		aiRequester: params.AIRequester,
		metrics:     params.Metrics,
		loc:         loc,
		cache:       newWeekCache(params.CacheSizeMB),
		now:         now,
	}
}

func (s *Service) currentWeekStart() time.Time {
	return WeekStart(s.now(), s.loc)
}

// LoadCurrentWeek returns this week's sessions, ordered by date.
func (s *Service) LoadCurrentWeek(ctx context.Context, userID uuid.UUID) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.loadcurrentweek")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	start := s.currentWeekStart()
	if cached, ok := s.cache.get(userID, start); ok {
		span.SetAttributes(attribute.Bool("cache-hit", true))
		return &Week{Start: start, Sessions: cached}, nil
	}

	sessions, err := s.repo.ListWeek(ctx, userID, start)
	if err != nil {
		return nil, fmt.Errorf("list week %s: %w", start.Format(time.DateOnly), err)
	}
	if len(sessions) > 0 {
		s.cache.set(userID, start, sessions)
	}

	return &Week{Start: start, Sessions: sessions}, nil
}

// GenerateForDayCount returns the existing week unchanged, or stores a
// static plan for the day count. A zero day count uses the profile's
// training days.
func (s *Service) GenerateForDayCount(ctx context.Context, userID uuid.UUID, days int) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.generatefordaycount")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("days", days))

	week, err := s.LoadCurrentWeek(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(week.Sessions) > 0 {
		return week, nil
	}

	p, err := s.optionalProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	params := plan.GenerateParams{DayCount: days}
	if p != nil {
		params.Goal = p.Preferences.Goal
		params.Level = p.Preferences.FitnessLevel
		if days == 0 {
			params.DayCount = p.Preferences.TrainingDays
		}
	}
	params.DayCount = plan.NormalizeDayCount(params.DayCount)

	templates := plan.Generate(params)
	meta := PlanMeta{
		DayCount:    len(templates),
		Method:      MethodStatic,
		Goal:        params.Goal,
		Level:       params.Level,
		GeneratedAt: s.now().UTC(),
	}
	if len(templates) > 0 {
		meta.Difficulty = templates[0].Difficulty
		meta.Duration = templates[0].Duration
	}

	return s.createWeek(ctx, userID, week.Start, meta, templates)
}

// GenerateWithAI returns the existing week unchanged, or stores an AI plan.
func (s *Service) GenerateWithAI(ctx context.Context, userID uuid.UUID) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.generatewithai")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	week, err := s.LoadCurrentWeek(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(week.Sessions) > 0 {
		return week, nil
	}

	templates, meta, err := s.requestAIPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.createWeek(ctx, userID, week.Start, meta, templates)
}

// Regenerate requests a new AI plan and swaps the week's sessions for it.
// The current week is untouched when the request or the store fails.
func (s *Service) Regenerate(ctx context.Context, userID uuid.UUID) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.regenerate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	start := s.currentWeekStart()
	templates, meta, err := s.requestAIPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.ReplaceWeek(ctx, NewWeek{
		UserID:    userID,
		Start:     start,
		Meta:      meta,
		Templates: templates,
	})
	if err != nil {
		return nil, fmt.Errorf("replace week %s: %w", start.Format(time.DateOnly), err)
	}

	s.cache.set(userID, start, sessions)
	s.countPlan("ai_regenerate")
	log.Debugf("week %s regenerated for user %s: %d sessions", start.Format(time.DateOnly), userID, len(sessions))

	return &Week{Start: start, Sessions: sessions, Created: true}, nil
}

func (s *Service) requestAIPlan(ctx context.Context, userID uuid.UUID) ([]plan.SessionTemplate, PlanMeta, error) {
	p, err := s.optionalProfile(ctx, userID)
	if err != nil {
		return nil, PlanMeta{}, err
	}
	if p == nil {
		return nil, PlanMeta{}, ErrNoProfile
	}

	templates, err := s.aiRequester.Request(ctx, *p)
	if err != nil {
		return nil, PlanMeta{}, fmt.Errorf("%w: %w", ErrPlanRequest, err)
	}

	meta := PlanMeta{
		DayCount:    len(templates),
		Method:      MethodAI,
		Goal:        p.Preferences.Goal,
		Level:       p.Preferences.FitnessLevel,
		Difficulty:  p.Preferences.FitnessLevel.Difficulty(),
		Duration:    p.Preferences.FitnessLevel.Duration(),
		GeneratedAt: s.now().UTC(),
	}
	return templates, meta, nil
}

func (s *Service) createWeek(ctx context.Context, userID uuid.UUID, start time.Time, meta PlanMeta, templates []plan.SessionTemplate) (*Week, error) {
	sessions, err := s.repo.CreateWeek(ctx, NewWeek{
		UserID:    userID,
		Start:     start,
		Meta:      meta,
		Templates: templates,
	})
	if err != nil {
		if errors.Is(err, ErrWeekExists) {
			// a concurrent request created the week first
			s.cache.del(userID, start)
			return s.LoadCurrentWeek(ctx, userID)
		}
		return nil, fmt.Errorf("create week %s: %w", start.Format(time.DateOnly), err)
	}

	s.cache.set(userID, start, sessions)
	s.countPlan(string(meta.Method))
	log.Debugf("week %s created for user %s: %d %s sessions", start.Format(time.DateOnly), userID, len(sessions), meta.Method)

	return &Week{Start: start, Sessions: sessions, Created: true}, nil
}

func (s *Service) optionalProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// MarkComplete flags the session as completed. The cached week is updated
// only after the store confirms.
func (s *Service) MarkComplete(ctx context.Context, userID, sessionID uuid.UUID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.markcomplete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	updated, err := s.repo.MarkComplete(ctx, userID, sessionID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("mark session %s complete: %w", sessionID, err)
	}

	s.cache.replaceSession(*updated, WeekStart(updated.Date, time.UTC))
	if s.metrics != nil {
		s.metrics.CounterSessionsCompleted.Inc()
	}

	return updated, nil
}

func (s *Service) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	return s.repo.Get(ctx, userID, sessionID)
}

// TodaySession returns the session dated today, or nil.
func (s *Service) TodaySession(ctx context.Context, userID uuid.UUID) (*Session, error) {
	session, err := s.repo.GetByDate(ctx, userID, CivilDate(s.now(), s.loc))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return session, nil
}

// LastCompleted returns the most recently completed session, or nil.
func (s *Service) LastCompleted(ctx context.Context, userID uuid.UUID) (*Session, error) {
	session, err := s.repo.LastCompleted(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return session, nil
}

func (s *Service) countPlan(method string) {
	if s.metrics != nil {
		s.metrics.CounterPlansGenerated.WithLabelValues(method).Inc()
	}
}
