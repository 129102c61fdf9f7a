package runner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/runner/countdown"
	"github.com/2beens/fitplanner/internal/sessions"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=registry_mocks_test.go -package=runner_test

type sessionStore interface {
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*sessions.Session, error)
	MarkComplete(ctx context.Context, userID, sessionID uuid.UUID) (*sessions.Session, error)
}

type NewRegistryParams struct {
	Sessions sessionStore
	Metrics  *metrics.Manager
	// Alerter raises the rest expiry alert, defaults to speech only.
	Alerter       countdown.Alerter
	TickerFactory countdown.TickerFactory
	Now           func() time.Time
}

// Registry keeps the active runs in memory. A user can only reach their own
// runs and at most one run exists per user and session.
type Registry struct {
	mu        sync.Mutex
	runs      map[uuid.UUID]*Run
	bySession map[runKey]uuid.UUID

	sessions      sessionStore
	metrics       *metrics.Manager
	alerter       countdown.Alerter
	tickerFactory countdown.TickerFactory
	now           func() time.Time
}

type runKey struct {
	userID    uuid.UUID
	sessionID uuid.UUID
}

func NewRegistry(params NewRegistryParams) *Registry {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Registry{
		runs:          make(map[uuid.UUID]*Run),
		bySession:     make(map[runKey]uuid.UUID),
		sessions:      params.Sessions,
		metrics:       params.Metrics,
		alerter:       params.Alerter,
		tickerFactory: params.TickerFactory,
		now:           now,
	}
}

// Open starts a run for the given session, or returns the one already open.
func (r *Registry) Open(ctx context.Context, userID, sessionID uuid.UUID) (_ *Run, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "runner.registry.open")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := runKey{userID: userID, sessionID: sessionID}
	r.mu.Lock()
	if id, ok := r.bySession[key]; ok {
		run := r.runs[id]
		r.mu.Unlock()
		return run, nil
	}
	r.mu.Unlock()

	session, err := r.sessions.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	run := NewRun(NewRunParams{
		ID:           uuid.New(),
		UserID:       userID,
		Session:      *session,
		Completer:    r.sessions,
		NewCountdown: r.newCountdown,
		Now:          r.now,
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.bySession[key]; ok {
		// lost a race with a concurrent open of the same session
		return r.runs[id], nil
	}
	r.runs[run.id] = run
	r.bySession[key] = run.id
	r.updateGaugeLocked()

	log.Debugf("runner: opened run %s for session %s", run.id, sessionID)
	return run, nil
}

func (r *Registry) newCountdown(rest string) *countdown.Countdown {
	opts := []countdown.Option{
		countdown.WithOnComplete(func(countdown.Alert) {
			if r.metrics != nil {
				r.metrics.CounterRestCountdowns.Inc()
			}
		}),
	}
	if r.alerter != nil {
		opts = append(opts, countdown.WithAlerter(r.alerter))
	}
	if r.tickerFactory != nil {
		opts = append(opts, countdown.WithTickerFactory(r.tickerFactory))
	}
	return countdown.New(rest, opts...)
}

// Get returns the run with the given id, if it belongs to the user.
func (r *Registry) Get(userID, runID uuid.UUID) (*Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[runID]
	if !ok || run.userID != userID {
		return nil, ErrRunNotFound
	}
	return run, nil
}

// Close discards the run and stops its countdown.
func (r *Registry) Close(userID, runID uuid.UUID) error {
	r.mu.Lock()
	run, ok := r.runs[runID]
	if !ok || run.userID != userID {
		r.mu.Unlock()
		return ErrRunNotFound
	}
	r.removeLocked(run)
	r.mu.Unlock()

	run.Close()
	return nil
}

// EvictIdle closes runs without activity for longer than maxIdle and
// returns how many were evicted.
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	var stale []*Run
	for _, run := range r.runs {
		if run.idleSince().Before(cutoff) {
			stale = append(stale, run)
		}
	}
	for _, run := range stale {
		r.removeLocked(run)
	}
	r.mu.Unlock()

	for _, run := range stale {
		run.Close()
	}
	if len(stale) > 0 {
		log.Infof("runner: evicted %d idle runs", len(stale))
	}
	return len(stale)
}

// CloseAll is called on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	all := make([]*Run, 0, len(r.runs))
	for _, run := range r.runs {
		all = append(all, run)
	}
	for _, run := range all {
		r.removeLocked(run)
	}
	r.mu.Unlock()

	for _, run := range all {
		run.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func (r *Registry) removeLocked(run *Run) {
	delete(r.runs, run.id)
	delete(r.bySession, runKey{userID: run.userID, sessionID: run.session.ID})
	r.updateGaugeLocked()
}

func (r *Registry) updateGaugeLocked() {
	if r.metrics != nil {
		r.metrics.GaugeActiveRuns.Set(float64(len(r.runs)))
	}
}
