// Package runner executes one workout session: per exercise set progress,
// the rest countdown between sets and the final save.
package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/fitplanner/internal/plan"
	"github.com/2beens/fitplanner/internal/runner/countdown"
	"github.com/2beens/fitplanner/internal/sessions"
	"github.com/2beens/fitplanner/pkg"
)

var (
	ErrNothingCompleted = errors.New("complete at least one exercise before saving")
	ErrExerciseIndex    = errors.New("exercise index out of range")
	ErrNoActiveRest     = errors.New("no active rest countdown")
	ErrRunClosed        = errors.New("run closed")
	ErrRunNotFound      = errors.New("run not found")
)

const (
	CelebrationMessage   = "🎉 Parabéns! Treino completo!"
	NothingCompletedText = "Complete pelo menos um exercício antes de salvar!"
)

type ExerciseStatus string

const (
	StatusPending    ExerciseStatus = "pending"
	StatusInProgress ExerciseStatus = "in-progress"
	StatusDone       ExerciseStatus = "done"
)

// ExerciseProgress is the in-memory progress of one exercise. It is never
// persisted.
type ExerciseProgress struct {
	Index      int    `json:"index"`
	Weight     string `json:"weight"`
	Completed  bool   `json:"completed"`
	CurrentSet int    `json:"currentSet"`
}

func (p ExerciseProgress) Status() ExerciseStatus {
	switch {
	case p.Completed:
		return StatusDone
	case p.CurrentSet > 1:
		return StatusInProgress
	default:
		return StatusPending
	}
}

type completer interface {
	MarkComplete(ctx context.Context, userID, sessionID uuid.UUID) (*sessions.Session, error)
}

// CountdownFactory builds the rest countdown of a set transition.
type CountdownFactory func(rest string) *countdown.Countdown

type NewRunParams struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Session      sessions.Session
	Completer    completer
	NewCountdown CountdownFactory
	Now          func() time.Time
}

// Run is one active workout session of a user.
type Run struct {
	mu           sync.Mutex
	id           uuid.UUID
	userID       uuid.UUID
	session      sessions.Session
	progress     []ExerciseProgress
	rest         *countdown.Countdown
	restExercise int
	celebrated   bool
	saved        bool
	closed       bool
	lastActivity time.Time

	completer    completer
	newCountdown CountdownFactory
	now          func() time.Time
}

func NewRun(params NewRunParams) *Run {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	newCountdown := params.NewCountdown
	if newCountdown == nil {
		newCountdown = func(rest string) *countdown.Countdown {
			return countdown.New(rest)
		}
	}

	progress := make([]ExerciseProgress, len(params.Session.Exercises))
	for i := range params.Session.Exercises {
		progress[i] = ExerciseProgress{
			Index:      i,
			CurrentSet: 1,
		}
	}

	return &Run{
		id:           params.ID,
		userID:       params.UserID,
		session:      params.Session,
		progress:     progress,
		restExercise: -1,
		completer:    params.Completer,
		newCountdown: newCountdown,
		now:          now,
		lastActivity: now(),
	}
}

func (r *Run) ID() uuid.UUID     { return r.id }
func (r *Run) UserID() uuid.UUID { return r.userID }

// Transition is the outcome of a set mark.
type Transition struct {
	Exercise    ExerciseProgress `json:"exercise"`
	Status      ExerciseStatus   `json:"status"`
	Percentage  float64          `json:"percentage"`
	RestStarted bool             `json:"restStarted"`
	Notice      *pkg.Notice      `json:"notice,omitempty"`
}

// CompleteSet marks one set of exercise i done. Crossing the target set
// count completes the exercise; otherwise a declared rest starts a fresh
// countdown replacing the active one. Done exercises ignore further marks.
func (r *Run) CompleteSet(i int) (Transition, error) {
	r.mu.Lock()

	if err := r.checkLocked(i); err != nil {
		r.mu.Unlock()
		return Transition{}, err
	}
	r.lastActivity = r.now()

	p := &r.progress[i]
	if p.Completed {
		t := r.transitionLocked(i)
		r.mu.Unlock()
		return t, nil
	}

	ex := r.session.Exercises[i]
	sets := ex.Sets
	if sets < 1 {
		sets = 1
	}

	var (
		replaced    *countdown.Countdown
		restStarted bool
	)
	p.CurrentSet++
	if p.CurrentSet > sets {
		p.Completed = true
	} else if strings.TrimSpace(ex.Rest) != "" {
		replaced = r.rest
		r.rest = r.newCountdown(ex.Rest)
		r.restExercise = i
		r.rest.Start()
		restStarted = true
	}

	t := r.transitionLocked(i)
	t.RestStarted = restStarted
	if t.Percentage >= 100 && !r.celebrated {
		r.celebrated = true
		t.Notice = &pkg.Notice{Title: CelebrationMessage, Variant: pkg.NoticeSuccess}
	}
	r.mu.Unlock()

	if replaced != nil {
		replaced.Close()
	}
	return t, nil
}

// Reset returns exercise i to pending and re-arms the celebration.
func (r *Run) Reset(i int) (Transition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkLocked(i); err != nil {
		return Transition{}, err
	}
	r.lastActivity = r.now()

	r.progress[i].Completed = false
	r.progress[i].CurrentSet = 1
	t := r.transitionLocked(i)
	if t.Percentage < 100 {
		r.celebrated = false
	}
	return t, nil
}

// SetWeight stores the free-text load of exercise i.
func (r *Run) SetWeight(i int, weight string) (ExerciseProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkLocked(i); err != nil {
		return ExerciseProgress{}, err
	}
	r.lastActivity = r.now()

	r.progress[i].Weight = strings.TrimSpace(weight)
	return r.progress[i], nil
}

func (r *Run) checkLocked(i int) error {
	if r.closed {
		return ErrRunClosed
	}
	if i < 0 || i >= len(r.progress) {
		return fmt.Errorf("%w: %d", ErrExerciseIndex, i)
	}
	return nil
}

func (r *Run) transitionLocked(i int) Transition {
	return Transition{
		Exercise:   r.progress[i],
		Status:     r.progress[i].Status(),
		Percentage: r.percentageLocked(),
	}
}

func (r *Run) completedCountLocked() int {
	done := 0
	for _, p := range r.progress {
		if p.Completed {
			done++
		}
	}
	return done
}

func (r *Run) percentageLocked() float64 {
	if len(r.progress) == 0 {
		return 0
	}
	return float64(r.completedCountLocked()) / float64(len(r.progress)) * 100
}

func (r *Run) Percentage() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.percentageLocked()
}

// Rest controls act on the countdown of the latest set transition.

func (r *Run) StartRest() (countdown.Snapshot, error) {
	return r.withRest(func(c *countdown.Countdown) { c.Start() })
}

func (r *Run) PauseRest() (countdown.Snapshot, error) {
	return r.withRest(func(c *countdown.Countdown) { c.Pause() })
}

func (r *Run) ResetRest() (countdown.Snapshot, error) {
	return r.withRest(func(c *countdown.Countdown) { c.Reset() })
}

func (r *Run) withRest(f func(c *countdown.Countdown)) (countdown.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return countdown.Snapshot{}, ErrRunClosed
	}
	if r.rest == nil {
		return countdown.Snapshot{}, ErrNoActiveRest
	}
	r.lastActivity = r.now()
	f(r.rest)
	return r.rest.Snapshot(), nil
}

type SaveResult struct {
	Completed int              `json:"completed"`
	Session   sessions.Session `json:"session"`
	Notice    pkg.Notice       `json:"notice"`
}

// Save marks the session complete through the store. It is rejected
// without a store call when no exercise is done.
func (r *Run) Save(ctx context.Context) (*SaveResult, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRunClosed
	}
	done := r.completedCountLocked()
	r.lastActivity = r.now()
	userID, sessionID := r.userID, r.session.ID
	r.mu.Unlock()

	if done == 0 {
		return nil, ErrNothingCompleted
	}

	updated, err := r.completer.MarkComplete(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.saved = true
	r.session.IsCompleted = updated.IsCompleted
	r.session.CompletedAt = updated.CompletedAt
	r.mu.Unlock()

	return &SaveResult{
		Completed: done,
		Session:   *updated,
		Notice: pkg.Notice{
			Title:   fmt.Sprintf("Treino salvo! %d exercícios concluídos.", done),
			Variant: pkg.NoticeSuccess,
		},
	}, nil
}

// Close releases the rest countdown. Closed runs reject every action.
func (r *Run) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	rest := r.rest
	r.rest = nil
	r.mu.Unlock()

	if rest != nil {
		rest.Close()
	}
}

func (r *Run) idleSince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastActivity
}

type ExerciseView struct {
	plan.Exercise
	ExerciseProgress
	Status ExerciseStatus `json:"status"`
}

type View struct {
	ID             uuid.UUID           `json:"id"`
	SessionID      uuid.UUID           `json:"sessionId"`
	DayName        string              `json:"dayName"`
	Title          string              `json:"title"`
	Exercises      []ExerciseView      `json:"exercises"`
	CompletedCount int                 `json:"completedCount"`
	Total          int                 `json:"total"`
	Percentage     float64             `json:"percentage"`
	Rest           *countdown.Snapshot `json:"rest,omitempty"`
	RestExercise   *int                `json:"restExercise,omitempty"`
	Saved          bool                `json:"saved"`
}

func (r *Run) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := View{
		ID:             r.id,
		SessionID:      r.session.ID,
		DayName:        r.session.DayName,
		Title:          r.session.Title,
		Exercises:      make([]ExerciseView, 0, len(r.progress)),
		CompletedCount: r.completedCountLocked(),
		Total:          len(r.progress),
		Percentage:     r.percentageLocked(),
		Saved:          r.saved,
	}
	for i, p := range r.progress {
		v.Exercises = append(v.Exercises, ExerciseView{
			Exercise:         r.session.Exercises[i],
			ExerciseProgress: p,
			Status:           p.Status(),
		})
	}
	if r.rest != nil {
		snap := r.rest.Snapshot()
		v.Rest = &snap
		idx := r.restExercise
		v.RestExercise = &idx
	}
	return v
}
