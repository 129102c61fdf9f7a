// Package countdown implements the rest interval timer shown between sets.
package countdown

import (
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitplanner/internal/plan"
)

type State int

const (
	Idle State = iota
	Running
	Paused
	Expired
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for _, st := range []State{Idle, Running, Paused, Expired} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown countdown state: %q", text)
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

type Option func(*Countdown)

func WithTickerFactory(f TickerFactory) Option {
	return func(c *Countdown) { c.newTicker = f }
}

func WithAlerter(a Alerter) Option {
	return func(c *Countdown) { c.alerter = a }
}

// WithOnComplete sets the callback invoked once per expiry, from the ticking
// goroutine. It must not call back into the countdown.
func WithOnComplete(f func(Alert)) Option {
	return func(c *Countdown) { c.onComplete = f }
}

// Countdown ticks once per second while running. Reaching zero moves it to
// Expired, raises the alert and calls the completion callback.
type Countdown struct {
	mu         sync.Mutex
	rest       string
	total      int
	remaining  int
	state      State
	gen        int
	ticker     Ticker
	stop       chan struct{}
	lastAlert  *Alert
	newTicker  TickerFactory
	alerter    Alerter
	onComplete func(Alert)
	closed     bool
	wg         sync.WaitGroup
}

// New builds an idle countdown for a "<n>s" rest string.
func New(rest string, opts ...Option) *Countdown {
	total := plan.RestSeconds(rest)
	if total <= 0 {
		total = plan.DefaultRestSeconds
	}
	c := &Countdown{
		rest:      rest,
		total:     total,
		remaining: total,
		state:     Idle,
		newTicker: NewTimeTicker,
		alerter:   Chain(SpeechAlerter{Text: ExpiredSpeechText, Lang: ExpiredSpeechLang}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start moves idle or paused countdowns to running. It is a no-op when
// already running, expired or closed.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || (c.state != Idle && c.state != Paused) {
		return
	}

	c.state = Running
	c.gen++
	c.ticker = c.newTicker(time.Second)
	c.stop = make(chan struct{})

	c.wg.Add(1)
	go c.loop(c.gen, c.ticker, c.stop)
}

// Pause keeps the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Running {
		return
	}
	c.state = Paused
	c.haltLocked()
}

// Reset returns to idle at the full duration from any state.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.haltLocked()
	c.state = Idle
	c.remaining = c.total
	c.lastAlert = nil
}

// Close stops ticking and waits for the ticking goroutine to exit. A closed
// countdown never starts again. It must not be called from the completion
// callback.
func (c *Countdown) Close() {
	c.mu.Lock()
	c.closed = true
	if c.state == Running {
		c.state = Paused
	}
	c.haltLocked()
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Countdown) haltLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.gen++
}

func (c *Countdown) loop(gen int, ticker Ticker, stop <-chan struct{}) {
	defer c.wg.Done()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			if done := c.tick(gen); done {
				return
			}
		}
	}
}

func (c *Countdown) tick(gen int) bool {
	c.mu.Lock()
	if gen != c.gen || c.state != Running {
		c.mu.Unlock()
		return true
	}

	c.remaining--
	if c.remaining > 0 {
		c.mu.Unlock()
		return false
	}

	c.remaining = 0
	c.state = Expired
	c.haltLocked()
	alerter, onComplete := c.alerter, c.onComplete
	c.mu.Unlock()

	alert := Alert{Kind: AlertSilent}
	if alerter != nil {
		if a, err := alerter.Alert(); err == nil {
			alert = a
		}
	}

	c.mu.Lock()
	c.lastAlert = &alert
	c.mu.Unlock()

	if onComplete != nil {
		onComplete(alert)
	}
	return true
}

func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

type Snapshot struct {
	Rest      string `json:"rest"`
	State     State  `json:"state"`
	Total     int    `json:"total"`
	Remaining int    `json:"remaining"`
	Display   string `json:"display"`
	Alert     *Alert `json:"alert,omitempty"`
}

func (c *Countdown) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Rest:      c.rest,
		State:     c.state,
		Total:     c.total,
		Remaining: c.remaining,
		Display:   plan.FormatClock(c.remaining),
		Alert:     c.lastAlert,
	}
}
