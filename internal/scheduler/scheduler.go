// Package scheduler runs the periodic maintenance jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

type authSessionCleaner interface {
	ScanAndClean(ctx context.Context) int
}

type idleRunEvicter interface {
	EvictIdle(maxIdle time.Duration) int
}

type NewSchedulerParams struct {
	AuthCleaner         authSessionCleaner
	AuthCleanupSchedule string
	Runs                idleRunEvicter
	RunEvictionSchedule string
	RunIdleTimeout      time.Duration
}

type Scheduler struct {
	cron        *cron.Cron
	ctx         context.Context
	cancel      context.CancelFunc
	authCleaner authSessionCleaner
	runs        idleRunEvicter
	runIdle     time.Duration
}

// New registers the auth session cleanup and the idle run eviction jobs.
// Jobs only run after Start.
func New(params NewSchedulerParams) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:        cron.New(),
		ctx:         ctx,
		cancel:      cancel,
		authCleaner: params.AuthCleaner,
		runs:        params.Runs,
		runIdle:     params.RunIdleTimeout,
	}

	if s.authCleaner != nil {
		if err := s.cron.AddFunc(params.AuthCleanupSchedule, s.CleanAuthSessions); err != nil {
			cancel()
			return nil, fmt.Errorf("schedule auth cleanup %q: %w", params.AuthCleanupSchedule, err)
		}
	}
	if s.runs != nil {
		if s.runIdle <= 0 {
			cancel()
			return nil, fmt.Errorf("invalid run idle timeout: %s", s.runIdle)
		}
		if err := s.cron.AddFunc(params.RunEvictionSchedule, s.EvictIdleRuns); err != nil {
			cancel()
			return nil, fmt.Errorf("schedule run eviction %q: %w", params.RunEvictionSchedule, err)
		}
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Debugf("scheduler: started with %d jobs", len(s.cron.Entries()))
}

// Stop stops the cron loop and cancels the context of a running cleanup.
func (s *Scheduler) Stop() {
	s.cancel()
	s.cron.Stop()
}

func (s *Scheduler) CleanAuthSessions() {
	removed := s.authCleaner.ScanAndClean(s.ctx)
	log.Debugf("scheduler: removed %d stale login sessions", removed)
}

func (s *Scheduler) EvictIdleRuns() {
	if evicted := s.runs.EvictIdle(s.runIdle); evicted > 0 {
		log.Infof("scheduler: evicted %d idle workout runs", evicted)
	}
}
