package scheduler

import (
	"context"
	"fmt"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/scope"
)

// Scheduler periodically queues runs of scheduled reports that are due.
type Scheduler struct {
	l        log.Logger
	uc       report.UseCase
	interval time.Duration
	now      func() time.Time
}

func New(l log.Logger, uc report.UseCase, interval time.Duration) (*Scheduler, error) {
	if uc == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be greater than 0")
	}
	return &Scheduler{l: l, uc: uc, interval: interval, now: time.Now}, nil
}

// Start ticks in the background until ctx is done. The first tick happens
// immediately so reports missed while the service was down catch up.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.tick(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
	s.l.Infof(ctx, "Report scheduler started, interval %s", s.interval)
}

func (s *Scheduler) tick(ctx context.Context) {
	ctx = scope.SetScopeToContext(ctx, model.SystemScope())
	n, err := s.uc.RunDue(ctx, s.now())
	if err != nil {
		s.l.Errorf(ctx, "report.delivery.scheduler.tick: RunDue failed: %v", err)
		return
	}
	if n > 0 {
		s.l.Infof(ctx, "report.delivery.scheduler.tick: Queued %d scheduled runs", n)
	}
}
