// Package scheduler runs the cleanup sweeps once a day at fixed wall-clock times.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bloodlink/config"
	"bloodlink/internal/delivery"
	"bloodlink/internal/errors"
	"bloodlink/internal/usecase"
	"bloodlink/internal/util"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// job is one daily sweep.
type job struct {
	name   string
	hour   int
	minute int
	run    func(ctx context.Context) (*usecase.SweepReport, error)
}

type scheduler struct {
	enabled  bool
	location *time.Location
	jobs     []job
	logger   *slog.Logger

	now   func() time.Time
	after func(d time.Duration) <-chan time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// SchedulerParams holds dependencies for the sweep scheduler
type SchedulerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	SweepUC usecase.SweepUsecase
}

// NewScheduler creates the daily sweep scheduler
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	sweeps := params.Cfg.Sweeps

	location, err := time.LoadLocation(sweeps.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load sweeps timezone %q", sweeps.Timezone)
	}

	jobs := make([]job, 0, 3)
	for _, spec := range []struct {
		name string
		at   string
		run  func(ctx context.Context) (*usecase.SweepReport, error)
	}{
		{usecase.SweepUnverifiedAccounts, sweeps.UnverifiedAccountsAt, params.SweepUC.CleanupUnverifiedAccounts},
		{usecase.SweepOrphanMessages, sweeps.OrphanMessagesAt, params.SweepUC.CleanupOrphanMessages},
		{usecase.SweepOrphanNotifications, sweeps.OrphanNotificationsAt, params.SweepUC.CleanupOrphanNotifications},
	} {
		at, err := time.Parse("15:04", spec.at)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s schedule %q", spec.name, spec.at)
		}
		jobs = append(jobs, job{name: spec.name, hour: at.Hour(), minute: at.Minute(), run: spec.run})
	}

	s := &scheduler{
		enabled:  sweeps.Enabled,
		location: location,
		jobs:     jobs,
		logger:   params.Logger,
		now:      time.Now,
		after:    time.After,
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve blocks until the scheduler is stopped.
func (s *scheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Sweep scheduler disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.mu.Lock()
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()
	defer close(done)

	s.logger.Info("Starting sweep scheduler",
		slog.String("timezone", s.location.String()),
		slog.Int("jobs", len(s.jobs)),
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, j := range s.jobs {
		g.Go(func() error {
			s.loop(ctx, j)

			return nil
		})
	}

	return errors.WithStack(g.Wait())
}

func (s *scheduler) loop(ctx context.Context, j job) {
	for {
		next := nextRun(s.now(), j.hour, j.minute, s.location)
		s.logger.Debug("Sweep scheduled",
			slog.String("sweep", j.name),
			slog.Time("next_run", next),
		)

		select {
		case <-ctx.Done():
			return
		case <-s.after(next.Sub(s.now())):
			s.runOnce(ctx, j)
		}
	}
}

// runOnce runs one sweep. A failing sweep is logged and retried at its next slot.
func (s *scheduler) runOnce(ctx context.Context, j job) {
	report, err := j.run(ctx)
	if err != nil {
		s.logger.Error("Sweep failed",
			slog.String("sweep", j.name),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("Sweep finished",
		slog.String("sweep", report.Name),
		slog.Int("scanned", report.Scanned),
		slog.Int("deleted", report.Deleted),
		slog.Int("failed", report.Failed),
		slog.String("duration", util.FormatDuration(report.Duration)),
	)
}

func (s *scheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}

	s.logger.Info("Stopping sweep scheduler")
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// nextRun returns the first hour:minute wall-clock time in loc strictly after now.
func nextRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}

	return next
}
