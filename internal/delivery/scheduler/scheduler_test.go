package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bloodlink/config"
	mockUC "bloodlink/internal/mocks/usecase"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNextRun(t *testing.T) {
	amman, err := time.LoadLocation("Asia/Amman")
	require.NoError(t, err)

	tests := []struct {
		name   string
		now    time.Time
		hour   int
		minute int
		want   time.Time
	}{
		{
			name: "later today",
			now:  time.Date(2024, 3, 10, 1, 0, 0, 0, amman),
			hour: 3, minute: 0,
			want: time.Date(2024, 3, 10, 3, 0, 0, 0, amman),
		},
		{
			name: "already passed rolls to tomorrow",
			now:  time.Date(2024, 3, 10, 6, 0, 0, 0, amman),
			hour: 5, minute: 35,
			want: time.Date(2024, 3, 11, 5, 35, 0, 0, amman),
		},
		{
			name: "exact slot rolls to tomorrow",
			now:  time.Date(2024, 3, 10, 4, 0, 0, 0, amman),
			hour: 4, minute: 0,
			want: time.Date(2024, 3, 11, 4, 0, 0, 0, amman),
		},
		{
			name: "evaluated in the configured zone",
			now:  time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC),
			hour: 3, minute: 0,
			want: time.Date(2024, 3, 11, 3, 0, 0, 0, amman),
		},
		{
			name: "month boundary",
			now:  time.Date(2024, 1, 31, 12, 0, 0, 0, amman),
			hour: 3, minute: 0,
			want: time.Date(2024, 2, 1, 3, 0, 0, 0, amman),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextRun(tt.now, tt.hour, tt.minute, amman)

			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func testConfig(enabled bool) *config.Config {
	return &config.Config{Sweeps: &config.SweepsConfig{
		Enabled:               enabled,
		Timezone:              "Asia/Amman",
		UnverifiedAccountsAt:  "03:00",
		OrphanMessagesAt:      "04:00",
		OrphanNotificationsAt: "05:35",
	}}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewScheduler(t *testing.T) {
	t.Run("parses the daily slots", func(t *testing.T) {
		d, err := NewScheduler(SchedulerParams{
			Lc:      fxtest.NewLifecycle(t),
			Cfg:     testConfig(true),
			Logger:  discardLogger(),
			SweepUC: mockUC.NewMockSweepUsecase(t),
		})
		require.NoError(t, err)

		s := d.(*scheduler)
		require.Len(t, s.jobs, 3)
		assert.Equal(t, usecase.SweepOrphanNotifications, s.jobs[2].name)
		assert.Equal(t, 5, s.jobs[2].hour)
		assert.Equal(t, 35, s.jobs[2].minute)
	})

	t.Run("rejects a malformed slot", func(t *testing.T) {
		cfg := testConfig(true)
		cfg.Sweeps.OrphanMessagesAt = "4am"

		_, err := NewScheduler(SchedulerParams{
			Lc:      fxtest.NewLifecycle(t),
			Cfg:     cfg,
			Logger:  discardLogger(),
			SweepUC: mockUC.NewMockSweepUsecase(t),
		})

		assert.Error(t, err)
	})
}

func TestScheduler_Serve(t *testing.T) {
	t.Run("disabled returns immediately", func(t *testing.T) {
		d, err := NewScheduler(SchedulerParams{
			Lc:      fxtest.NewLifecycle(t),
			Cfg:     testConfig(false),
			Logger:  discardLogger(),
			SweepUC: mockUC.NewMockSweepUsecase(t),
		})
		require.NoError(t, err)

		assert.NoError(t, d.Serve(context.Background()))
	})

	t.Run("runs each sweep when its slot fires and stops cleanly", func(t *testing.T) {
		ran := make(chan string, 2)
		var okOnce, brokenOnce sync.Once

		s := &scheduler{
			enabled:  true,
			location: time.UTC,
			logger:   discardLogger(),
			now:      time.Now,
			after: func(time.Duration) <-chan time.Time {
				return time.After(time.Millisecond)
			},
			jobs: []job{
				{name: "ok", run: func(context.Context) (*usecase.SweepReport, error) {
					okOnce.Do(func() { ran <- "ok" })

					return &usecase.SweepReport{Name: "ok", Deleted: 1}, nil
				}},
				{name: "broken", run: func(context.Context) (*usecase.SweepReport, error) {
					brokenOnce.Do(func() { ran <- "broken" })

					return nil, errors.New("store unavailable")
				}},
			},
		}

		served := make(chan error, 1)
		go func() { served <- s.Serve(context.Background()) }()

		got := []string{<-ran, <-ran}
		assert.ElementsMatch(t, []string{"ok", "broken"}, got)

		require.NoError(t, s.stop(context.Background()))
		assert.NoError(t, <-served)
	})
}
