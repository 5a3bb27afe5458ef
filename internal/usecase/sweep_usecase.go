package usecase

import (
	"context"
	"time"
)

// Sweep names.
const (
	SweepUnverifiedAccounts  = "unverified-accounts"
	SweepOrphanMessages      = "orphan-messages"
	SweepOrphanNotifications = "orphan-notifications"
)

// SweepUsecase defines the scheduled bulk cleanups.
type SweepUsecase interface {
	// CleanupUnverifiedAccounts deletes accounts that stayed unverified past the retention window.
	CleanupUnverifiedAccounts(ctx context.Context) (*SweepReport, error)

	// CleanupOrphanMessages deletes messages stored under requests that no longer exist.
	CleanupOrphanMessages(ctx context.Context) (*SweepReport, error)

	// CleanupOrphanNotifications deletes notifications whose request reference is null.
	CleanupOrphanNotifications(ctx context.Context) (*SweepReport, error)
}

// SweepReport summarizes one sweep run.
type SweepReport struct {
	Name     string
	Scanned  int
	Deleted  int
	Failed   int
	Duration time.Duration
}
