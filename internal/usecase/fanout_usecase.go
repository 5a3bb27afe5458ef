package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"
)

// FanoutTrigger names the code path that started a fan-out run.
type FanoutTrigger string

const (
	FanoutTriggerInline       FanoutTrigger = "inline"
	FanoutTriggerPubSub       FanoutTrigger = "pubsub"
	FanoutTriggerDocumentHook FanoutTrigger = "document-hook"
)

// FanoutUsecase delivers a new request to the matching donors.
type FanoutUsecase interface {
	// Dispatch writes one notification and one targeted message per matched donor and pushes
	// to their devices. It never fails the caller: the outcome is described by the report.
	Dispatch(ctx context.Context, request *entity.BloodRequest, trigger FanoutTrigger) *FanoutReport
}

// FanoutReport summarizes one dispatcher run.
type FanoutReport struct {
	RequestID            string
	Trigger              FanoutTrigger
	Skipped              bool   // The run made no writes.
	SkipReason           string // Why the run was skipped.
	Retryable            bool   // The delivery should be redelivered: a transient failure, a live claim or failed batches.
	DonorsMatched        int
	NotificationsWritten int
	MessagesWritten      int
	MessagesSuppressed   bool // Targeted messages already existed for the request.
	BatchFailures        int
	TokensTargeted       int
	PushSent             int
	PushFailed           int
	TokensPruned         int
	Completed            bool // The idempotency record was marked completed.
}
