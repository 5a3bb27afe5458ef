package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidPushToken is returned by Send when the token is unregistered or malformed.
var ErrInvalidPushToken = errors.New("invalid push token")

// PushMessage is a data-only push payload.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
	// HighPriority asks the transport to wake the device immediately.
	HighPriority bool
}

// PushFailure describes why a single device token was not delivered to.
type PushFailure struct {
	Token   string
	Err     error
	Invalid bool // The token is unregistered or malformed and will never succeed.
}

// PushResult is the per-call outcome of a multicast.
type PushResult struct {
	SuccessCount int
	FailureCount int
	Failures     []PushFailure
}

// InvalidTokens returns the tokens the transport reported as permanently dead.
func (r *PushResult) InvalidTokens() []string {
	var tokens []string
	for _, f := range r.Failures {
		if f.Invalid {
			tokens = append(tokens, f.Token)
		}
	}

	return tokens
}

// PushService defines the interface for device push delivery
type PushService interface {
	// SendMulticast sends one payload to at most constants.MaxMulticastTokens tokens.
	// An error means the whole call failed; per-token failures are reported in the result.
	SendMulticast(ctx context.Context, tokens []string, msg *PushMessage) (*PushResult, error)

	// Send delivers the payload to a single device token.
	Send(ctx context.Context, token string, msg *PushMessage) error
}
