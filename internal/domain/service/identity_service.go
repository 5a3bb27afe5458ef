package service

import (
	"context"

	"bloodlink/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidIDToken is returned when a bearer token fails verification.
	ErrInvalidIDToken = errors.New("invalid id token")
	// ErrAccountNotFound is returned when the identity provider has no such user.
	ErrAccountNotFound = errors.New("account not found")
)

// TokenVerifier turns a bearer token into the caller identity.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*entity.Caller, error)
}

// AccountPage is one page of identity provider accounts.
type AccountPage struct {
	Accounts      []*entity.Account
	NextPageToken string // Empty on the last page.
}

// IdentityDirectory exposes the identity provider's account records.
type IdentityDirectory interface {
	// GetAccount returns the current account record, including the email verification flag.
	GetAccount(ctx context.Context, uid string) (*entity.Account, error)

	// SetRoleClaim stores the profile role as a custom token claim.
	SetRoleClaim(ctx context.Context, uid string, role entity.Role) error

	// UpdateDisplayName changes the account display name.
	UpdateDisplayName(ctx context.Context, uid, name string) error

	// DeleteAccount removes the account.
	DeleteAccount(ctx context.Context, uid string) error

	// ListAccounts returns one page of accounts.
	ListAccounts(ctx context.Context, pageSize int, pageToken string) (*AccountPage, error)
}
