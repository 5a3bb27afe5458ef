// Package auth adapts Firebase Authentication to the identity interfaces of the domain.
package auth

import (
	"context"
	"log/slog"
	"time"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/service"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// roleClaim is the custom token claim holding the profile role.
const roleClaim = "role"

// authClient is the subset of *auth.Client used here.
type authClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
	GetUser(ctx context.Context, uid string) (*fbauth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
	UpdateUser(ctx context.Context, uid string, user *fbauth.UserToUpdate) (*fbauth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	Users(ctx context.Context, nextPageToken string) *fbauth.UserIterator
}

// FirebaseIdentity implements service.TokenVerifier and service.IdentityDirectory.
type FirebaseIdentity struct {
	client authClient
	logger *slog.Logger
}

// NewFirebaseIdentity creates the Firebase Authentication adapter.
func NewFirebaseIdentity(client *fbauth.Client, logger *slog.Logger) *FirebaseIdentity {
	return &FirebaseIdentity{client: client, logger: logger}
}

// NewTokenVerifier exposes the adapter as a token verifier.
func NewTokenVerifier(identity *FirebaseIdentity) service.TokenVerifier {
	return identity
}

// NewIdentityDirectory exposes the adapter as an account directory.
func NewIdentityDirectory(identity *FirebaseIdentity) service.IdentityDirectory {
	return identity
}

// VerifyIDToken checks signature, expiry and revocation-independent claims of a Firebase ID token.
func (f *FirebaseIdentity) VerifyIDToken(ctx context.Context, token string) (*entity.Caller, error) {
	if token == "" {
		return nil, service.ErrInvalidIDToken
	}

	verified, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		f.logger.DebugContext(ctx, "ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrInvalidIDToken, err.Error())
	}

	return callerFromToken(verified), nil
}

// GetAccount returns the current account record.
func (f *FirebaseIdentity) GetAccount(ctx context.Context, uid string) (*entity.Account, error) {
	record, err := f.client.GetUser(ctx, uid)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, service.ErrAccountNotFound
		}

		return nil, errors.Wrapf(err, "failed to get account %s", uid)
	}

	return toAccount(record), nil
}

// SetRoleClaim stores the role as a custom claim.
func (f *FirebaseIdentity) SetRoleClaim(ctx context.Context, uid string, role entity.Role) error {
	if err := f.client.SetCustomUserClaims(ctx, uid, map[string]interface{}{roleClaim: role.String()}); err != nil {
		return errors.Wrapf(err, "failed to set role claim for %s", uid)
	}

	return nil
}

// UpdateDisplayName changes the account display name.
func (f *FirebaseIdentity) UpdateDisplayName(ctx context.Context, uid, name string) error {
	if _, err := f.client.UpdateUser(ctx, uid, (&fbauth.UserToUpdate{}).DisplayName(name)); err != nil {
		return errors.Wrapf(err, "failed to update display name for %s", uid)
	}

	return nil
}

// DeleteAccount removes the account. A missing account counts as deleted.
func (f *FirebaseIdentity) DeleteAccount(ctx context.Context, uid string) error {
	if err := f.client.DeleteUser(ctx, uid); err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil
		}

		return errors.Wrapf(err, "failed to delete account %s", uid)
	}

	return nil
}

// ListAccounts returns one page of accounts.
func (f *FirebaseIdentity) ListAccounts(ctx context.Context, pageSize int, pageToken string) (*service.AccountPage, error) {
	pager := iterator.NewPager(f.client.Users(ctx, ""), pageSize, pageToken)

	var records []*fbauth.ExportedUserRecord
	next, err := pager.NextPage(&records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	page := &service.AccountPage{
		Accounts:      make([]*entity.Account, 0, len(records)),
		NextPageToken: next,
	}
	for _, record := range records {
		if record == nil || record.UserRecord == nil {
			continue
		}
		page.Accounts = append(page.Accounts, toAccount(record.UserRecord))
	}

	return page, nil
}

func callerFromToken(token *fbauth.Token) *entity.Caller {
	caller := &entity.Caller{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		caller.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		caller.EmailVerified = verified
	}

	return caller
}

func toAccount(record *fbauth.UserRecord) *entity.Account {
	account := &entity.Account{EmailVerified: record.EmailVerified}
	if record.UserInfo != nil {
		account.UID = record.UID
		account.Email = record.Email
		account.DisplayName = record.DisplayName
	}
	if record.UserMetadata != nil && record.UserMetadata.CreationTimestamp > 0 {
		account.CreatedAt = time.UnixMilli(record.UserMetadata.CreationTimestamp)
	}

	return account
}
