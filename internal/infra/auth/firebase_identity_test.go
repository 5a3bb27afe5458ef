package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/service"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthClient struct {
	authClient

	token      *fbauth.Token
	verifyErr  error
	claims     map[string]interface{}
	claimsUID  string
	deleteErr  error
	deletedUID string
}

func (f *fakeAuthClient) VerifyIDToken(_ context.Context, _ string) (*fbauth.Token, error) {
	return f.token, f.verifyErr
}

func (f *fakeAuthClient) SetCustomUserClaims(_ context.Context, uid string, claims map[string]interface{}) error {
	f.claimsUID = uid
	f.claims = claims

	return nil
}

func (f *fakeAuthClient) DeleteUser(_ context.Context, uid string) error {
	f.deletedUID = uid

	return f.deleteErr
}

func newTestIdentity(client authClient) *FirebaseIdentity {
	return &FirebaseIdentity{client: client, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestVerifyIDToken(t *testing.T) {
	client := &fakeAuthClient{token: &fbauth.Token{
		UID:    "u1",
		Claims: map[string]interface{}{"email": "a@b.c", "email_verified": true},
	}}

	caller, err := newTestIdentity(client).VerifyIDToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, &entity.Caller{UID: "u1", Email: "a@b.c", EmailVerified: true}, caller)
}

func TestVerifyIDToken_Invalid(t *testing.T) {
	identity := newTestIdentity(&fakeAuthClient{verifyErr: errors.New("expired")})

	_, err := identity.VerifyIDToken(context.Background(), "tok")
	assert.ErrorIs(t, err, service.ErrInvalidIDToken)

	_, err = identity.VerifyIDToken(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrInvalidIDToken)
}

func TestSetRoleClaim(t *testing.T) {
	client := &fakeAuthClient{}

	require.NoError(t, newTestIdentity(client).SetRoleClaim(context.Background(), "u1", entity.RoleHospital))
	assert.Equal(t, "u1", client.claimsUID)
	assert.Equal(t, map[string]interface{}{"role": "hospital"}, client.claims)
}

func TestDeleteAccount_PropagatesFailure(t *testing.T) {
	client := &fakeAuthClient{deleteErr: errors.New("backend down")}

	err := newTestIdentity(client).DeleteAccount(context.Background(), "u1")
	assert.Error(t, err)
	assert.Equal(t, "u1", client.deletedUID)
}

func TestToAccount(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	record := &fbauth.UserRecord{
		UserInfo:      &fbauth.UserInfo{UID: "u1", Email: "a@b.c", DisplayName: "Dana"},
		EmailVerified: true,
		UserMetadata:  &fbauth.UserMetadata{CreationTimestamp: created.UnixMilli()},
	}

	account := toAccount(record)
	assert.Equal(t, "u1", account.UID)
	assert.Equal(t, "a@b.c", account.Email)
	assert.Equal(t, "Dana", account.DisplayName)
	assert.True(t, account.EmailVerified)
	assert.True(t, created.Equal(account.CreatedAt))
}

func TestToAccount_MissingMetadata(t *testing.T) {
	account := toAccount(&fbauth.UserRecord{UserInfo: &fbauth.UserInfo{UID: "u1"}})
	assert.True(t, account.CreatedAt.IsZero())
	assert.False(t, account.EmailVerified)
}
