package firestoredb

import (
	"testing"
	"time"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestDecideClaim(t *testing.T) {
	lease := 5 * time.Minute
	recent := testNow.Add(-time.Minute)
	expired := testNow.Add(-lease)

	tests := []struct {
		name   string
		record *model.FanoutModel
		want   entity.FanoutClaim
	}{
		{name: "no record", record: nil, want: entity.FanoutClaim{Acquired: true}},
		{name: "empty state", record: &model.FanoutModel{}, want: entity.FanoutClaim{Acquired: true}},
		{name: "pending", record: &model.FanoutModel{State: "pending"}, want: entity.FanoutClaim{Acquired: true, Previous: entity.FanoutPending}},
		{name: "live claim", record: &model.FanoutModel{State: "claimed", ClaimedAt: &recent}, want: entity.FanoutClaim{Previous: entity.FanoutClaimed}},
		{name: "expired claim", record: &model.FanoutModel{State: "claimed", ClaimedAt: &expired}, want: entity.FanoutClaim{Acquired: true, Previous: entity.FanoutClaimed}},
		{name: "claim without time", record: &model.FanoutModel{State: "claimed"}, want: entity.FanoutClaim{Acquired: true, Previous: entity.FanoutClaimed}},
		{name: "completed", record: &model.FanoutModel{State: "completed"}, want: entity.FanoutClaim{Previous: entity.FanoutCompleted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, &tt.want, decideClaim(tt.record, lease, testNow))
		})
	}
}

func TestHoldsClaim(t *testing.T) {
	assert.True(t, holdsClaim(&model.FanoutModel{State: "claimed", ClaimedBy: "run-1"}, "run-1"))
	assert.False(t, holdsClaim(&model.FanoutModel{State: "claimed", ClaimedBy: "run-2"}, "run-1"))
	assert.False(t, holdsClaim(&model.FanoutModel{State: "completed", ClaimedBy: "run-1"}, "run-1"))
	assert.False(t, holdsClaim(nil, "run-1"))
}

func TestRequestMapping(t *testing.T) {
	request := &entity.BloodRequest{
		ID:               "r1",
		BloodBankID:      "h1",
		BloodBankName:    "Central Bank",
		BloodType:        "O+",
		Units:            2,
		IsUrgent:         true,
		Details:          "Ward 4",
		HospitalLocation: "Amman",
	}

	stored := fromRequestDomain(request)
	assert.True(t, stored.CreatedAt.IsZero())
	assert.Nil(t, stored.Fanout)

	stored.CreatedAt = testNow
	stored.Fanout = &model.FanoutModel{State: "completed", CompletedAt: &testNow}

	got := toRequestDomain("r1", stored)
	assert.Equal(t, "O+", got.BloodType.String())
	assert.Equal(t, testNow, *got.CreatedAt)
	assert.Equal(t, entity.FanoutCompleted, got.Fanout.State)
	assert.Equal(t, request.Details, got.Details)
}

func TestNotificationMapping(t *testing.T) {
	requestID := "r1"

	stored := fromNotificationDomain(&entity.Notification{Title: "t", RequestID: &requestID, Read: true})
	assert.True(t, stored.Read)
	assert.True(t, stored.IsRead)

	legacy := toNotificationDomain("d1", "n1", &model.NotificationModel{IsRead: true})
	assert.True(t, legacy.Read)
	assert.Equal(t, "d1", legacy.UserID)
	assert.Nil(t, legacy.CreatedAt)
	assert.Nil(t, legacy.RequestID)
}

func TestMessageMapping(t *testing.T) {
	got := toMessageDomain("r1", "m1", &model.MessageModel{Text: "hi", SenderID: "h1", SenderRole: "hospital", CreatedAt: testNow})

	assert.Equal(t, "r1", got.RequestID)
	assert.Equal(t, entity.RoleHospital, got.SenderRole)
	assert.True(t, got.IsBroadcast())
	assert.Equal(t, testNow, *got.CreatedAt)

	stored := fromMessageDomain(got)
	assert.Equal(t, "", stored.RecipientID)
	assert.Equal(t, testNow, stored.CreatedAt)
}

func TestPendingData(t *testing.T) {
	donor := pendingData(&entity.PendingProfile{
		UID:           "d1",
		Role:          entity.RoleDonor,
		FullName:      "Sara",
		BloodBankName: "ignored",
		Location:      "Irbid",
		CreatedAt:     testNow,
	})
	assert.Equal(t, map[string]any{
		"role":      "donor",
		"location":  "Irbid",
		"createdAt": testNow,
		"fullName":  "Sara",
	}, donor)

	hospital := pendingData(&entity.PendingProfile{Role: entity.RoleHospital, BloodBankName: "Central Bank", Location: "Amman", CreatedAt: testNow})
	assert.Equal(t, "Central Bank", hospital["bloodBankName"])
	assert.NotContains(t, hospital, "fullName")
}

func TestActivation(t *testing.T) {
	pending := &model.PendingProfileModel{
		Role:      "donor",
		FullName:  "Sara",
		BloodType: "B-",
		Location:  "Irbid",
		FCMToken:  "tok",
		CreatedAt: testNow.Add(-time.Hour),
	}
	account := &entity.Account{UID: "d1", Email: "sara@example.com", EmailVerified: true}

	data := activationData(pending, account, testNow)
	assert.Equal(t, "tok", data["fcmToken"])
	assert.Equal(t, true, data["emailVerified"])
	assert.Equal(t, testNow, data["activatedAt"])
	assert.NotContains(t, data, "bloodBankName")
	assert.NotContains(t, data, "medicalFileUrl")

	profile := toActivatedDomain("d1", pending, account, testNow)
	assert.True(t, profile.IsActiveDonor())
	assert.Equal(t, "sara@example.com", profile.Email)
	assert.Equal(t, testNow.Add(-time.Hour), *profile.CreatedAt)
}

func TestStatusClassification(t *testing.T) {
	missingIndex := errors.Wrap(status.Error(codes.FailedPrecondition, "The query requires an index"), "query")
	notFound := errors.Wrap(status.Error(codes.NotFound, "no document"), "get")

	assert.True(t, isMissingIndex(missingIndex))
	assert.False(t, isMissingIndex(notFound))
	assert.True(t, isNotFound(notFound))
	assert.False(t, isNotFound(errors.New("plain")))
}
