package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bloodlink/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFCMClient struct {
	multicast []*messaging.MulticastMessage
	single    []*messaging.Message
	response  *messaging.BatchResponse
	err       error
}

func (f *fakeFCMClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = append(f.multicast, message)

	return f.response, f.err
}

func (f *fakeFCMClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.single = append(f.single, message)

	return "projects/p/messages/1", f.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPushMessage() *service.PushMessage {
	return &service.PushMessage{
		Title:        "Urgent blood request",
		Body:         "Central needs 2 units (O+)",
		Data:         map[string]string{"type": "request", "requestId": "r1"},
		HighPriority: true,
	}
}

func TestSendMulticast_BuildsDataOnlyPayload(t *testing.T) {
	client := &fakeFCMClient{response: &messaging.BatchResponse{
		SuccessCount: 2,
		Responses:    []*messaging.SendResponse{{Success: true}, {Success: true}},
	}}
	svc := newFirebaseService(client, newDiscardLogger())

	result, err := svc.SendMulticast(context.Background(), []string{"tok1", "tok2"}, testPushMessage())
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Empty(t, result.Failures)

	require.Len(t, client.multicast, 1)
	sent := client.multicast[0]
	assert.Nil(t, sent.Notification)
	assert.Equal(t, []string{"tok1", "tok2"}, sent.Tokens)
	assert.Equal(t, "request", sent.Data["type"])
	assert.Equal(t, "Urgent blood request", sent.Data["title"])
	assert.Equal(t, "Central needs 2 units (O+)", sent.Data["body"])
	assert.Equal(t, "high", sent.Android.Priority)
	require.NotNil(t, sent.APNS.Payload.Aps.Badge)
	assert.Equal(t, 1, *sent.APNS.Payload.Aps.Badge)
	assert.Equal(t, "default", sent.APNS.Payload.Aps.Sound)
}

func TestSendMulticast_ReportsPerTokenFailures(t *testing.T) {
	client := &fakeFCMClient{response: &messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true},
			{Error: errors.New("quota exceeded")},
		},
	}}
	svc := newFirebaseService(client, newDiscardLogger())

	result, err := svc.SendMulticast(context.Background(), []string{"tok1", "tok2"}, testPushMessage())
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "tok2", result.Failures[0].Token)
	assert.False(t, result.Failures[0].Invalid)
	assert.Empty(t, result.InvalidTokens())
}

func TestSendMulticast_RejectsOversizedChunk(t *testing.T) {
	svc := newFirebaseService(&fakeFCMClient{}, newDiscardLogger())

	tokens := make([]string, 501)
	_, err := svc.SendMulticast(context.Background(), tokens, testPushMessage())
	assert.Error(t, err)
}

func TestSendMulticast_EmptyTokensIsNoop(t *testing.T) {
	client := &fakeFCMClient{}
	svc := newFirebaseService(client, newDiscardLogger())

	result, err := svc.SendMulticast(context.Background(), nil, testPushMessage())
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Empty(t, client.multicast)
}

func TestSendMulticast_TransportFailure(t *testing.T) {
	client := &fakeFCMClient{err: errors.New("unavailable")}
	svc := newFirebaseService(client, newDiscardLogger())

	_, err := svc.SendMulticast(context.Background(), []string{"tok1"}, testPushMessage())
	assert.Error(t, err)
}

func TestSend_SingleToken(t *testing.T) {
	client := &fakeFCMClient{}
	svc := newFirebaseService(client, newDiscardLogger())

	require.NoError(t, svc.Send(context.Background(), "tok1", testPushMessage()))
	require.Len(t, client.single, 1)
	assert.Equal(t, "tok1", client.single[0].Token)
	assert.Equal(t, "r1", client.single[0].Data["requestId"])
}

func TestIsDeadToken(t *testing.T) {
	assert.False(t, isDeadToken(nil))
	assert.False(t, isDeadToken(errors.New("INVALID_ARGUMENT: message payload too large")))
	assert.False(t, isDeadToken(errors.New("quota exceeded")))
}

func TestSend_PayloadRejectionKeepsToken(t *testing.T) {
	client := &fakeFCMClient{err: errors.New("INVALID_ARGUMENT: data must only contain string values")}
	svc := newFirebaseService(client, newDiscardLogger())

	err := svc.Send(context.Background(), "tok1", testPushMessage())
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidPushToken)
}
