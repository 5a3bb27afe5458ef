package handler

import (
	"net/http"
	"testing"
	"time"

	"bloodlink/internal/domain/entity"
	mockUC "bloodlink/internal/mocks/usecase"
	"bloodlink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const requestDocument = `{
  "value": {
    "name": "projects/p/databases/(default)/documents/requests/r42",
    "createTime": "2024-05-01T10:00:00.5Z",
    "fields": {
      "bloodBankId": {"stringValue": "h1"},
      "bloodBankName": {"stringValue": "Central"},
      "bloodType": {"stringValue": "AB-"},
      "units": {"integerValue": "3"},
      "isUrgent": {"booleanValue": false},
      "hospitalLocation": {"stringValue": "Irbid"}
    }
  }
}`

func TestHookHandler_HandleRequestCreated(t *testing.T) {
	t.Run("dispatches the created request", func(t *testing.T) {
		fanoutUC := mockUC.NewMockFanoutUsecase(t)
		h := NewHookHandler(HookHandlerParams{Logger: discardLogger(), FanoutUC: fanoutUC})

		fanoutUC.EXPECT().
			Dispatch(mock.Anything, mock.MatchedBy(func(r *entity.BloodRequest) bool {
				return r.ID == "r42" && r.BloodType == "AB-" && r.Units == 3 && !r.IsUrgent &&
					r.HospitalLocation == "Irbid" && r.CreatedAt != nil
			}), usecase.FanoutTriggerDocumentHook).
			Return(&usecase.FanoutReport{RequestID: "r42", Completed: true})

		c, rec := newJSONContext(requestDocument)

		require.NoError(t, h.HandleRequestCreated(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other collections are acknowledged without a run", func(t *testing.T) {
		h := NewHookHandler(HookHandlerParams{Logger: discardLogger(), FanoutUC: mockUC.NewMockFanoutUsecase(t)})

		c, rec := newJSONContext(`{"value":{"name":"projects/p/databases/(default)/documents/users/u1","fields":{}}}`)

		require.NoError(t, h.HandleRequestCreated(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unreadable units are rejected", func(t *testing.T) {
		h := NewHookHandler(HookHandlerParams{Logger: discardLogger(), FanoutUC: mockUC.NewMockFanoutUsecase(t)})

		c, rec := newJSONContext(`{"value":{"name":"documents/requests/r1","fields":{"units":{"integerValue":"two"}}}}`)

		require.NoError(t, h.HandleRequestCreated(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRequestFromDocument(t *testing.T) {
	three := 3.0
	stamp := "2024-05-02T08:30:00Z"

	var event DocumentEvent
	event.Value.Name = "projects/p/databases/(default)/documents/requests/r7"
	event.Value.CreateTime = "2024-05-01T10:00:00Z"
	event.Value.Fields = map[string]FirestoreValue{
		"units":     {DoubleValue: &three},
		"createdAt": {TimestampValue: &stamp},
	}

	request, err := requestFromDocument(&event)

	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, "r7", request.ID)
	assert.Equal(t, 3, request.Units)
	assert.Equal(t, time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC), request.CreatedAt.UTC())

	half := 1.5
	event.Value.Fields["units"] = FirestoreValue{DoubleValue: &half}

	_, err = requestFromDocument(&event)
	assert.Error(t, err)
}
