package impl

import (
	"context"
	"testing"
	"time"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	mockRepo "bloodlink/internal/mocks/repository"
	mockSvc "bloodlink/internal/mocks/service"
	mockUC "bloodlink/internal/mocks/usecase"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type requestFixture struct {
	srv              *requestService
	profileRepo      *mockRepo.MockProfileRepository
	requestRepo      *mockRepo.MockRequestRepository
	messageRepo      *mockRepo.MockMessageRepository
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockEventPublisher
	fanout           *mockUC.MockFanoutUsecase
	qrcode           *mockSvc.MockQRCodeService
}

func newRequestFixture(t *testing.T, inline bool) *requestFixture {
	t.Helper()

	f := &requestFixture{
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		requestRepo:      mockRepo.NewMockRequestRepository(t),
		messageRepo:      mockRepo.NewMockMessageRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		fanout:           mockUC.NewMockFanoutUsecase(t),
		qrcode:           mockSvc.NewMockQRCodeService(t),
	}

	f.srv = NewRequestService(RequestServiceParams{
		Config:           &config.Config{Fanout: &config.FanoutConfig{Inline: inline}},
		ProfileRepo:      f.profileRepo,
		RequestRepo:      f.requestRepo,
		MessageRepo:      f.messageRepo,
		NotificationRepo: f.notificationRepo,
		Publisher:        f.publisher,
		Fanout:           f.fanout,
		QRCode:           f.qrcode,
		Logger:           testLogger(),
	}).(*requestService)
	f.srv.now = func() time.Time { return fixedNow }

	return f
}

func validCreateInput() *usecase.CreateRequestInput {
	return &usecase.CreateRequestInput{
		RequestID:        " r1 ",
		BloodBankName:    "Central Bank",
		BloodType:        "o+",
		Units:            "2",
		IsUrgent:         true,
		HospitalLocation: "Amman",
		Details:          "  ",
	}
}

func TestRequestService_CreateRequest(t *testing.T) {
	t.Run("stores, announces and fans out inline", func(t *testing.T) {
		f := newRequestFixture(t, true)
		ctx := deliverycontext.WithRequestID(context.Background(), "req-123")

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
		f.requestRepo.EXPECT().
			Create(ctx, &entity.BloodRequest{
				ID:               "r1",
				BloodBankID:      "h1",
				BloodBankName:    "Central Bank",
				BloodType:        "O+",
				Units:            2,
				IsUrgent:         true,
				HospitalLocation: "Amman",
			}).
			Return(nil).Once()
		f.publisher.EXPECT().
			PublishRequestCreated(ctx, mock.MatchedBy(func(event *service.RequestCreatedEvent) bool {
				return event.TraceID == "req-123" &&
					event.EventID != "" &&
					event.Request.RequestID == "r1" &&
					event.Request.BloodType == "O+" &&
					event.Request.CreatedAtMillis == fixedNow.UnixMilli()
			})).
			Return(nil).Once()
		f.fanout.EXPECT().
			Dispatch(mock.Anything, mock.MatchedBy(func(r *entity.BloodRequest) bool { return r.ID == "r1" }), usecase.FanoutTriggerInline).
			RunAndReturn(func(dispatchCtx context.Context, r *entity.BloodRequest, _ usecase.FanoutTrigger) *usecase.FanoutReport {
				assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(dispatchCtx))
				assert.NoError(t, dispatchCtx.Err())

				return &usecase.FanoutReport{RequestID: r.ID, Completed: true}
			}).Once()

		out, err := f.srv.CreateRequest(ctx, hospitalCaller, validCreateInput())

		require.NoError(t, err)
		assert.True(t, out.OK)
		assert.Equal(t, "Blood request created.", out.Message)
		assert.Equal(t, "r1", out.RequestID)
	})

	t.Run("inline fan-out outlives a cancelled caller", func(t *testing.T) {
		f := newRequestFixture(t, true)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
		f.requestRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		f.publisher.EXPECT().PublishRequestCreated(ctx, mock.Anything).Return(nil).Once()
		f.fanout.EXPECT().
			Dispatch(mock.Anything, mock.Anything, usecase.FanoutTriggerInline).
			RunAndReturn(func(dispatchCtx context.Context, r *entity.BloodRequest, _ usecase.FanoutTrigger) *usecase.FanoutReport {
				assert.NoError(t, dispatchCtx.Err())

				return &usecase.FanoutReport{RequestID: r.ID, Completed: true}
			}).Once()

		out, err := f.srv.CreateRequest(ctx, hospitalCaller, validCreateInput())

		require.NoError(t, err)
		assert.True(t, out.OK)
	})

	t.Run("publish failure does not fail the call", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
		f.requestRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		f.publisher.EXPECT().PublishRequestCreated(ctx, mock.Anything).Return(errors.New("topic missing")).Once()

		out, err := f.srv.CreateRequest(ctx, hospitalCaller, validCreateInput())

		require.NoError(t, err)
		assert.True(t, out.OK)
		f.fanout.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("donor callers are refused before any write", func(t *testing.T) {
		f := newRequestFixture(t, true)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "d1").Return(donorProfile("d1", "O+", "tok"), nil).Once()

		_, err := f.srv.CreateRequest(ctx, donorCaller, validCreateInput())

		require.ErrorIs(t, err, domainerrors.ErrHospitalOnlyCreate)
		assert.Equal(t, domainerrors.KindPermissionDenied, domainerrors.KindOf(err))
		f.requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("callers without a profile are refused", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(nil, repository.ErrProfileNotFound).Once()

		_, err := f.srv.CreateRequest(ctx, hospitalCaller, validCreateInput())

		require.ErrorIs(t, err, domainerrors.ErrHospitalOnlyCreate)
	})

	t.Run("anonymous callers", func(t *testing.T) {
		f := newRequestFixture(t, false)

		_, err := f.srv.CreateRequest(context.Background(), nil, validCreateInput())

		require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("input validation", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(in *usecase.CreateRequestInput)
			message string
		}{
			{"missing id", func(in *usecase.CreateRequestInput) { in.RequestID = "" }, "requestId is required."},
			{"nested id", func(in *usecase.CreateRequestInput) { in.RequestID = "a/b/c" }, "requestId is not a valid id."},
			{"dot id", func(in *usecase.CreateRequestInput) { in.RequestID = ".." }, "requestId is not a valid id."},
			{"missing bank name", func(in *usecase.CreateRequestInput) { in.BloodBankName = " " }, "bloodBankName is required."},
			{"unknown blood type", func(in *usecase.CreateRequestInput) { in.BloodType = "C+" }, domainerrors.ErrInvalidBloodType.Message()},
			{"zero units", func(in *usecase.CreateRequestInput) { in.Units = 0 }, "units must be a positive number"},
			{"non numeric units", func(in *usecase.CreateRequestInput) { in.Units = "two" }, "units must be a positive number"},
			{"missing location", func(in *usecase.CreateRequestInput) { in.HospitalLocation = "" }, "hospitalLocation is required."},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newRequestFixture(t, false)
				ctx := context.Background()
				f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()

				input := validCreateInput()
				tt.mutate(input)

				_, err := f.srv.CreateRequest(ctx, hospitalCaller, input)

				require.Error(t, err)
				assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
				assert.Equal(t, tt.message, err.Error())
			})
		}
	})
}

func TestRequestService_ListRequests(t *testing.T) {
	tests := []struct {
		name     string
		input    *usecase.ListRequestsInput
		wantPage entity.RequestPage
		returned int
		wantMore bool
	}{
		{"defaults", nil, entity.RequestPage{Limit: 50}, 3, false},
		{"clamped", &usecase.ListRequestsInput{Limit: 500, LastRequestID: " r9 "}, entity.RequestPage{Limit: 100, AfterID: "r9"}, 100, true},
		{"exact page", &usecase.ListRequestsInput{Limit: 2}, entity.RequestPage{Limit: 2}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRequestFixture(t, false)
			ctx := context.Background()

			requests := make([]*entity.BloodRequest, tt.returned)
			for i := range requests {
				requests[i] = sampleRequest()
			}
			f.requestRepo.EXPECT().List(ctx, tt.wantPage).Return(requests, nil).Once()

			out, err := f.srv.ListRequests(ctx, donorCaller, tt.input)

			require.NoError(t, err)
			assert.Len(t, out.Requests, tt.returned)
			assert.Equal(t, tt.wantMore, out.HasMore)
		})
	}
}

func TestRequestService_ListOwnRequests(t *testing.T) {
	t.Run("hospital sees its requests", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
		f.requestRepo.EXPECT().ListByOwner(ctx, "h1").Return([]*entity.BloodRequest{sampleRequest()}, nil).Once()

		out, err := f.srv.ListOwnRequests(ctx, hospitalCaller)

		require.NoError(t, err)
		assert.Equal(t, 1, out.Count)
		assert.Equal(t, "r1", out.Requests[0].ID)
	})

	t.Run("donor is refused", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "d1").Return(donorProfile("d1", "A+", ""), nil).Once()

		_, err := f.srv.ListOwnRequests(ctx, donorCaller)

		require.ErrorIs(t, err, domainerrors.ErrHospitalOnlyOwned)
	})

	t.Run("missing profile", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(nil, repository.ErrProfileNotFound).Once()

		_, err := f.srv.ListOwnRequests(ctx, hospitalCaller)

		require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})
}

func TestRequestService_DeleteRequest(t *testing.T) {
	t.Run("cascades through the index", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
		f.requestRepo.EXPECT().FindByID(ctx, "r1").Return(sampleRequest(), nil).Once()
		f.notificationRepo.EXPECT().DeleteByRequest(ctx, "r1").Return(3, nil).Once()
		f.messageRepo.EXPECT().DeleteByRequest(ctx, "r1").Return(4, nil).Once()
		f.requestRepo.EXPECT().Delete(ctx, "r1").Return(nil).Once()

		out, err := f.srv.DeleteRequest(ctx, hospitalCaller, "r1")

		require.NoError(t, err)
		assert.Equal(t, "Request deleted.", out.Message)
		assert.Equal(t, 3, out.NotificationsDeleted)
		assert.Equal(t, 4, out.MessagesDeleted)
	})

	t.Run("falls back to the owner scan when the index is missing", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
		f.requestRepo.EXPECT().FindByID(ctx, "r1").Return(sampleRequest(), nil).Once()
		f.notificationRepo.EXPECT().DeleteByRequest(ctx, "r1").
			Return(0, errors.Wrap(repository.ErrIndexUnavailable, "collection group query")).Once()
		f.notificationRepo.EXPECT().ListOwnerIDs(ctx).Return([]string{"d1", "d2"}, nil).Once()
		f.notificationRepo.EXPECT().DeleteByRequestForUser(ctx, "d1", "r1").Return(1, nil).Once()
		f.notificationRepo.EXPECT().DeleteByRequestForUser(ctx, "d2", "r1").Return(2, nil).Once()
		f.messageRepo.EXPECT().DeleteByRequest(ctx, "r1").Return(0, nil).Once()
		f.requestRepo.EXPECT().Delete(ctx, "r1").Return(nil).Once()

		out, err := f.srv.DeleteRequest(ctx, hospitalCaller, "r1")

		require.NoError(t, err)
		assert.Equal(t, 3, out.NotificationsDeleted)
	})

	t.Run("cleanup failures do not keep the request", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
		f.requestRepo.EXPECT().FindByID(ctx, "r1").Return(sampleRequest(), nil).Once()
		f.notificationRepo.EXPECT().DeleteByRequest(ctx, "r1").Return(0, errors.New("unavailable")).Once()
		f.messageRepo.EXPECT().DeleteByRequest(ctx, "r1").Return(2, errors.New("partial")).Once()
		f.requestRepo.EXPECT().Delete(ctx, "r1").Return(nil).Once()

		out, err := f.srv.DeleteRequest(ctx, hospitalCaller, "r1")

		require.NoError(t, err)
		assert.Zero(t, out.NotificationsDeleted)
		assert.Equal(t, 2, out.MessagesDeleted)
	})

	t.Run("only the owner may delete", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()
		other := &entity.Caller{UID: "h2"}

		f.profileRepo.EXPECT().FindByID(ctx, "h2").Return(hospitalProfile("h2"), nil).Once()
		f.requestRepo.EXPECT().FindByID(ctx, "r1").Return(sampleRequest(), nil).Once()

		_, err := f.srv.DeleteRequest(ctx, other, "r1")

		require.ErrorIs(t, err, domainerrors.ErrNotRequestOwner)
		f.requestRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("donors may not delete", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "d1").Return(donorProfile("d1", "O+", ""), nil).Once()

		_, err := f.srv.DeleteRequest(ctx, donorCaller, "r1")

		require.ErrorIs(t, err, domainerrors.ErrHospitalOnlyDelete)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
		f.requestRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrRequestNotFound).Once()

		_, err := f.srv.DeleteRequest(ctx, hospitalCaller, "missing")

		require.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
	})

	t.Run("blank id", func(t *testing.T) {
		f := newRequestFixture(t, false)

		_, err := f.srv.DeleteRequest(context.Background(), hospitalCaller, "  ")

		require.Error(t, err)
		assert.Equal(t, "requestId is required.", err.Error())
	})
}

func TestRequestService_GetRequestQRCode(t *testing.T) {
	t.Run("owner receives the png", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
		f.requestRepo.EXPECT().FindByID(ctx, "r1").Return(sampleRequest(), nil).Once()
		f.qrcode.EXPECT().GenerateRequestQR("r1").Return([]byte("png"), nil).Once()

		png, err := f.srv.GetRequestQRCode(ctx, hospitalCaller, "r1")

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("other hospitals are refused", func(t *testing.T) {
		f := newRequestFixture(t, false)
		ctx := context.Background()

		f.profileRepo.EXPECT().FindByID(ctx, "h2").Return(hospitalProfile("h2"), nil).Once()
		f.requestRepo.EXPECT().FindByID(ctx, "r1").Return(sampleRequest(), nil).Once()

		_, err := f.srv.GetRequestQRCode(ctx, &entity.Caller{UID: "h2"}, "r1")

		require.ErrorIs(t, err, domainerrors.ErrNotRequestOwnerView)
	})
}
