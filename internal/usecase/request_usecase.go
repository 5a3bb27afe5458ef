package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"
)

// Request feed page size bounds.
const (
	DefaultRequestPageSize = 50
	MaxRequestPageSize     = 100
)

// RequestUsecase defines the blood request lifecycle.
type RequestUsecase interface {
	// CreateRequest persists a hospital's request and starts the donor fan-out.
	CreateRequest(ctx context.Context, caller *entity.Caller, input *CreateRequestInput) (*CreateRequestOutput, error)

	// ListRequests returns one page of the request feed, newest first.
	ListRequests(ctx context.Context, caller *entity.Caller, input *ListRequestsInput) (*RequestPageOutput, error)

	// ListOwnRequests returns every request of the calling hospital.
	ListOwnRequests(ctx context.Context, caller *entity.Caller) (*RequestListOutput, error)

	// DeleteRequest removes a request together with its messages and notifications.
	DeleteRequest(ctx context.Context, caller *entity.Caller, requestID string) (*DeleteRequestOutput, error)

	// GetRequestQRCode renders the share code of a request owned by the caller.
	GetRequestQRCode(ctx context.Context, caller *entity.Caller, requestID string) ([]byte, error)
}

// --- Input DTOs ---

// CreateRequestInput carries the raw request fields. Units accepts a number or a numeric string.
type CreateRequestInput struct {
	RequestID        string `json:"requestId"`
	BloodBankName    string `json:"bloodBankName"`
	BloodType        string `json:"bloodType"`
	Units            any    `json:"units"`
	IsUrgent         bool   `json:"isUrgent"`
	HospitalLocation string `json:"hospitalLocation"`
	Details          string `json:"details"`
}

// ListRequestsInput selects one page of the request feed.
type ListRequestsInput struct {
	Limit         int    `query:"limit"`
	LastRequestID string `query:"lastRequestId"`
}

// --- Output DTOs ---

// RequestOutput is the client view of a blood request. CreatedAt is in epoch milliseconds.
type RequestOutput struct {
	ID               string `json:"id"`
	BloodBankID      string `json:"bloodBankId"`
	BloodBankName    string `json:"bloodBankName"`
	BloodType        string `json:"bloodType"`
	Units            int    `json:"units"`
	IsUrgent         bool   `json:"isUrgent"`
	Details          string `json:"details"`
	HospitalLocation string `json:"hospitalLocation"`
	CreatedAt        *int64 `json:"createdAt"`
}

// CreateRequestOutput acknowledges a created request.
type CreateRequestOutput struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// RequestPageOutput is one page of the request feed.
type RequestPageOutput struct {
	Requests []RequestOutput `json:"requests"`
	HasMore  bool            `json:"hasMore"`
}

// RequestListOutput lists the requests of one hospital.
type RequestListOutput struct {
	Requests []RequestOutput `json:"requests"`
	Count    int             `json:"count"`
}

// DeleteRequestOutput reports what a request deletion removed.
type DeleteRequestOutput struct {
	OK                   bool   `json:"ok"`
	Message              string `json:"message"`
	NotificationsDeleted int    `json:"notificationsDeleted"`
	MessagesDeleted      int    `json:"messagesDeleted"`
}
