package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"
)

// MessageUsecase defines the request conversation operations.
type MessageUsecase interface {
	// SendMessage appends a message to a request conversation.
	SendMessage(ctx context.Context, caller *entity.Caller, input *SendMessageInput) (*SendMessageOutput, error)

	// GetMessages returns the messages of a request the caller may see, newest first.
	GetMessages(ctx context.Context, caller *entity.Caller, input *GetMessagesInput) (*MessageListOutput, error)
}

// SendMessageInput carries a new message. An empty recipient makes it a broadcast.
type SendMessageInput struct {
	RequestID   string `json:"requestId"`
	Text        string `json:"text"`
	RecipientID string `json:"recipientId"`
}

// GetMessagesInput selects a request conversation, optionally narrowed to one donor thread.
type GetMessagesInput struct {
	RequestID         string `param:"requestId"`
	FilterRecipientID string `query:"filterRecipientId"`
}

// MessageOutput is the client view of a message. CreatedAt is in epoch milliseconds.
type MessageOutput struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	SenderID    string  `json:"senderId"`
	SenderRole  string  `json:"senderRole"`
	RecipientID *string `json:"recipientId,omitempty"`
	CreatedAt   *int64  `json:"createdAt"`
}

// SendMessageOutput acknowledges a sent message.
type SendMessageOutput struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

// MessageListOutput lists the visible messages of a request.
type MessageListOutput struct {
	Messages []MessageOutput `json:"messages"`
	Count    int             `json:"count"`
}
