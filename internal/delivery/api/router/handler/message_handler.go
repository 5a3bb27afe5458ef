package handler

import (
	"bloodlink/internal/delivery/api/response"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MessageHandler exposes the conversation of a request.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(messageUC usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{messageUC: messageUC}
}

// SendMessageRequest is the body of POST /requests/:requestId/messages.
type SendMessageRequest struct {
	RequestID   string `param:"requestId"`
	Text        string `json:"text" validate:"max=2000"`
	RecipientID string `json:"recipientId"`
}

// SendMessage appends a message to a request
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.messageUC.SendMessage(c.Request().Context(), deliverycontext.GetCaller(c), &usecase.SendMessageInput{
		RequestID:   req.RequestID,
		Text:        req.Text,
		RecipientID: req.RecipientID,
	})
	if err != nil {
		return err
	}

	return response.Created(c, out)
}

// GetMessages returns the messages of a request visible to the caller
func (h *MessageHandler) GetMessages(c echo.Context) error {
	var req usecase.GetMessagesInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.messageUC.GetMessages(c.Request().Context(), deliverycontext.GetCaller(c), &req)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}
