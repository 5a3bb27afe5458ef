package entity

import (
	"strings"
	"time"
)

// MessageSchemaVersion is the version written on new message records.
const MessageSchemaVersion = 2

// Message is a conversation entry stored under a blood request.
// A message without recipient is a broadcast visible to every reader of the request.
type Message struct {
	ID            string     // Document id.
	RequestID     string     // Parent request id.
	Text          string     // Message body.
	SenderID      string     // Author profile id.
	SenderRole    Role       // Author role at send time.
	RecipientID   string     // Target donor id. Empty for broadcasts.
	CreatedAt     *time.Time // Server timestamp.
	SchemaVersion int        // Record schema version.
}

// IsBroadcast reports whether the message has no designated recipient.
func (m *Message) IsBroadcast() bool {
	return strings.TrimSpace(m.RecipientID) == ""
}
