package model

import "time"

// MessageModel is the document stored at requests/{requestId}/messages/{id}.
// A missing recipientId marks a broadcast.
type MessageModel struct {
	Text          string    `firestore:"text"`
	SenderID      string    `firestore:"senderId"`
	SenderRole    string    `firestore:"senderRole"`
	RecipientID   string    `firestore:"recipientId,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp"`
	SchemaVersion int       `firestore:"schemaVersion,omitempty"`
}
