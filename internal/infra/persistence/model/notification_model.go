package model

import "time"

// NotificationModel is the document stored at notifications/{uid}/user_notifications/{id}.
// isRead mirrors read for clients that still read the older field.
type NotificationModel struct {
	Title         string    `firestore:"title"`
	Body          string    `firestore:"body"`
	RequestID     *string   `firestore:"requestId"`
	BloodType     string    `firestore:"bloodType,omitempty"`
	BloodBankName string    `firestore:"bloodBankName,omitempty"`
	IsUrgent      *bool     `firestore:"isUrgent,omitempty"`
	Read          bool      `firestore:"read"`
	IsRead        bool      `firestore:"isRead"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp"`
	SchemaVersion int       `firestore:"schemaVersion,omitempty"`
}
