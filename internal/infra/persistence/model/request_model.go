package model

import "time"

// RequestModel is the document stored at requests/{requestId}.
type RequestModel struct {
	BloodBankID      string       `firestore:"bloodBankId"`
	BloodBankName    string       `firestore:"bloodBankName"`
	BloodType        string       `firestore:"bloodType"`
	Units            int          `firestore:"units"`
	IsUrgent         bool         `firestore:"isUrgent"`
	Details          string       `firestore:"details"`
	HospitalLocation string       `firestore:"hospitalLocation"`
	CreatedAt        time.Time    `firestore:"createdAt,serverTimestamp"`
	Fanout           *FanoutModel `firestore:"fanout,omitempty"`
}

// FanoutModel is the fan-out idempotency record embedded in a request.
type FanoutModel struct {
	State       string     `firestore:"state"`
	ClaimedBy   string     `firestore:"claimedBy,omitempty"`
	ClaimedAt   *time.Time `firestore:"claimedAt,omitempty"`
	CompletedAt *time.Time `firestore:"completedAt,omitempty"`
}
