// Package model holds the Firestore document shapes of the persistence layer.
package model

import "time"

// ProfileModel is the document stored at users/{uid}.
type ProfileModel struct {
	Role            string     `firestore:"role"`
	Email           string     `firestore:"email,omitempty"`
	EmailVerified   bool       `firestore:"emailVerified"`
	FullName        string     `firestore:"fullName,omitempty"`
	Name            string     `firestore:"name,omitempty"`
	BloodBankName   string     `firestore:"bloodBankName,omitempty"`
	BloodType       string     `firestore:"bloodType,omitempty"`
	Location        string     `firestore:"location,omitempty"`
	MedicalFileURL  string     `firestore:"medicalFileUrl,omitempty"`
	FCMToken        string     `firestore:"fcmToken,omitempty"`
	CreatedAt       *time.Time `firestore:"createdAt,omitempty"`
	EmailVerifiedAt *time.Time `firestore:"emailVerifiedAt,omitempty"`
	ActivatedAt     *time.Time `firestore:"activatedAt,omitempty"`
	LastLoginAt     *time.Time `firestore:"lastLoginAt,omitempty"`
	UpdatedAt       *time.Time `firestore:"updatedAt,omitempty"`
}

// PendingProfileModel is the document stored at pending_profiles/{uid}.
type PendingProfileModel struct {
	Role           string    `firestore:"role,omitempty"`
	FullName       string    `firestore:"fullName,omitempty"`
	BloodBankName  string    `firestore:"bloodBankName,omitempty"`
	BloodType      string    `firestore:"bloodType,omitempty"`
	Location       string    `firestore:"location,omitempty"`
	MedicalFileURL string    `firestore:"medicalFileUrl,omitempty"`
	FCMToken       string    `firestore:"fcmToken,omitempty"`
	CreatedAt      time.Time `firestore:"createdAt,omitempty"`
}
