// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationSchemaVersion is the version written on new notification records.
const NotificationSchemaVersion = 2

// Notification is an in-app alert addressed to one user.
type Notification struct {
	ID            string     // Document id.
	UserID        string     // Owning user id.
	Title         string     // Short heading.
	Body          string     // Message body.
	RequestID     *string    // Referenced request. Nil once orphaned.
	BloodType     BloodType  // Blood group of the referenced request.
	BloodBankName string     // Requesting hospital name.
	IsUrgent      *bool      // Urgency of the referenced request.
	Read          bool       // Whether the user has read it.
	CreatedAt     *time.Time // Server timestamp.
	SchemaVersion int        // Record schema version.
}
