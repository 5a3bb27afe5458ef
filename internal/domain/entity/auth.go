package entity

import "time"

// Caller is the authenticated principal invoking an operation.
type Caller struct {
	UID           string // Identity provider user id.
	Email         string // Email claim of the verified token, may be empty.
	EmailVerified bool   // Email verification claim of the verified token.
}

// Account is the identity provider's record for a user.
type Account struct {
	UID           string    // Identity provider user id.
	Email         string    // Primary email address.
	EmailVerified bool      // Whether the email address has been verified.
	DisplayName   string    // Display name kept by the identity provider.
	CreatedAt     time.Time // Account creation time. Zero when the provider did not report it.
}
