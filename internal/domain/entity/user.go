// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// DefaultDonorName is shown when a donor profile has no name.
const DefaultDonorName = "Donor"

// DefaultDonorLocation is shown when a donor profile has no location.
const DefaultDonorLocation = "Unknown location"

// Profile is an activated account. It only exists after email verification.
type Profile struct {
	UID             string     // Identity provider user id, also the document id.
	Role            Role       // donor or hospital.
	Email           string     // Email copied from the identity provider on activation.
	EmailVerified   bool       // Always true for activated profiles.
	FullName        string     // Donor full name.
	Name            string     // Display name set through profile updates.
	BloodBankName   string     // Hospital or blood bank name.
	BloodType       BloodType  // Donor blood group.
	Location        string     // Free text location.
	MedicalFileURL  string     // Optional donor medical file link.
	FCMToken        string     // Device push token. Its presence marks an active donor.
	CreatedAt       *time.Time // When the pending profile was first submitted.
	EmailVerifiedAt *time.Time // When activation observed the verified email.
	ActivatedAt     *time.Time // When the profile was activated.
	LastLoginAt     *time.Time // Last reported login.
	UpdatedAt       *time.Time // Last profile update.
}

// DisplayName returns the best available human name for the profile.
func (p *Profile) DisplayName() string {
	switch {
	case p.FullName != "":
		return p.FullName
	case p.Name != "":
		return p.Name
	case p.Role == RoleHospital && p.BloodBankName != "":
		return p.BloodBankName
	default:
		return DefaultDonorName
	}
}

// IsActiveDonor reports whether the profile is a donor that has registered a device.
func (p *Profile) IsActiveDonor() bool {
	return p.Role == RoleDonor && p.FCMToken != ""
}

// PendingProfile is the staging record written before the email is verified.
type PendingProfile struct {
	UID            string    // Identity provider user id, also the document id.
	Role           Role      // donor or hospital.
	FullName       string    // Donor full name.
	BloodBankName  string    // Hospital or blood bank name.
	BloodType      BloodType // Donor blood group.
	Location       string    // Free text location.
	MedicalFileURL string    // Optional donor medical file link.
	FCMToken       string    // Push token reported before activation, applied on activation.
	CreatedAt      time.Time // When the pending profile was submitted.
}

// ProfileUpdate lists the profile fields a caller may change. Nil fields are left untouched.
type ProfileUpdate struct {
	Name      *string
	Location  *string
	BloodType *BloodType
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Location == nil && u.BloodType == nil
}

// DonorSummary is the listing view of a donor profile.
type DonorSummary struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Location  string    `json:"location"`
	BloodType BloodType `json:"bloodType"`
	Email     string    `json:"email"`
}

// NewDonorSummary builds the listing view with the display fallbacks applied.
func NewDonorSummary(p *Profile) DonorSummary {
	location := p.Location
	if location == "" {
		location = DefaultDonorLocation
	}

	name := p.FullName
	if name == "" {
		name = p.Name
	}
	if name == "" {
		name = DefaultDonorName
	}

	return DonorSummary{
		ID:        p.UID,
		FullName:  name,
		Location:  location,
		BloodType: p.BloodType,
		Email:     p.Email,
	}
}
