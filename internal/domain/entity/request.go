package entity

import "time"

// BloodRequest is a hospital's call for donors. It is immutable once created.
type BloodRequest struct {
	ID               string        // Caller supplied identifier, also the document id.
	BloodBankID      string        // Owning hospital profile id.
	BloodBankName    string        // Hospital display name at creation time.
	BloodType        BloodType     // Requested blood group.
	Units            int           // Requested units, at least 1.
	IsUrgent         bool          // Urgent requests use a stronger push title.
	Details          string        // Optional free text.
	HospitalLocation string        // Free text location of the hospital.
	CreatedAt        *time.Time    // Server timestamp of the creating write.
	Fanout           *FanoutRecord // Nil for requests written before fan-out tracking existed.
}

// IsOwnedBy reports whether uid owns the request.
func (r *BloodRequest) IsOwnedBy(uid string) bool {
	return r.BloodBankID == uid
}

// FanoutState tracks donor fan-out progress for one request.
type FanoutState string

const (
	// FanoutPending means no dispatcher run has claimed the request yet.
	FanoutPending FanoutState = "pending"
	// FanoutClaimed means a dispatcher run is writing records for the request.
	FanoutClaimed FanoutState = "claimed"
	// FanoutCompleted means every fan-out batch was committed.
	FanoutCompleted FanoutState = "completed"
)

// FanoutRecord is the idempotency record stored on the request document.
type FanoutRecord struct {
	State       FanoutState // Current state.
	ClaimedBy   string      // Identifier of the run holding the claim.
	ClaimedAt   *time.Time  // When the claim was taken.
	CompletedAt *time.Time  // When the fan-out completed.
}

// FanoutClaim is the outcome of trying to claim a request's fan-out.
type FanoutClaim struct {
	Acquired bool        // The caller now owns the fan-out.
	Previous FanoutState // State observed before the claim attempt. Empty for legacy requests.
}

// RequestPage selects one page of the request feed.
type RequestPage struct {
	Limit   int    // Page size.
	AfterID string // Cursor: id of the last request of the previous page.
}
