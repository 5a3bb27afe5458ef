package entity

import "strings"

// MessageReader describes who is reading a request conversation.
type MessageReader struct {
	ID        string // Reader profile id.
	IsOwner   bool   // The reader is the hospital that owns the request.
	PartnerID string // Owner only: narrows the view to the thread with one donor.
}

// CanSee reports whether the reader may see the message.
//
// The owner sees everything, or with a partner set, broadcasts plus messages to or from the partner.
// Anyone else sees broadcasts and messages addressed to them.
func (r MessageReader) CanSee(m *Message) bool {
	if m.IsBroadcast() {
		return true
	}

	recipient := strings.TrimSpace(m.RecipientID)
	if r.IsOwner {
		partner := strings.TrimSpace(r.PartnerID)
		if partner == "" {
			return true
		}

		return recipient == partner || strings.TrimSpace(m.SenderID) == partner
	}

	return recipient == r.ID
}

// VisibleMessages returns the messages the reader may see, keeping their order.
func VisibleMessages(messages []*Message, reader MessageReader) []*Message {
	visible := make([]*Message, 0, len(messages))
	for _, m := range messages {
		if reader.CanSee(m) {
			visible = append(visible, m)
		}
	}

	return visible
}
