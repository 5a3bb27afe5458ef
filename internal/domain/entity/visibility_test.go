package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageReader_CanSee(t *testing.T) {
	const (
		hospital = "hospital-1"
		donorD   = "donor-d"
		donorE   = "donor-e"
	)

	broadcast := &Message{ID: "b", SenderID: hospital, SenderRole: RoleHospital}
	toD := &Message{ID: "to-d", SenderID: hospital, SenderRole: RoleHospital, RecipientID: donorD}
	fromD := &Message{ID: "from-d", SenderID: donorD, SenderRole: RoleDonor, RecipientID: hospital}
	toE := &Message{ID: "to-e", SenderID: hospital, SenderRole: RoleHospital, RecipientID: donorE}
	blankRecipient := &Message{ID: "blank", SenderID: donorE, RecipientID: "  "}

	tests := []struct {
		name    string
		reader  MessageReader
		message *Message
		want    bool
	}{
		{"broadcast visible to owner", MessageReader{ID: hospital, IsOwner: true}, broadcast, true},
		{"broadcast visible to any donor", MessageReader{ID: donorE}, broadcast, true},
		{"broadcast visible to owner thread", MessageReader{ID: hospital, IsOwner: true, PartnerID: donorE}, broadcast, true},
		{"blank recipient is broadcast", MessageReader{ID: donorD}, blankRecipient, true},
		{"targeted visible to recipient", MessageReader{ID: donorD}, toD, true},
		{"targeted hidden from other donor", MessageReader{ID: donorE}, toD, false},
		{"targeted visible to owner without filter", MessageReader{ID: hospital, IsOwner: true}, toD, true},
		{"targeted visible to owner thread of recipient", MessageReader{ID: hospital, IsOwner: true, PartnerID: donorD}, toD, true},
		{"partner filter is trimmed", MessageReader{ID: hospital, IsOwner: true, PartnerID: " donor-d "}, toD, true},
		{"targeted hidden from owner thread of other donor", MessageReader{ID: hospital, IsOwner: true, PartnerID: donorE}, toD, false},
		{"sent by partner visible in owner thread", MessageReader{ID: hospital, IsOwner: true, PartnerID: donorD}, fromD, true},
		{"sent by other donor hidden in owner thread", MessageReader{ID: hospital, IsOwner: true, PartnerID: donorD}, toE, false},
		{"donor cannot see own outgoing targeted message", MessageReader{ID: donorD}, fromD, false},
		{"non owner hospital sees only addressed", MessageReader{ID: "hospital-2"}, toD, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reader.CanSee(tt.message))
		})
	}
}

func TestVisibleMessages_KeepsOrder(t *testing.T) {
	messages := []*Message{
		{ID: "3", RecipientID: "d1"},
		{ID: "2"},
		{ID: "1", RecipientID: "d2"},
		{ID: "0", RecipientID: "d1"},
	}

	visible := VisibleMessages(messages, MessageReader{ID: "d1"})

	ids := make([]string, 0, len(visible))
	for _, m := range visible {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"3", "2", "0"}, ids)
}

func TestVisibleMessages_Empty(t *testing.T) {
	assert.Empty(t, VisibleMessages(nil, MessageReader{ID: "d1"}))
}
