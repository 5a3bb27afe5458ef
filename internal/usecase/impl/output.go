package impl

import (
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/usecase"
	"bloodlink/internal/util"
)

func toProfileOutput(p *entity.Profile) *usecase.ProfileOutput {
	return &usecase.ProfileOutput{
		UID:             p.UID,
		Role:            p.Role.String(),
		Email:           p.Email,
		EmailVerified:   p.EmailVerified,
		FullName:        p.FullName,
		Name:            p.Name,
		BloodBankName:   p.BloodBankName,
		BloodType:       p.BloodType.String(),
		Location:        p.Location,
		MedicalFileURL:  p.MedicalFileURL,
		FCMToken:        p.FCMToken,
		CreatedAt:       util.UnixMilli(p.CreatedAt),
		ActivatedAt:     util.UnixMilli(p.ActivatedAt),
		EmailVerifiedAt: util.UnixMilli(p.EmailVerifiedAt),
		LastLoginAt:     util.UnixMilli(p.LastLoginAt),
		UpdatedAt:       util.UnixMilli(p.UpdatedAt),
	}
}

func toRequestOutputs(requests []*entity.BloodRequest) []usecase.RequestOutput {
	outputs := make([]usecase.RequestOutput, 0, len(requests))
	for _, r := range requests {
		outputs = append(outputs, usecase.RequestOutput{
			ID:               r.ID,
			BloodBankID:      r.BloodBankID,
			BloodBankName:    r.BloodBankName,
			BloodType:        r.BloodType.String(),
			Units:            r.Units,
			IsUrgent:         r.IsUrgent,
			Details:          r.Details,
			HospitalLocation: r.HospitalLocation,
			CreatedAt:        util.UnixMilli(r.CreatedAt),
		})
	}

	return outputs
}

func toMessageOutputs(messages []*entity.Message) []usecase.MessageOutput {
	outputs := make([]usecase.MessageOutput, 0, len(messages))
	for _, m := range messages {
		out := usecase.MessageOutput{
			ID:         m.ID,
			Text:       m.Text,
			SenderID:   m.SenderID,
			SenderRole: m.SenderRole.String(),
			CreatedAt:  util.UnixMilli(m.CreatedAt),
		}
		if !m.IsBroadcast() {
			recipient := m.RecipientID
			out.RecipientID = &recipient
		}
		outputs = append(outputs, out)
	}

	return outputs
}

func toNotificationOutputs(notifications []*entity.Notification) []usecase.NotificationOutput {
	outputs := make([]usecase.NotificationOutput, 0, len(notifications))
	for _, n := range notifications {
		outputs = append(outputs, usecase.NotificationOutput{
			ID:            n.ID,
			Title:         n.Title,
			Body:          n.Body,
			RequestID:     n.RequestID,
			BloodType:     n.BloodType.String(),
			BloodBankName: n.BloodBankName,
			IsUrgent:      n.IsUrgent,
			Read:          n.Read,
			IsRead:        n.Read,
			CreatedAt:     util.UnixMilli(n.CreatedAt),
		})
	}

	return outputs
}
