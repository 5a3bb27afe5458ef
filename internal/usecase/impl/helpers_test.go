package impl

import (
	"io"
	"log/slog"
	"time"

	"bloodlink/internal/domain/entity"
)

var (
	fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	hospitalCaller = &entity.Caller{UID: "h1", Email: "bank@example.com", EmailVerified: true}
	donorCaller    = &entity.Caller{UID: "d1", Email: "donor@example.com", EmailVerified: true}
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func hospitalProfile(uid string) *entity.Profile {
	return &entity.Profile{UID: uid, Role: entity.RoleHospital, BloodBankName: "Central Bank", EmailVerified: true}
}

func donorProfile(uid string, bloodType entity.BloodType, token string) *entity.Profile {
	return &entity.Profile{UID: uid, Role: entity.RoleDonor, FullName: "Donor " + uid, BloodType: bloodType, FCMToken: token, EmailVerified: true}
}

func ptr[T any](v T) *T {
	return &v
}
