package firestoredb

import (
	"context"
	"strings"
	"time"

	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/errors"
	"bloodlink/internal/infra/persistence/model"
	"bloodlink/internal/util"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// maxInQueryValues is the number of values a Firestore "in" filter accepts.
const maxInQueryValues = 30

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{
		client: client,
	}
}

func (repo *profileRepository) users() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionUsers)
}

func (repo *profileRepository) pending() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionPendingProfiles)
}

// SavePending merges the pending profile into the staging record.
func (repo *profileRepository) SavePending(ctx context.Context, pending *entity.PendingProfile) error {
	if _, err := repo.pending().Doc(pending.UID).Set(ctx, pendingData(pending), firestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to save pending profile")
	}

	return nil
}

// SavePendingFCMToken stashes a push token on the staging record until activation.
func (repo *profileRepository) SavePendingFCMToken(ctx context.Context, uid, token string) error {
	data := map[string]any{"fcmToken": token}
	if _, err := repo.pending().Doc(uid).Set(ctx, data, firestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to save pending FCM token")
	}

	return nil
}

// FindPendingByID retrieves the staging record of a user.
func (repo *profileRepository) FindPendingByID(ctx context.Context, uid string) (*entity.PendingProfile, error) {
	snap, err := repo.pending().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPendingProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending profile")
	}

	var pendingM model.PendingProfileModel
	if err := snap.DataTo(&pendingM); err != nil {
		return nil, errors.Wrap(err, "failed to decode pending profile")
	}

	return toPendingDomain(uid, &pendingM), nil
}

// Activate moves the staging record into an activated profile in one transaction.
func (repo *profileRepository) Activate(ctx context.Context, uid string, account *entity.Account, at time.Time) (*entity.Profile, error) {
	pendingRef := repo.pending().Doc(uid)
	userRef := repo.users().Doc(uid)

	var profile *entity.Profile

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(pendingRef)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrPendingProfileNotFound
			}

			return errors.Wrap(err, "failed to read pending profile")
		}

		var pendingM model.PendingProfileModel
		if err := snap.DataTo(&pendingM); err != nil {
			return errors.Wrap(err, "failed to decode pending profile")
		}

		data := activationData(&pendingM, account, at)
		if err := tx.Set(userRef, data, firestore.MergeAll); err != nil {
			return err
		}
		if err := tx.Delete(pendingRef); err != nil {
			return err
		}

		profile = toActivatedDomain(uid, &pendingM, account, at)

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrPendingProfileNotFound) {
			return nil, repository.ErrPendingProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to activate profile")
	}

	return profile, nil
}

// FindByID retrieves an activated profile.
func (repo *profileRepository) FindByID(ctx context.Context, uid string) (*entity.Profile, error) {
	snap, err := repo.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return decodeProfile(snap)
}

// Exists reports whether an activated profile exists.
func (repo *profileRepository) Exists(ctx context.Context, uid string) (bool, error) {
	snap, err := repo.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check profile")
	}

	return snap.Exists(), nil
}

// TouchLastLogin records a login time.
func (repo *profileRepository) TouchLastLogin(ctx context.Context, uid string, at time.Time) error {
	data := map[string]any{"lastLoginAt": at}
	if _, err := repo.users().Doc(uid).Set(ctx, data, firestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to update last login")
	}

	return nil
}

// SetFCMToken stores the device push token and records a login time.
func (repo *profileRepository) SetFCMToken(ctx context.Context, uid, token string, at time.Time) error {
	data := map[string]any{
		"fcmToken":    token,
		"lastLoginAt": at,
	}
	if _, err := repo.users().Doc(uid).Set(ctx, data, firestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// ClearFCMTokens removes the given push tokens from every profile holding them.
func (repo *profileRepository) ClearFCMTokens(ctx context.Context, tokens []string) (int, error) {
	var ops []writeOp
	for _, chunk := range util.Chunk(util.UniqueNonEmpty(tokens), maxInQueryValues) {
		refs, err := collectRefs(ctx, repo.users().Where("fcmToken", "in", chunk))
		if err != nil {
			return 0, errors.Wrap(err, "failed to find profiles by FCM token")
		}
		for _, ref := range refs {
			ops = append(ops, updateOp(ref, firestore.Update{Path: "fcmToken", Value: firestore.Delete}))
		}
	}

	cleared, err := commitChunked(ctx, repo.client, ops)
	if err != nil {
		return cleared, errors.Wrap(err, "failed to clear FCM tokens")
	}

	return cleared, nil
}

// Update applies a partial profile update.
func (repo *profileRepository) Update(ctx context.Context, uid string, update entity.ProfileUpdate, at time.Time) error {
	updates := []firestore.Update{{Path: "updatedAt", Value: at}}
	if update.Name != nil {
		updates = append(updates,
			firestore.Update{Path: "name", Value: *update.Name},
			firestore.Update{Path: "fullName", Value: *update.Name},
		)
	}
	if update.Location != nil {
		updates = append(updates, firestore.Update{Path: "location", Value: *update.Location})
	}
	if update.BloodType != nil {
		updates = append(updates, firestore.Update{Path: "bloodType", Value: update.BloodType.String()})
	}

	if _, err := repo.users().Doc(uid).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

// FindDonors retrieves every donor profile matching the query.
func (repo *profileRepository) FindDonors(ctx context.Context, query repository.DonorQuery) ([]*entity.Profile, error) {
	q := repo.users().Where("role", "==", entity.RoleDonor.String())
	if query.BloodType != "" {
		q = q.Where("bloodType", "==", query.BloodType.String())
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var donors []*entity.Profile
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query donors")
		}

		donor, err := decodeProfile(snap)
		if err != nil {
			return nil, err
		}
		if query.ActiveOnly && !donor.IsActiveDonor() {
			continue
		}
		donors = append(donors, donor)
	}

	return donors, nil
}

// DeleteAccountData removes both the staging record and the activated profile.
func (repo *profileRepository) DeleteAccountData(ctx context.Context, uid string) error {
	var failures []error

	if _, err := repo.pending().Doc(uid).Delete(ctx); err != nil {
		failures = append(failures, errors.Wrap(err, "failed to delete pending profile"))
	}
	if _, err := repo.users().Doc(uid).Delete(ctx); err != nil {
		failures = append(failures, errors.Wrap(err, "failed to delete profile"))
	}

	return errors.Join(failures...)
}

// --- Mapper Functions ---

func decodeProfile(snap *firestore.DocumentSnapshot) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := snap.DataTo(&profileM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode profile %s", snap.Ref.ID)
	}

	return toProfileDomain(snap.Ref.ID, &profileM), nil
}

// toProfileDomain converts a ProfileModel to a domain Profile entity.
func toProfileDomain(uid string, data *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		UID:             uid,
		Role:            entity.Role(data.Role),
		Email:           data.Email,
		EmailVerified:   data.EmailVerified,
		FullName:        data.FullName,
		Name:            data.Name,
		BloodBankName:   data.BloodBankName,
		BloodType:       entity.BloodType(data.BloodType),
		Location:        data.Location,
		MedicalFileURL:  data.MedicalFileURL,
		FCMToken:        strings.TrimSpace(data.FCMToken),
		CreatedAt:       data.CreatedAt,
		EmailVerifiedAt: data.EmailVerifiedAt,
		ActivatedAt:     data.ActivatedAt,
		LastLoginAt:     data.LastLoginAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toPendingDomain converts a PendingProfileModel to a domain PendingProfile entity.
func toPendingDomain(uid string, data *model.PendingProfileModel) *entity.PendingProfile {
	return &entity.PendingProfile{
		UID:            uid,
		Role:           entity.Role(data.Role),
		FullName:       data.FullName,
		BloodBankName:  data.BloodBankName,
		BloodType:      entity.BloodType(data.BloodType),
		Location:       data.Location,
		MedicalFileURL: data.MedicalFileURL,
		FCMToken:       data.FCMToken,
		CreatedAt:      data.CreatedAt,
	}
}

// pendingData builds the merge payload of a pending profile. Only fields of the pending role are written.
func pendingData(pending *entity.PendingProfile) map[string]any {
	data := map[string]any{
		"role":      pending.Role.String(),
		"location":  pending.Location,
		"createdAt": pending.CreatedAt,
	}

	switch pending.Role {
	case entity.RoleDonor:
		data["fullName"] = pending.FullName
		if pending.BloodType != "" {
			data["bloodType"] = pending.BloodType.String()
		}
		if pending.MedicalFileURL != "" {
			data["medicalFileUrl"] = pending.MedicalFileURL
		}
	case entity.RoleHospital:
		data["bloodBankName"] = pending.BloodBankName
	}

	return data
}

// activationData builds the merge payload written to users/{uid} on activation.
func activationData(pending *model.PendingProfileModel, account *entity.Account, at time.Time) map[string]any {
	data := map[string]any{
		"role":            pending.Role,
		"location":        pending.Location,
		"email":           account.Email,
		"emailVerified":   true,
		"emailVerifiedAt": at,
		"activatedAt":     at,
	}

	optional := map[string]string{
		"fullName":       pending.FullName,
		"bloodBankName":  pending.BloodBankName,
		"bloodType":      pending.BloodType,
		"medicalFileUrl": pending.MedicalFileURL,
		"fcmToken":       pending.FCMToken,
	}
	for key, value := range optional {
		if value != "" {
			data[key] = value
		}
	}

	if !pending.CreatedAt.IsZero() {
		data["createdAt"] = pending.CreatedAt
	}

	return data
}

// toActivatedDomain builds the profile entity matching activationData.
func toActivatedDomain(uid string, pending *model.PendingProfileModel, account *entity.Account, at time.Time) *entity.Profile {
	profile := &entity.Profile{
		UID:             uid,
		Role:            entity.Role(pending.Role),
		Email:           account.Email,
		EmailVerified:   true,
		FullName:        pending.FullName,
		BloodBankName:   pending.BloodBankName,
		BloodType:       entity.BloodType(pending.BloodType),
		Location:        pending.Location,
		MedicalFileURL:  pending.MedicalFileURL,
		FCMToken:        pending.FCMToken,
		EmailVerifiedAt: &at,
		ActivatedAt:     &at,
	}
	if !pending.CreatedAt.IsZero() {
		createdAt := pending.CreatedAt
		profile.CreatedAt = &createdAt
	}

	return profile
}
