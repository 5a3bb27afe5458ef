package firestoredb

import (
	"context"

	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/errors"
	"bloodlink/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{
		client: client,
	}
}

func (repo *notificationRepository) owners() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionNotifications)
}

func (repo *notificationRepository) inbox(uid string) *firestore.CollectionRef {
	return repo.owners().Doc(uid).Collection(constants.CollectionUserNotification)
}

// CommitBatch writes up to constants.MaxBatchWrites notifications atomically.
func (repo *notificationRepository) CommitBatch(ctx context.Context, notifications []*entity.Notification) error {
	ops := make([]writeOp, 0, len(notifications))
	refs := make([]*firestore.DocumentRef, 0, len(notifications))
	for _, notification := range notifications {
		ref := repo.inbox(notification.UserID).NewDoc()
		refs = append(refs, ref)
		ops = append(ops, setOp(ref, fromNotificationDomain(notification)))
	}

	if err := commitAtomic(ctx, repo.client, ops); err != nil {
		return errors.Wrap(err, "failed to commit notification batch")
	}

	for i, notification := range notifications {
		notification.ID = refs[i].ID
	}

	return nil
}

// ListByUser returns every notification of a user, newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, uid string) ([]*entity.Notification, error) {
	iter := repo.inbox(uid).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	notifications := make([]*entity.Notification, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list notifications")
		}

		notification, err := decodeNotification(uid, snap)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// FindByID retrieves one notification of a user.
func (repo *notificationRepository) FindByID(ctx context.Context, uid, id string) (*entity.Notification, error) {
	snap, err := repo.inbox(uid).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}

	return decodeNotification(uid, snap)
}

// MarkRead flags one notification as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, uid, id string) error {
	if _, err := repo.inbox(uid).Doc(id).Update(ctx, readUpdates()); err != nil {
		if isNotFound(err) {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification as read")
	}

	return nil
}

// MarkAllRead flags every unread notification of a user as read and returns how many changed.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, uid string) (int, error) {
	refs, err := collectRefs(ctx, repo.inbox(uid).Where("read", "==", false))
	if err != nil {
		return 0, errors.Wrap(err, "failed to find unread notifications")
	}

	ops := make([]writeOp, 0, len(refs))
	for _, ref := range refs {
		ops = append(ops, updateOp(ref, readUpdates()...))
	}

	updated, err := commitChunked(ctx, repo.client, ops)
	if err != nil {
		return updated, errors.Wrap(err, "failed to mark notifications as read")
	}

	return updated, nil
}

// Delete removes one notification.
func (repo *notificationRepository) Delete(ctx context.Context, uid, id string) error {
	if _, err := repo.inbox(uid).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// DeleteByRequest removes every notification referencing the request across all users.
func (repo *notificationRepository) DeleteByRequest(ctx context.Context, requestID string) (int, error) {
	q := repo.client.CollectionGroup(constants.CollectionUserNotification).Where("requestId", "==", requestID)

	refs, err := collectRefs(ctx, q)
	if err != nil {
		if isMissingIndex(err) {
			return 0, errors.Wrap(repository.ErrIndexUnavailable, err.Error())
		}

		return 0, errors.Wrap(err, "failed to query notifications by request")
	}

	ops := make([]writeOp, 0, len(refs))
	for _, ref := range refs {
		ops = append(ops, deleteOp(ref))
	}

	deleted, err := commitChunked(ctx, repo.client, ops)
	if err != nil {
		return deleted, errors.Wrap(err, "failed to delete notifications by request")
	}

	return deleted, nil
}

// DeleteByRequestForUser removes the notifications of one user referencing the request.
func (repo *notificationRepository) DeleteByRequestForUser(ctx context.Context, uid, requestID string) (int, error) {
	deleted, err := deleteMatching(ctx, repo.client, repo.inbox(uid).Where("requestId", "==", requestID))
	if err != nil {
		return deleted, errors.Wrapf(err, "failed to delete notifications of %s", uid)
	}

	return deleted, nil
}

// DeleteOrphaned removes the notifications of one user whose request reference is null.
func (repo *notificationRepository) DeleteOrphaned(ctx context.Context, uid string) (int, error) {
	deleted, err := deleteMatching(ctx, repo.client, repo.inbox(uid).Where("requestId", "==", nil))
	if err != nil {
		return deleted, errors.Wrapf(err, "failed to delete orphaned notifications of %s", uid)
	}

	return deleted, nil
}

// ListOwnerIDs returns the ids of every user that has a notification collection.
// The owner documents themselves are never written, so missing parents are listed too.
func (repo *notificationRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	iter := repo.owners().DocumentRefs(ctx)

	var ids []string
	for {
		ref, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list notification owners")
		}
		ids = append(ids, ref.ID)
	}

	return ids, nil
}

func readUpdates() []firestore.Update {
	return []firestore.Update{
		{Path: "read", Value: true},
		{Path: "isRead", Value: true},
	}
}

// --- Mapper Functions ---

func decodeNotification(uid string, snap *firestore.DocumentSnapshot) (*entity.Notification, error) {
	var notificationM model.NotificationModel
	if err := snap.DataTo(&notificationM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode notification %s", snap.Ref.ID)
	}

	return toNotificationDomain(uid, snap.Ref.ID, &notificationM), nil
}

// toNotificationDomain converts a NotificationModel to a domain Notification entity.
// Older records only carry isRead, so either flag marks the notification read.
func toNotificationDomain(uid, id string, data *model.NotificationModel) *entity.Notification {
	notification := &entity.Notification{
		ID:            id,
		UserID:        uid,
		Title:         data.Title,
		Body:          data.Body,
		RequestID:     data.RequestID,
		BloodType:     entity.BloodType(data.BloodType),
		BloodBankName: data.BloodBankName,
		IsUrgent:      data.IsUrgent,
		Read:          data.Read || data.IsRead,
		SchemaVersion: data.SchemaVersion,
	}
	if !data.CreatedAt.IsZero() {
		createdAt := data.CreatedAt
		notification.CreatedAt = &createdAt
	}

	return notification
}

// fromNotificationDomain converts a domain Notification entity to a NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	notificationM := &model.NotificationModel{
		Title:         data.Title,
		Body:          data.Body,
		RequestID:     data.RequestID,
		BloodType:     data.BloodType.String(),
		BloodBankName: data.BloodBankName,
		IsUrgent:      data.IsUrgent,
		Read:          data.Read,
		IsRead:        data.Read,
		SchemaVersion: data.SchemaVersion,
	}
	if data.CreatedAt != nil {
		notificationM.CreatedAt = *data.CreatedAt
	}

	return notificationM
}
