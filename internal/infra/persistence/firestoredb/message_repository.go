package firestoredb

import (
	"context"

	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/errors"
	"bloodlink/internal/infra/persistence/model"
	"bloodlink/internal/util"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// existenceLookupSize bounds how many request references are resolved per GetAll call.
const existenceLookupSize = 100

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	client *firestore.Client
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &messageRepository{
		client: client,
	}
}

func (repo *messageRepository) messages(requestID string) *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionRequests).
		Doc(requestID).
		Collection(constants.CollectionMessages)
}

// Add appends one message to a request and returns its id.
func (repo *messageRepository) Add(ctx context.Context, message *entity.Message) (string, error) {
	ref := repo.messages(message.RequestID).NewDoc()
	if _, err := ref.Set(ctx, fromMessageDomain(message)); err != nil {
		return "", errors.Wrap(err, "failed to add message")
	}
	message.ID = ref.ID

	return ref.ID, nil
}

// CommitBatch writes up to constants.MaxBatchWrites messages atomically.
func (repo *messageRepository) CommitBatch(ctx context.Context, messages []*entity.Message) error {
	ops := make([]writeOp, 0, len(messages))
	refs := make([]*firestore.DocumentRef, 0, len(messages))
	for _, message := range messages {
		ref := repo.messages(message.RequestID).NewDoc()
		refs = append(refs, ref)
		ops = append(ops, setOp(ref, fromMessageDomain(message)))
	}

	if err := commitAtomic(ctx, repo.client, ops); err != nil {
		return errors.Wrap(err, "failed to commit message batch")
	}

	for i, message := range messages {
		message.ID = refs[i].ID
	}

	return nil
}

// ListByRequest returns every message of a request, newest first.
func (repo *messageRepository) ListByRequest(ctx context.Context, requestID string) ([]*entity.Message, error) {
	iter := repo.messages(requestID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	messages := make([]*entity.Message, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list messages")
		}

		var messageM model.MessageModel
		if err := snap.DataTo(&messageM); err != nil {
			return nil, errors.Wrapf(err, "failed to decode message %s", snap.Ref.ID)
		}
		messages = append(messages, toMessageDomain(requestID, snap.Ref.ID, &messageM))
	}

	return messages, nil
}

// HasTargeted reports whether at least one message of the request has a recipient.
func (repo *messageRepository) HasTargeted(ctx context.Context, requestID string) (bool, error) {
	found, err := hasAny(ctx, repo.messages(requestID).Where("recipientId", "!=", nil))
	if err != nil {
		return false, errors.Wrap(err, "failed to check targeted messages")
	}

	return found, nil
}

// DeleteByRequest removes every message of a request in bounded batches.
func (repo *messageRepository) DeleteByRequest(ctx context.Context, requestID string) (int, error) {
	deleted, err := deleteMatching(ctx, repo.client, repo.messages(requestID).Query)
	if err != nil {
		return deleted, errors.Wrap(err, "failed to delete messages")
	}

	return deleted, nil
}

// ListOrphanedRequestIDs returns ids of requests that have messages but no request document.
// Firestore lists parents of subcollections even when the parent document is missing.
func (repo *messageRepository) ListOrphanedRequestIDs(ctx context.Context) ([]string, error) {
	iter := repo.client.Collection(constants.CollectionRequests).DocumentRefs(ctx)

	var refs []*firestore.DocumentRef
	for {
		ref, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list request references")
		}
		refs = append(refs, ref)
	}

	var orphaned []string
	for _, chunk := range util.Chunk(refs, existenceLookupSize) {
		snaps, err := repo.client.GetAll(ctx, chunk)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve request references")
		}

		for _, snap := range snaps {
			if snap.Exists() {
				continue
			}

			found, err := hasAny(ctx, repo.messages(snap.Ref.ID).Query)
			if err != nil {
				return nil, errors.Wrap(err, "failed to probe orphaned messages")
			}
			if found {
				orphaned = append(orphaned, snap.Ref.ID)
			}
		}
	}

	return orphaned, nil
}

// --- Mapper Functions ---

// toMessageDomain converts a MessageModel to a domain Message entity.
func toMessageDomain(requestID, id string, data *model.MessageModel) *entity.Message {
	message := &entity.Message{
		ID:            id,
		RequestID:     requestID,
		Text:          data.Text,
		SenderID:      data.SenderID,
		SenderRole:    entity.Role(data.SenderRole),
		RecipientID:   data.RecipientID,
		SchemaVersion: data.SchemaVersion,
	}
	if !data.CreatedAt.IsZero() {
		createdAt := data.CreatedAt
		message.CreatedAt = &createdAt
	}

	return message
}

// fromMessageDomain converts a domain Message entity to a MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	messageM := &model.MessageModel{
		Text:          data.Text,
		SenderID:      data.SenderID,
		SenderRole:    data.SenderRole.String(),
		RecipientID:   data.RecipientID,
		SchemaVersion: data.SchemaVersion,
	}
	if data.CreatedAt != nil {
		messageM.CreatedAt = *data.CreatedAt
	}

	return messageM
}
