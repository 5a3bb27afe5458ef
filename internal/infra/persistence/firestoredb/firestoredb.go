// Package firestoredb contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestoredb

import (
	"context"
	"sync"
	"sync/atomic"

	"bloodlink/internal/domain/constants"
	"bloodlink/internal/errors"
	"bloodlink/internal/util"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// writeOp is one document write inside an atomic commit.
type writeOp struct {
	ref     *firestore.DocumentRef
	data    any
	merge   bool
	updates []firestore.Update
	delete  bool
}

func setOp(ref *firestore.DocumentRef, data any) writeOp {
	return writeOp{ref: ref, data: data}
}

func updateOp(ref *firestore.DocumentRef, updates ...firestore.Update) writeOp {
	return writeOp{ref: ref, updates: updates}
}

func deleteOp(ref *firestore.DocumentRef) writeOp {
	return writeOp{ref: ref, delete: true}
}

func (op writeOp) apply(tx *firestore.Transaction) error {
	switch {
	case op.delete:
		return tx.Delete(op.ref)
	case len(op.updates) > 0:
		return tx.Update(op.ref, op.updates)
	case op.merge:
		return tx.Set(op.ref, op.data, firestore.MergeAll)
	default:
		return tx.Set(op.ref, op.data)
	}
}

// commitAtomic applies ops all-or-nothing. A single commit may touch at most constants.MaxBatchWrites documents.
func commitAtomic(ctx context.Context, client *firestore.Client, ops []writeOp) error {
	if len(ops) == 0 {
		return nil
	}
	if len(ops) > constants.MaxBatchWrites {
		return errors.Errorf("atomic commit of %d writes exceeds the limit of %d", len(ops), constants.MaxBatchWrites)
	}

	err := client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		for _, op := range ops {
			if err := op.apply(tx); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to commit %d writes", len(ops))
	}

	return nil
}

// commitChunked splits ops into atomic chunks committed concurrently and waits for all of them.
// It returns the number of writes in chunks that committed along with every chunk failure.
func commitChunked(ctx context.Context, client *firestore.Client, ops []writeOp) (int, error) {
	var (
		group     errgroup.Group
		committed atomic.Int64
		mu        sync.Mutex
		failures  []error
	)

	for _, chunk := range util.Chunk(ops, constants.MaxBatchWrites) {
		group.Go(func() error {
			if err := commitAtomic(ctx, client, chunk); err != nil {
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()

				return nil
			}
			committed.Add(int64(len(chunk)))

			return nil
		})
	}
	_ = group.Wait()

	return int(committed.Load()), errors.Join(failures...)
}

// collectRefs returns the references of every document matched by q.
func collectRefs(ctx context.Context, q firestore.Query) ([]*firestore.DocumentRef, error) {
	iter := q.Select().Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		refs = append(refs, snap.Ref)
	}

	return refs, nil
}

// deleteMatching removes every document matched by q in concurrent atomic chunks.
func deleteMatching(ctx context.Context, client *firestore.Client, q firestore.Query) (int, error) {
	refs, err := collectRefs(ctx, q)
	if err != nil {
		return 0, err
	}

	ops := make([]writeOp, 0, len(refs))
	for _, ref := range refs {
		ops = append(ops, deleteOp(ref))
	}

	return commitChunked(ctx, client, ops)
}

// hasAny reports whether q matches at least one document.
func hasAny(ctx context.Context, q firestore.Query) (bool, error) {
	iter := q.Select().Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func isNotFound(err error) bool {
	return status.Code(errors.Cause(err)) == codes.NotFound
}

// isMissingIndex reports the error Firestore returns when a query needs an index that was never built.
func isMissingIndex(err error) bool {
	return status.Code(errors.Cause(err)) == codes.FailedPrecondition
}

var Module = fx.Options(
	fx.Provide(
		NewProfileRepository,
		NewRequestRepository,
		NewMessageRepository,
		NewNotificationRepository,
	),
)
