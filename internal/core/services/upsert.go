package services

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// saver is the insert/update pair every entity store provides.
type saver[T any] interface {
	Insert(ctx context.Context, v T) (int64, error)
	Update(ctx context.Context, v T) (int64, error)
}

// upsert inserts v when id is zero and updates it otherwise.
// An update that touches no row is reported as not found.
func upsert[T any](ctx context.Context, store saver[T], entity string, id int64, v T) (int64, error) {
	if id == 0 {
		return store.Insert(ctx, v)
	}
	affected, err := store.Update(ctx, v)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, domain.NotFoundf("update "+entity, "no %s with id %d", entity, id)
	}
	return id, nil
}
