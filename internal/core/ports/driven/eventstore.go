package driven

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// EventStore persists barangay events.
type EventStore interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id int64) (*domain.Event, error)
	Insert(ctx context.Context, event domain.Event) (int64, error)
	Update(ctx context.Context, event domain.Event) (int64, error)
	Delete(ctx context.Context, id int64) error
}
