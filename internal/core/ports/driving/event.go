package driving

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// EventService manages barangay events.
type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	Save(ctx context.Context, event domain.Event) (int64, error)
	Delete(ctx context.Context, id int64) error
}
