package driven

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// OfficialStore persists barangay officials.
type OfficialStore interface {
	List(ctx context.Context) ([]domain.Official, error)
	Get(ctx context.Context, id int64) (*domain.Official, error)
	Insert(ctx context.Context, official domain.Official) (int64, error)
	Update(ctx context.Context, official domain.Official) (int64, error)
	Delete(ctx context.Context, id int64) error
}
