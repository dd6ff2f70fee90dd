package driving

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// OfficialService manages barangay officials.
type OfficialService interface {
	List(ctx context.Context) ([]domain.Official, error)
	Save(ctx context.Context, official domain.Official) (int64, error)
	Delete(ctx context.Context, id int64) error
}
