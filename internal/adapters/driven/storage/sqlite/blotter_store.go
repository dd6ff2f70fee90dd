package sqlite

import (
	"context"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

var blotterColumns = []string{
	"type", "reported_by", "involved", "incident_date", "location", "zone",
	"status", "narrative", "action", "witnesses", "evidence", "resolution", "hearing_date",
}

var blotterSQL = newCRUD("blotters", blotterColumns)

// blotterPatchSQL leaves a column unchanged when its argument is NULL.
const blotterPatchSQL = `
	UPDATE blotters SET
		status = COALESCE(?, status),
		narrative = COALESCE(?, narrative),
		action = COALESCE(?, action),
		resolution = COALESCE(?, resolution),
		hearing_date = COALESCE(?, hearing_date)
	WHERE id = ?
`

// blotterStore implements driven.BlotterStore.
type blotterStore struct {
	store *Store
}

var _ driven.BlotterStore = (*blotterStore)(nil)

func (s *blotterStore) List(ctx context.Context) ([]domain.Blotter, error) {
	return queryAll(ctx, s.store.db, "fetch blotters", blotterSQL.list, scanBlotter)
}

func (s *blotterStore) Get(ctx context.Context, id int64) (*domain.Blotter, error) {
	return queryOne(ctx, s.store.db, "get blotter", "blotter", id, blotterSQL.get, scanBlotter)
}

func (s *blotterStore) Insert(ctx context.Context, b domain.Blotter) (int64, error) {
	return insert(ctx, s.store.db, "insert blotter", blotterSQL.insert, blotterArgs(&b)...)
}

func (s *blotterStore) Update(ctx context.Context, b domain.Blotter) (int64, error) {
	args := append(blotterArgs(&b), b.ID)
	return exec(ctx, s.store.db, "update blotter", blotterSQL.update, args...)
}

func (s *blotterStore) Patch(ctx context.Context, id int64, p domain.BlotterPatch) (int64, error) {
	var status *string
	if p.Status != nil {
		v := string(*p.Status)
		status = &v
	}
	return exec(ctx, s.store.db, "update blotter case", blotterPatchSQL,
		nullableString(status), nullableString(p.Narrative), nullableString(p.Action),
		nullableString(p.Resolution), nullableString(p.HearingDate), id)
}

func (s *blotterStore) Delete(ctx context.Context, id int64) error {
	_, err := exec(ctx, s.store.db, "delete blotter", blotterSQL.delete, id)
	return err
}

func blotterArgs(b *domain.Blotter) []any {
	return []any{
		b.Type, b.ReportedBy, b.Involved, b.IncidentDate, b.Location, b.Zone,
		string(b.Status), b.Narrative, b.Action, b.Witnesses, b.Evidence, b.Resolution, b.HearingDate,
	}
}

func scanBlotter(sc scanner) (domain.Blotter, error) {
	var (
		b      domain.Blotter
		status string
	)
	err := sc.Scan(&b.ID, &b.Type, &b.ReportedBy, &b.Involved, &b.IncidentDate, &b.Location, &b.Zone,
		&status, &b.Narrative, &b.Action, &b.Witnesses, &b.Evidence, &b.Resolution, &b.HearingDate)
	b.Status = domain.BlotterStatus(status)
	return b, err
}
