package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/ports/driven"
)

// settingsStore implements driven.SettingsStore over the single row with id 1.
type settingsStore struct {
	store *Store
}

var _ driven.SettingsStore = (*settingsStore)(nil)

func (s *settingsStore) Get(ctx context.Context) (domain.Settings, error) {
	var st domain.Settings
	err := s.store.db.QueryRowContext(ctx, `
		SELECT barangay, municipality, province, phone, email, logo, municipal_logo
		FROM settings WHERE id = 1
	`).Scan(&st.Barangay, &st.Municipality, &st.Province, &st.Phone, &st.Email, &st.Logo, &st.MunicipalLogo)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Settings{}, nil
	}
	if err != nil {
		return domain.Settings{}, mapError("fetch settings", err)
	}
	return st, nil
}

func (s *settingsStore) Save(ctx context.Context, st domain.Settings) error {
	_, err := exec(ctx, s.store.db, "save settings", `
		INSERT INTO settings (id, barangay, municipality, province, phone, email, logo, municipal_logo)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			barangay = excluded.barangay,
			municipality = excluded.municipality,
			province = excluded.province,
			phone = excluded.phone,
			email = excluded.email,
			logo = excluded.logo,
			municipal_logo = excluded.municipal_logo
	`, st.Barangay, st.Municipality, st.Province, st.Phone, st.Email, st.Logo, st.MunicipalLogo)
	return err
}
