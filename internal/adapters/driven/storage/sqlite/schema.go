package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/custodia-labs/barangay-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

// addedColumn is a column introduced after its table first shipped.
type addedColumn struct {
	table      string
	column     string
	definition string
}

// addedColumns converge databases created by earlier releases with the current
// CREATE TABLE statements. Entries are only ever appended.
var addedColumns = []addedColumn{
	{"residents", "prefix", "TEXT NOT NULL DEFAULT ''"},
	{"residents", "source_of_income", "TEXT NOT NULL DEFAULT ''"},
	{"residents", "father_prefix", "TEXT NOT NULL DEFAULT ''"},
	{"residents", "mother_prefix", "TEXT NOT NULL DEFAULT ''"},
	{"residents", "is_solo_parent", "INTEGER NOT NULL DEFAULT 0"},
	{"officials", "image", "TEXT NOT NULL DEFAULT ''"},
	{"blotters", "hearing_date", "TEXT NOT NULL DEFAULT ''"},
	{"settings", "municipal_logo", "TEXT NOT NULL DEFAULT ''"},
}

// renamedColumn is a column that earlier releases stored under another name.
type renamedColumn struct {
	table string
	from  string
	to    string
}

// renamedColumns are applied before addedColumns so a renamed column is never
// added a second time under its new name.
var renamedColumns = []renamedColumn{
	{"blotters", "type_", "type"},
	{"officials", "type_", "type"},
	{"events", "type_", "type"},
}

const (
	// legacyPinTable held map pins before map_pins existed.
	legacyPinTable = "barangay_map"
	// legacyIncomeTable held income transactions before ledger_entries existed.
	legacyIncomeTable = "incomes"
)

// EnsureSchema creates every table and index that does not yet exist, renames
// and adds columns, imports legacy pins and incomes, then checks that every
// column the stores read is present. It runs in one transaction and is safe to
// call on every start. Any failure is a domain.ErrSchema error.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const op = "ensure schema"
	logger.Section("Schema")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.SchemaError(op, fmt.Errorf("beginning transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	if err := applySchemaFiles(ctx, tx, migrations.FS); err != nil {
		return domain.SchemaError(op, err)
	}
	if err := renameColumns(ctx, tx); err != nil {
		return domain.SchemaError(op, err)
	}
	if err := addMissingColumns(ctx, tx); err != nil {
		return domain.SchemaError(op, err)
	}
	if err := importLegacyPins(ctx, tx); err != nil {
		return domain.SchemaError(op, err)
	}
	if err := importLegacyIncomes(ctx, tx); err != nil {
		return domain.SchemaError(op, err)
	}
	if err := verifyColumns(ctx, tx); err != nil {
		return domain.SchemaError(op, err)
	}

	if err := tx.Commit(); err != nil {
		return domain.SchemaError(op, fmt.Errorf("committing schema: %w", err))
	}
	return nil
}

// applySchemaFiles executes every .sql file in fsys in filename order.
func applySchemaFiles(ctx context.Context, tx *sql.Tx, fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading schema files: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("executing %s: %w", name, err)
		}
		logger.Debug("applied %s", name)
	}
	return nil
}

func renameColumns(ctx context.Context, tx *sql.Tx) error {
	for _, c := range renamedColumns {
		hasOld, err := columnExists(ctx, tx, c.table, c.from)
		if err != nil {
			return err
		}
		if !hasOld {
			continue
		}
		hasNew, err := columnExists(ctx, tx, c.table, c.to)
		if err != nil {
			return err
		}
		if hasNew {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s RENAME COLUMN %s TO %s", c.table, c.from, c.to)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("renaming column %s.%s: %w", c.table, c.from, err)
		}
		logger.Info("renamed column %s.%s to %s", c.table, c.from, c.to)
	}
	return nil
}

func addMissingColumns(ctx context.Context, tx *sql.Tx) error {
	for _, c := range addedColumns {
		exists, err := columnExists(ctx, tx, c.table, c.column)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", c.table, c.column, c.definition)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("adding column %s.%s: %w", c.table, c.column, err)
		}
		logger.Info("added column %s.%s", c.table, c.column)
	}
	return nil
}

// importLegacyPins copies pins from barangay_map into a map_pins table that
// has never held a row. Names that collide are skipped. The legacy table is
// left in place.
func importLegacyPins(ctx context.Context, tx *sql.Tx) error {
	legacy, err := tableExists(ctx, tx, legacyPinTable)
	if err != nil || !legacy {
		return err
	}
	used, err := everPopulated(ctx, tx, "map_pins")
	if err != nil || used {
		return err
	}

	// Older layouts lacked some address columns.
	selects := []string{"TRIM(name)", "COALESCE(x, 0)", "COALESCE(y, 0)"}
	for _, col := range []string{"house_number", "zone", "section"} {
		has, err := columnExists(ctx, tx, legacyPinTable, col)
		if err != nil {
			return err
		}
		if has {
			selects = append(selects, fmt.Sprintf("COALESCE(%s, '')", col))
		} else {
			selects = append(selects, "''")
		}
	}

	stmt := fmt.Sprintf(`
		INSERT OR IGNORE INTO map_pins (name, x, y, house_number, zone, section)
		SELECT %s FROM %s
		WHERE name IS NOT NULL AND TRIM(name) <> ''
		ORDER BY rowid
	`, strings.Join(selects, ", "), legacyPinTable)
	res, err := tx.ExecContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("importing legacy pins: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		logger.Info("imported %d pins from %s", n, legacyPinTable)
	}
	return nil
}

// importLegacyIncomes copies rows from incomes into a ledger_entries table that
// has never held a row. Amounts were stored in pesos and become centavos.
func importLegacyIncomes(ctx context.Context, tx *sql.Tx) error {
	legacy, err := tableExists(ctx, tx, legacyIncomeTable)
	if err != nil || !legacy {
		return err
	}
	used, err := everPopulated(ctx, tx, "ledger_entries")
	if err != nil || used {
		return err
	}

	typeColumn := "type"
	hasOld, err := columnExists(ctx, tx, legacyIncomeTable, "type_")
	if err != nil {
		return err
	}
	if hasOld {
		typeColumn = "type_"
	}

	stmt := fmt.Sprintf(`
		INSERT INTO ledger_entries
			(kind, type, category, amount_centavos, reference_number, counterparty, handled_by, date)
		SELECT 'income', COALESCE(%s, ''), COALESCE(category, ''),
			CAST(ROUND(COALESCE(amount, 0) * 100) AS INTEGER),
			COALESCE(CAST(or_number AS TEXT), ''), COALESCE(received_from, ''),
			COALESCE(received_by, ''), COALESCE(date, '')
		FROM %s
		ORDER BY id
	`, typeColumn, legacyIncomeTable)
	res, err := tx.ExecContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("importing legacy incomes: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		logger.Info("imported %d ledger entries from %s", n, legacyIncomeTable)
	}
	return nil
}

// everPopulated reports whether an AUTOINCREMENT table has ever held a row.
// sqlite_sequence keeps its entry after every row is deleted.
func everPopulated(ctx context.Context, q queryer, table string) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_sequence WHERE name = ?", table,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("reading sequence of %s: %w", table, err)
	}
	return n > 0, nil
}

// requiredColumns lists, per table, the columns the stores read and write.
func requiredColumns() map[string][]string {
	return map[string][]string{
		"settings":       {"barangay", "municipality", "province", "phone", "email", "logo", "municipal_logo"},
		"residents":      residentColumns,
		"map_pins":       mapPinColumns,
		"officials":      officialColumns,
		"blotters":       blotterColumns,
		"ledger_entries": ledgerColumns,
		"events":         eventColumns,
	}
}

// verifyColumns fails when a table still lacks a column after convergence,
// which happens when an existing table predates every known layout.
func verifyColumns(ctx context.Context, tx *sql.Tx) error {
	tables := requiredColumns()
	names := make([]string, 0, len(tables))
	for table := range tables {
		names = append(names, table)
	}
	sort.Strings(names)

	var missing []string
	for _, table := range names {
		for _, column := range tables[table] {
			ok, err := columnExists(ctx, tx, table, column)
			if err != nil {
				return err
			}
			if !ok {
				missing = append(missing, table+"."+column)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

func tableExists(ctx context.Context, q queryer, table string) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking table %s: %w", table, err)
	}
	return n > 0, nil
}

func columnExists(ctx context.Context, q queryer, table, column string) (bool, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("reading columns of %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, fmt.Errorf("scanning columns of %s: %w", table, err)
		}
		if strings.EqualFold(name, column) {
			return true, nil
		}
	}
	return false, rows.Err()
}
