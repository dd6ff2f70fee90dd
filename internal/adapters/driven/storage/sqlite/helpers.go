package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// queryAll runs query and scans every row. An empty result is an empty, non-nil slice.
func queryAll[T any](ctx context.Context, q queryer, op, query string, scan func(scanner) (T, error), args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, fmt.Errorf("querying: %w", err))
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, mapError(op, fmt.Errorf("scanning: %w", err))
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, fmt.Errorf("iterating: %w", err))
	}
	return out, nil
}

// queryOne scans a single row; a missing row is reported as not found.
func queryOne[T any](ctx context.Context, q queryer, op, what string, id int64, query string, scan func(scanner) (T, error)) (*T, error) {
	v, err := scan(q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf(op, "no %s with id %d", what, id)
	}
	if err != nil {
		return nil, mapError(op, err)
	}
	return &v, nil
}

// insert runs an INSERT and returns the new row ID.
func insert(ctx context.Context, q queryer, op, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, mapError(op, fmt.Errorf("reading inserted id: %w", err))
	}
	return id, nil
}

// exec runs a statement and returns the affected row count.
func exec(ctx context.Context, q queryer, op, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(op, fmt.Errorf("reading affected rows: %w", err))
	}
	return n, nil
}

// columnList renders "a, b, c".
func columnList(cols []string) string {
	return strings.Join(cols, ", ")
}

// placeholders renders "?, ?, ?" for n values.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// assignments renders "a = ?, b = ?" for an UPDATE.
func assignments(cols []string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " = ?"
	}
	return strings.Join(parts, ", ")
}

// crudSQL holds the statements for a table with an INTEGER id and the given data columns.
type crudSQL struct {
	list, get, insert, update, delete string
}

func newCRUD(table string, cols []string) crudSQL {
	selectCols := "id, " + columnList(cols)
	return crudSQL{
		list:   fmt.Sprintf("SELECT %s FROM %s ORDER BY id", selectCols, table),
		get:    fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", selectCols, table),
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, columnList(cols), placeholders(len(cols))),
		update: fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, assignments(cols)),
		delete: fmt.Sprintf("DELETE FROM %s WHERE id = ?", table),
	}
}

// nullableString maps a nil pointer to SQL NULL.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// stringPtr maps SQL NULL to a nil pointer.
func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
