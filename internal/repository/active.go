// Package repository contains data access logic separated from HTTP handlers.
// Listing queries return driver errors untouched so callers can surface the
// store's own message.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// rowScanner is the subset of *sql.Rows used by scan callbacks.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryActive runs q and collects one T per row.  The result is never nil so
// an empty table yields an empty slice.
func queryActive[T any](ctx context.Context, db *sql.DB, timeout time.Duration, q string, scan func(rowScanner) (T, error)) ([]T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
