// Package repo contains all database access logic for the muniboard API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// dateFromPG converts a pgtype.Date into a civil domain.Date.
// The driver hands back a time.Time at UTC midnight; only the calendar
// components are kept.
func dateFromPG(d pgtype.Date) domain.Date {
	if !d.Valid {
		return domain.Date{}
	}
	y, m, day := d.Time.Date()
	return domain.Date{Year: y, Month: m, Day: day}
}

// datePtrFromPG is dateFromPG for nullable columns.
func datePtrFromPG(d pgtype.Date) *domain.Date {
	if !d.Valid {
		return nil
	}
	out := dateFromPG(d)
	return &out
}

// pgFromDate converts a civil date to the time.Time pgx expects for a date
// column. UTC midnight round-trips loss-free because the column has no zone.
func pgFromDate(d domain.Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// pgFromDatePtr is pgFromDate for nullable columns: nil becomes NULL.
func pgFromDatePtr(d *domain.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return pgFromDate(*d)
}
