// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch and persist users,
// properties and reservations, abstracting SQL logic away from the
// service layer.
//
// Every method issues exactly one statement. Repositories never swallow
// errors: a missing row surfaces as ErrNotFound, anything else is the
// wrapped driver error.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of the pgx API the repositories need.
//
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it, so callers decide
// whether a repository runs on the pool or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ DBTX = (*pgxpool.Pool)(nil)
	_ DBTX = (*pgx.Conn)(nil)
	_ DBTX = (pgx.Tx)(nil)
)

// ErrNotFound is the absence marker of single-row lookups. It wraps
// pgx.ErrNoRows so errors.Is works against either.
var ErrNotFound = fmt.Errorf("record not found: %w", pgx.ErrNoRows)

// DefaultLimit bounds list operations when the caller passes no limit.
const DefaultLimit = 10

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// notFoundOr maps pgx.ErrNoRows to ErrNotFound and tags the error with the
// table name. The "table:<name>:" marker is read by sqlerr.HandleError to
// name the missing entity in the client message.
func notFoundOr(err error, table, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s table:%s: %w", op, table, ErrNotFound)
	}
	return fmt.Errorf("%s table:%s: %w", op, table, err)
}
