package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// recordedQuery is one statement seen by fakeDB.
type recordedQuery struct {
	SQL  string
	Args []any
}

// fakeDB is an in-memory DBTX. respond decides what each statement
// returns; every call is recorded for later assertions.
type fakeDB struct {
	respond func(sql string, args []any) ([][]any, error)
	queries []recordedQuery
}

func newFakeDB(respond func(sql string, args []any) ([][]any, error)) *fakeDB {
	return &fakeDB{respond: respond}
}

// returning builds a fakeDB that answers every statement with rows.
func returning(rows ...[]any) *fakeDB {
	return newFakeDB(func(string, []any) ([][]any, error) { return rows, nil })
}

// failing builds a fakeDB whose statements all fail with err.
func failing(err error) *fakeDB {
	return newFakeDB(func(string, []any) ([][]any, error) { return nil, err })
}

func (f *fakeDB) last() recordedQuery {
	return f.queries[len(f.queries)-1]
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, recordedQuery{SQL: sql, Args: args})
	if _, err := f.respond(sql, args); err != nil {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag("EXEC"), nil
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, recordedQuery{SQL: sql, Args: args})
	data, err := f.respond(sql, args)
	if err != nil {
		return nil, err
	}
	return &fakeRows{data: data}, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	rows, err := f.Query(ctx, sql, args...)
	if err != nil {
		return errRow{err: err}
	}
	return rowFromRows{rows: rows}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type rowFromRows struct{ rows pgx.Rows }

func (r rowFromRows) Scan(dest ...any) error {
	defer r.rows.Close()
	if !r.rows.Next() {
		return pgx.ErrNoRows
	}
	return r.rows.Scan(dest...)
}

// fakeRows implements pgx.Rows over literal values. Scan assigns each
// value to its destination, converting between compatible kinds.
type fakeRows struct {
	data   [][]any
	idx    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.closed || r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.idx-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("fake scan: %d destinations for %d values", len(dest), len(row))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d).Elem()
		sv := reflect.ValueOf(row[i])
		if !sv.Type().ConvertibleTo(dv.Type()) {
			return fmt.Errorf("fake scan: column %d: cannot assign %s to %s", i, sv.Type(), dv.Type())
		}
		dv.Set(sv.Convert(dv.Type()))
	}
	return nil
}
