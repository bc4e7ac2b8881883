//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errScanUnsupported = errors.New("dbtest: Scan is not supported, use Values")

// Rows is an in-memory pgx.Rows over untyped values.
type Rows struct {
	data   [][]any
	pos    int
	err    error
	closed bool
}

func NewRows(data ...[]any) *Rows {
	return &Rows{data: data}
}

// WithErr makes Err report err once iteration has finished.
func (r *Rows) WithErr(err error) *Rows {
	r.err = err
	return r
}

func (r *Rows) Closed() bool { return r.closed }

func (r *Rows) Close() { r.closed = true }

func (r *Rows) Err() error { return r.err }

func (r *Rows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *Rows) Next() bool {
	if r.closed || r.pos >= len(r.data) {
		r.closed = true
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error { return errScanUnsupported }

func (r *Rows) Values() ([]any, error) {
	if r.pos == 0 {
		return nil, errors.New("dbtest: Values called before Next")
	}
	return r.data[r.pos-1], nil
}

func (r *Rows) RawValues() [][]byte { return nil }

func (r *Rows) Conn() *pgx.Conn { return nil }

// Call is one statement sent to a Stub.
type Call struct {
	SQL  string
	Args []any
}

// DBLike is what the fixtures write through. *pgxpool.Pool, pgx.Tx and Stub
// all satisfy it.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Stub is a query handle that answers every Query with Rows or QueryErr and
// records what it was sent.
type Stub struct {
	Rows     *Rows
	QueryErr error
	Calls    []Call
}

func (s *Stub) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.Calls = append(s.Calls, Call{SQL: sql, Args: args})
	return pgconn.NewCommandTag("SELECT 0"), s.QueryErr
}

func (s *Stub) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.Calls = append(s.Calls, Call{SQL: sql, Args: args})
	if s.QueryErr != nil {
		return nil, s.QueryErr
	}
	if s.Rows == nil {
		return NewRows(), nil
	}
	return s.Rows, nil
}

func (s *Stub) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	s.Calls = append(s.Calls, Call{SQL: sql, Args: args})
	return stubRow{err: s.QueryErr}
}

// LastCall returns the most recent statement, or a zero Call.
func (s *Stub) LastCall() Call {
	if len(s.Calls) == 0 {
		return Call{}
	}
	return s.Calls[len(s.Calls)-1]
}

type stubRow struct{ err error }

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return pgx.ErrNoRows
}
