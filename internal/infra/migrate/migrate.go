// Package migrate applies ordered .sql files to PostgreSQL, recording each
// applied file in schema_migrations.
package migrate

import (
	"context"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/db"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type Migration struct {
	Version string // file name without extension
	SQL     string
}

// Load reads every *.sql file of fsys in lexical order.
func Load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errs.Wrapf(err, "read %s", name)
		}
		out = append(out, Migration{
			Version: strings.TrimSuffix(path.Base(name), ".sql"),
			SQL:     string(b),
		})
	}
	return out, nil
}

// Pending returns the migrations not yet recorded.
func Pending(ctx context.Context, conn db.DBTX, all []Migration) ([]Migration, error) {
	if _, err := conn.Exec(ctx, createTableSQL); err != nil {
		return nil, errs.Wrap(err, "create schema_migrations")
	}

	rows, err := conn.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, errs.Wrap(err, "list applied migrations")
	}
	applied, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errs.Wrap(err, "list applied migrations")
	}

	done := make(map[string]struct{}, len(applied))
	for _, v := range applied {
		done[v] = struct{}{}
	}

	var pending []Migration
	for _, m := range all {
		if _, ok := done[m.Version]; !ok {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// Up applies each pending migration in its own transaction and returns the
// versions applied.
func Up(ctx context.Context, beginner interface {
	shared.TxBeginner
	db.DBTX
}, fsys fs.FS) ([]string, error) {
	all, err := Load(fsys)
	if err != nil {
		return nil, err
	}
	pending, err := Pending(ctx, beginner, all)
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(pending))
	for _, m := range pending {
		err := shared.RunInTx(ctx, beginner, pgx.TxOptions{}, func(ctx context.Context, tx db.DBTX) error {
			if _, err := tx.Exec(ctx, m.SQL); err != nil {
				return errs.Wrapf(err, "apply %s", m.Version)
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version)
			return err
		})
		if err != nil {
			return applied, err
		}
		slog.Info("migration applied", "version", m.Version)
		applied = append(applied, m.Version)
	}
	return applied, nil
}
