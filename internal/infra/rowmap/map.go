package rowmap

import (
	"errors"
	"fmt"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

// Map coerces values into a Record. Extra trailing values are ignored; fewer
// values than declared columns is an error.
func Map(schema Schema, values []any) (Record, error) {
	if len(values) < len(schema) {
		return Record{}, fmt.Errorf("%w: got %d columns, want at least %d",
			errs.ErrRowMappingFailed, len(values), len(schema))
	}

	out := make([]any, len(schema))
	for i, col := range schema {
		v, err := coerce(col, values[i])
		if err != nil {
			return Record{}, fmt.Errorf("%w: column %q: %w", errs.ErrRowMappingFailed, col.Name, err)
		}
		out[i] = v
	}
	return Record{schema: schema, values: out}, nil
}

func coerce(col Column, v any) (any, error) {
	if pgconv.IsNull(v) {
		if col.Null.hasDefault {
			return col.Null.value, nil
		}
		return nil, nil
	}

	switch col.Kind {
	case Text:
		return pgconv.ToString(v)
	case Int:
		return pgconv.ToInt32(v)
	case Decimal:
		return pgconv.ToDecimal(v)
	case Bool:
		return pgconv.ToBool(v)
	case Timestamp:
		return pgconv.ToTime(v)
	}
	return nil, fmt.Errorf("unknown kind %s", col.Kind)
}

// Collect maps every row in store order and closes rows. The result is never nil.
func Collect(rows pgx.Rows, schema Schema) ([]Record, error) {
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Record, error) {
		values, err := row.Values()
		if err != nil {
			return Record{}, err
		}
		return Map(schema, values)
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// First maps the first row only and closes rows. ok is false when there are no rows.
func First(rows pgx.Rows, schema Schema) (rec Record, ok bool, err error) {
	rec, err = pgx.CollectOneRow(rows, func(row pgx.CollectableRow) (Record, error) {
		values, err := row.Values()
		if err != nil {
			return Record{}, err
		}
		return Map(schema, values)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}
