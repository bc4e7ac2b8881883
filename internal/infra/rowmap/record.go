package rowmap

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Record is one mapped row. Values are nil or the Go type of their column kind.
type Record struct {
	schema Schema
	values []any
}

// Values returns the mapped values in schema order.
func (r Record) Values() []any {
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

func (r Record) Len() int {
	return len(r.values)
}

func (r Record) IsNull(name string) bool {
	return r.lookup(name, 0) == nil
}

func (r Record) Text(name string) *string {
	v, ok := r.lookup(name, Text).(string)
	if !ok {
		return nil
	}
	return &v
}

func (r Record) Int(name string) *int32 {
	v, ok := r.lookup(name, Int).(int32)
	if !ok {
		return nil
	}
	return &v
}

func (r Record) Decimal(name string) *decimal.Decimal {
	v, ok := r.lookup(name, Decimal).(decimal.Decimal)
	if !ok {
		return nil
	}
	return &v
}

func (r Record) Bool(name string) *bool {
	v, ok := r.lookup(name, Bool).(bool)
	if !ok {
		return nil
	}
	return &v
}

func (r Record) Time(name string) *time.Time {
	v, ok := r.lookup(name, Timestamp).(time.Time)
	if !ok {
		return nil
	}
	return &v
}

// lookup panics on names outside the schema or a kind mismatch: both are
// programming errors in the caller, not data errors.
func (r Record) lookup(name string, want Kind) any {
	i, ok := r.schema.index(name)
	if !ok {
		panic(fmt.Sprintf("rowmap: column %q is not declared", name))
	}
	if want != 0 && r.schema[i].Kind != want {
		panic(fmt.Sprintf("rowmap: column %q is %s, read as %s", name, r.schema[i].Kind, want))
	}
	return r.values[i]
}
