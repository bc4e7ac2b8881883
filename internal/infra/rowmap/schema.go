// Package rowmap turns the untyped column values of a result row into a
// Record through a declared Schema. Columns are matched by position; trailing
// columns beyond the schema are ignored.
package rowmap

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Kind int

const (
	Text Kind = iota + 1
	Int
	Decimal
	Bool
	Timestamp
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Int:
		return "int"
	case Decimal:
		return "decimal"
	case Bool:
		return "bool"
	case Timestamp:
		return "timestamp"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// NullPolicy decides what a NULL column becomes. The zero value keeps NULL.
type NullPolicy struct {
	value      any
	hasDefault bool
}

func Keep() NullPolicy {
	return NullPolicy{}
}

// Default replaces NULL with v. v must have the Go type of the column's kind
// (string, int32, decimal.Decimal, bool or time.Time).
func Default(v any) NullPolicy {
	return NullPolicy{value: v, hasDefault: true}
}

type Column struct {
	Name string
	Kind Kind
	Null NullPolicy
}

type Schema []Column

func (s Schema) index(name string) (int, bool) {
	for i, c := range s {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Validate checks names are unique and defaults match their column kind.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, c := range s {
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = struct{}{}

		if !c.Null.hasDefault {
			continue
		}
		if !kindAccepts(c.Kind, c.Null.value) {
			return fmt.Errorf("column %q: default %T does not fit %s", c.Name, c.Null.value, c.Kind)
		}
	}
	return nil
}

func kindAccepts(k Kind, v any) bool {
	switch v.(type) {
	case string:
		return k == Text
	case int32:
		return k == Int
	case decimal.Decimal:
		return k == Decimal
	case bool:
		return k == Bool
	case time.Time:
		return k == Timestamp
	}
	return false
}
