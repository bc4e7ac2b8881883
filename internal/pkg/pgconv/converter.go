// Package pgconv coerces the loosely typed values returned by pgx (rows.Values())
// into the Go types the gateway exposes. Every function treats SQL NULL, whether a
// bare nil or a pgtype wrapper with Valid=false, through IsNull; callers check
// IsNull first and only then convert.
package pgconv

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var (
	ErrUnsupportedType = errors.New("unsupported column type")
	ErrOutOfRange      = errors.New("value out of int32 range")
	ErrNotFinite       = errors.New("numeric value is not finite")
)

// IsNull reports whether v represents SQL NULL.
func IsNull(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case pgtype.Numeric:
		return !x.Valid
	case pgtype.Int2:
		return !x.Valid
	case pgtype.Int4:
		return !x.Valid
	case pgtype.Int8:
		return !x.Valid
	case pgtype.Float4:
		return !x.Valid
	case pgtype.Float8:
		return !x.Valid
	case pgtype.Text:
		return !x.Valid
	case pgtype.Bool:
		return !x.Valid
	case pgtype.Date:
		return !x.Valid
	case pgtype.Timestamp:
		return !x.Valid
	case pgtype.Timestamptz:
		return !x.Valid
	}
	return false
}

// ToDecimal converts any numeric-like value to an exact decimal.
// pgtype.Numeric is converted from its integer mantissa and exponent so no
// binary floating point is involved.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case pgtype.Numeric:
		return numericToDecimal(x)
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int8:
		return decimal.NewFromInt(int64(x)), nil
	case int16:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint8:
		return decimal.NewFromInt(int64(x)), nil
	case uint16:
		return decimal.NewFromInt(int64(x)), nil
	case uint32:
		return decimal.NewFromInt(int64(x)), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0), nil
	case float32:
		return floatToDecimal(float64(x))
	case float64:
		return floatToDecimal(x)
	case pgtype.Int2:
		return decimal.NewFromInt(int64(x.Int16)), nil
	case pgtype.Int4:
		return decimal.NewFromInt32(x.Int32), nil
	case pgtype.Int8:
		return decimal.NewFromInt(x.Int64), nil
	case pgtype.Float4:
		return floatToDecimal(float64(x.Float32))
	case pgtype.Float8:
		return floatToDecimal(x.Float64)
	case string:
		return decimal.NewFromString(strings.TrimSpace(x))
	case []byte:
		return decimal.NewFromString(strings.TrimSpace(string(x)))
	case pgtype.Text:
		return decimal.NewFromString(strings.TrimSpace(x.String))
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %T as decimal", ErrUnsupportedType, v)
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Decimal{}, ErrNotFinite
	}
	if n.Int == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

func floatToDecimal(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, ErrNotFinite
	}
	return decimal.NewFromFloat(f), nil
}

// ToInt32 converts any numeric-like value to int32, truncating toward zero.
func ToInt32(v any) (int32, error) {
	switch x := v.(type) {
	case int32:
		return x, nil
	case int16:
		return int32(x), nil
	case int8:
		return int32(x), nil
	case uint8:
		return int32(x), nil
	case uint16:
		return int32(x), nil
	case pgtype.Int2:
		return int32(x.Int16), nil
	case pgtype.Int4:
		return x.Int32, nil
	}

	d, err := ToDecimal(v)
	if err != nil {
		return 0, err
	}
	whole := d.Truncate(0)
	if whole.LessThan(decimal.NewFromInt32(math.MinInt32)) || whole.GreaterThan(decimal.NewFromInt32(math.MaxInt32)) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, d.String())
	}
	return int32(whole.IntPart()), nil
}

// ToString renders text-like values. Numbers and other scalars use their
// canonical text form so a loosely typed column still maps to a name.
func ToString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case pgtype.Text:
		return x.String, nil
	case decimal.Decimal:
		return x.String(), nil
	case pgtype.Numeric:
		d, err := numericToDecimal(x)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	case time.Time:
		return x.Format(time.RFC3339), nil
	case fmt.Stringer:
		return x.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(x), nil
	}
	return "", fmt.Errorf("%w: %T as text", ErrUnsupportedType, v)
}

func ToBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case pgtype.Bool:
		return x.Bool, nil
	case string:
		return parseBool(x)
	case []byte:
		return parseBool(string(x))
	case int16, int32, int64, int:
		n, err := ToInt32(x)
		if err != nil {
			return false, err
		}
		return n != 0, nil
	}
	return false, fmt.Errorf("%w: %T as bool", ErrUnsupportedType, v)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "true", "1", "y", "yes", "on":
		return true, nil
	case "f", "false", "0", "n", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q as bool", ErrUnsupportedType, s)
}

func ToTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case pgtype.Timestamptz:
		return x.Time, nil
	case pgtype.Timestamp:
		return x.Time, nil
	case pgtype.Date:
		return x.Time, nil
	case string:
		return parseTime(x)
	case []byte:
		return parseTime(string(x))
	}
	return time.Time{}, fmt.Errorf("%w: %T as timestamp", ErrUnsupportedType, v)
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999Z07:00", "2006-01-02 15:04:05.999999999", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q as timestamp", ErrUnsupportedType, s)
}
