package analytics

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ToNumber coerces heterogeneous numeric representations into a float64.
// It accepts nil (-> 0), native numeric types, numeric strings and
// decimal-like values; anything unparseable normalizes to 0. The silent-zero
// policy is intentional: malformed upstream financial data must not abort
// the whole report.
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		return parseFloat(n.String())
	case string:
		return parseFloat(n)
	case decimal.Decimal:
		return n.InexactFloat64()
	case *decimal.Decimal:
		if n == nil {
			return 0
		}
		return n.InexactFloat64()
	case decimal.NullDecimal:
		if !n.Valid {
			return 0
		}
		return n.Decimal.InexactFloat64()
	}
	// Decimal-likes outside the known set: a "to number" conversion first,
	// then a generic stringer re-parsed.
	if f, ok := v.(interface{ Float64() (float64, error) }); ok {
		n, err := f.Float64()
		if err != nil {
			return 0
		}
		return n
	}
	if s, ok := v.(fmt.Stringer); ok {
		return parseFloat(s.String())
	}
	return 0
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// timeLayouts covers the creation-timestamp encodings seen in snapshots.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime normalizes a snapshot timestamp; absent or unparseable values
// become the zero time, which no period window ever includes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	case *time.Time:
		if t == nil {
			return time.Time{}
		}
		return *t
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
