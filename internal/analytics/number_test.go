package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	assert.Equal(t, 0.0, ToNumber(nil))
	assert.Equal(t, 42.5, ToNumber(42.5))
	assert.Equal(t, 42.0, ToNumber(42))
	assert.Equal(t, 7.0, ToNumber(int64(7)))
	assert.Equal(t, 3.0, ToNumber(uint8(3)))

	assert.Equal(t, 19.99, ToNumber("19.99"))
	assert.Equal(t, 0.0, ToNumber("not a number"))
	assert.Equal(t, 0.0, ToNumber(""))

	assert.Equal(t, 12.34, ToNumber(json.Number("12.34")))
	assert.Equal(t, 0.0, ToNumber(json.Number("nope")))

	d := decimal.NewFromFloat(99.95)
	assert.Equal(t, 99.95, ToNumber(d))
	assert.Equal(t, 99.95, ToNumber(&d))
	assert.Equal(t, 0.0, ToNumber((*decimal.Decimal)(nil)))
	assert.Equal(t, 0.0, ToNumber(decimal.NullDecimal{}))
	assert.Equal(t, 5.5, ToNumber(decimal.NullDecimal{Decimal: decimal.NewFromFloat(5.5), Valid: true}))

	// arbitrary non-numeric values normalize to zero instead of failing
	assert.Equal(t, 0.0, ToNumber(struct{}{}))
	assert.Equal(t, 0.0, ToNumber([]string{"10"}))
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, now, parseTime(now))
	assert.Equal(t, now, parseTime(&now))

	parsed := parseTime("2024-05-10T12:30:00Z")
	assert.Equal(t, now, parsed)

	assert.True(t, parseTime(nil).IsZero())
	assert.True(t, parseTime("garbage").IsZero())
	assert.True(t, parseTime((*time.Time)(nil)).IsZero())
}
