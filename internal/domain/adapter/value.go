package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Decode parses an upstream JSON body into the untyped form the adapters work
// on. Numbers are kept as json.Number so amounts are summed without float
// rounding.
func Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// truthy reports whether v would pass a JavaScript truthiness test, which is
// the rule the legacy contract was written against.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t != ""
		}
		return f != 0 && !math.IsNaN(f)
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToFloat64(t) != 0
	}
	return true
}

// toDecimal coerces a JSON value into an amount. Anything that is not a
// number, or a string holding one, counts as zero.
func toDecimal(v any) decimal.Decimal {
	d, ok := parseDecimal(v)
	if !ok {
		return decimal.Zero
	}
	return d
}

// Bounds on accepted numbers. Decimal arithmetic rescales to the exponent, so
// an unbounded exponent costs memory proportional to its value.
const (
	maxNumberLen = 128
	maxExponent  = 64
)

func parseDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return t, inRange(t)
	case json.Number:
		return parseNumber(t.String())
	case string:
		return parseNumber(strings.TrimSpace(t))
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || !finite(f) {
		return decimal.Zero, false
	}
	d := decimal.NewFromFloat(f)
	return d, inRange(d)
}

func parseNumber(s string) (decimal.Decimal, bool) {
	if s == "" || len(s) > maxNumberLen {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !inRange(d) {
		return decimal.Zero, false
	}
	return d, true
}

func inRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp >= -maxExponent && exp <= maxExponent
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func toText(v any) string {
	if v == nil {
		return ""
	}
	if n, ok := v.(json.Number); ok {
		return n.String()
	}
	return cast.ToString(v)
}

func asRecord(v any) map[string]any {
	rec, _ := v.(map[string]any)
	return rec
}
