package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// parseMoney reads v as a non-negative monetary amount. Checkout clients
// send numeric fields as JSON numbers or strings interchangeably.
func parseMoney(v any) (decimal.Decimal, bool) {
	var d decimal.Decimal
	switch n := v.(type) {
	case float64:
		d = decimal.NewFromFloat(n)
	case float32:
		d = decimal.NewFromFloat32(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case json.Number:
		parsed, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		d = parsed
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Decimal{}, false
		}
		d = parsed
	default:
		return decimal.Decimal{}, false
	}
	if d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}

// parseMoneyOrDefault resolves v to a monetary amount, falling back to def
// when v is absent, malformed or negative.
func parseMoneyOrDefault(v any, def decimal.Decimal) decimal.Decimal {
	if d, ok := parseMoney(v); ok {
		return d
	}
	return def
}

// parseQuantityOrDefault resolves v to a positive item count, falling back
// to def otherwise. Fractional counts are truncated.
func parseQuantityOrDefault(v any, def int) int {
	switch n := v.(type) {
	case float64:
		if n >= 1 {
			return int(n)
		}
	case int:
		if n >= 1 {
			return n
		}
	case int64:
		if n >= 1 {
			return int(n)
		}
	case json.Number:
		if q, err := n.Int64(); err == nil && q >= 1 {
			return int(q)
		}
	case string:
		if q, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && q >= 1 {
			return q
		}
	}
	return def
}

// trimmedString returns v trimmed when it is a string, else "".
func trimmedString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// stringOrDefault returns v trimmed when it is a non-blank string, else def.
func stringOrDefault(v any, def string) string {
	if s := trimmedString(v); s != "" {
		return s
	}
	return def
}
