package extract

import (
	"math"
	"strconv"
	"strings"
)

// parseNumeral strips grouping characters (commas, spaces, currency marks)
// from a numeral token and parses what remains. The boolean is false when
// nothing parseable is left.
func parseNumeral(tok string) (float64, bool) {
	t := strings.TrimSpace(tok)
	switch strings.ToLower(t) {
	case "", "nan", "none":
		return 0, false
	}
	var b strings.Builder
	for _, r := range t {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseAmount coerces a numeral token ("1,234.50", "1 180") to a float,
// returning def when the token carries no parseable number. Never fails.
func ParseAmount(tok string, def float64) float64 {
	v, ok := parseNumeral(tok)
	if !ok {
		return def
	}
	return v
}

// ParseOptionalAmount is ParseAmount with "absent" instead of a default,
// for call sites where zero and missing must stay distinct.
func ParseOptionalAmount(tok string) *float64 {
	v, ok := parseNumeral(tok)
	if !ok {
		return nil
	}
	return &v
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
