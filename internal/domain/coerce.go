package domain

import (
	"math"
	"strconv"
	"strings"
)

var truthy = map[string]bool{
	"1":    true,
	"true": true,
	"yes":  true,
	"y":    true,
	"on":   true,
}

// Coerce converts raw user text into a node of the same kind as original.
// It never fails: numeric text that does not parse is kept as a string.
func Coerce(original *Node, raw string) *Node {
	if original == nil {
		return String(raw)
	}

	switch original.Kind() {
	case KindBool:
		return Bool(truthy[strings.ToLower(strings.TrimSpace(raw))])

	case KindInt:
		text := strings.TrimSpace(raw)
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(i)
		}
		if f, ok := parseFinite(text); ok {
			t := math.Trunc(f)
			if t >= math.MinInt64 && t < math.MaxInt64 {
				return Int(int64(t))
			}
		}
		return String(raw)

	case KindFloat:
		if f, ok := parseFinite(strings.TrimSpace(raw)); ok {
			return Float(f)
		}
		return String(raw)

	case KindList:
		return Strings(SplitList(raw)...)

	default:
		return String(raw)
	}
}

// SplitList splits comma separated text, trimming pieces and dropping
// empty ones
func SplitList(raw string) []string {
	var out []string
	for _, piece := range strings.Split(raw, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// parseFinite rejects NaN and infinities, which cannot be written as JSON
func parseFinite(text string) (float64, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
