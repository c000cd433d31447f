package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse classifies a single literal token into a value. Classification
// order, first match wins:
//
//   - a token wrapped in matching single or double quotes yields the
//     enclosed text verbatim (no escape handling)
//   - null (case-insensitive) yields nil
//   - true/false (case-insensitive) yield booleans
//   - anything that parses as a number yields a float64
//   - everything else is returned as a raw string
func Parse(token string) any {
	s := strings.TrimSpace(token)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	switch strings.ToLower(s) {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Format renders a value as display text. Numbers print without a
// trailing ".0" so an inserted literal round-trips to the same text.
func Format(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Numeric reports the numeric reading of a value: numbers are themselves,
// booleans read as 1/0, strings qualify when they parse as a number.
func Numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// Equal is the coercive equality used by the predicate evaluator and the
// duplicate-key check. Two strings compare verbatim; a number and a
// numeric-valued string compare numerically; booleans compare as 1/0;
// null equals only null. The final fallback compares display text.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as == bs
		}
	}
	if na, aok := Numeric(a); aok {
		if nb, bok := Numeric(b); bok {
			return na == nb
		}
	}
	return Format(a) == Format(b)
}

// Compare orders a against b for the <, >, <= and >= operators. ok is
// false when either side is null: every ordering against null is false.
// Two strings order by code point; values with numeric readings order
// numerically; anything else falls back to display-text order, which is
// deterministic even for mismatched kinds.
func Compare(a, b any) (cmp int, ok bool) {
	if a == nil || b == nil {
		return 0, false
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return strings.Compare(as, bs), true
		}
	}
	if na, aok := Numeric(a); aok {
		if nb, bok := Numeric(b); bok {
			switch {
			case na < nb:
				return -1, true
			case na > nb:
				return 1, true
			}
			return 0, true
		}
	}
	return strings.Compare(Format(a), Format(b)), true
}
