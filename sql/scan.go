package sql

import "strings"

// SplitList splits a comma-separated list into trimmed tokens. Text
// between an opening quote and its matching closing quote of the same
// kind is inert: commas inside it never act as separators. Quotes are
// preserved in the returned tokens so the value parser sees them.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	var current strings.Builder
	var quote byte

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
			current.WriteByte(ch)
		case ch == '\'' || ch == '"':
			quote = ch
			current.WriteByte(ch)
		case ch == ',':
			out = append(out, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	return append(out, strings.TrimSpace(current.String()))
}

// keywordIndex returns the byte offset of the first occurrence of kw as a
// bare word outside quoted text, or -1. Matching is case-insensitive; a
// word boundary is the string edge, whitespace or a parenthesis.
func keywordIndex(s, kw string) int {
	var quote byte
	n := len(kw)
	for i := 0; i+n <= len(s); i++ {
		ch := s[i]
		if quote != 0 {
			if ch == quote {
				quote = 0
			}
			continue
		}
		if ch == '\'' || ch == '"' {
			quote = ch
			continue
		}
		if strings.EqualFold(s[i:i+n], kw) &&
			(i == 0 || isBoundary(s[i-1])) &&
			(i+n == len(s) || isBoundary(s[i+n])) {
			return i
		}
	}
	return -1
}

func isBoundary(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '(', ')':
		return true
	}
	return false
}
