package sql

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyStatement = errors.New("empty statement")

// Parse parses a single statement. The input is trimmed and one trailing
// semicolon is stripped before the leading keyword is matched
// case-insensitively.
func Parse(command string) (Statement, error) {
	q := strings.TrimSpace(command)
	q = strings.TrimSuffix(q, ";")
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrEmptyStatement
	}

	keyword := strings.Fields(q)[0]
	switch strings.ToUpper(keyword) {
	case "CREATE":
		return parseCreateTable(q)
	case "INSERT":
		return parseInsert(q)
	case "SELECT":
		return parseSelect(q)
	case "UPDATE":
		return parseUpdate(q)
	case "DELETE":
		return parseDelete(q)
	case "DROP":
		return parseDrop(q)
	case "SHOW":
		return parseShow(q)
	case "DESCRIBE":
		return parseDescribe(q)
	default:
		return nil, fmt.Errorf("unknown command %q", keyword)
	}
}
