package sql

import (
	"errors"
	"strings"
)

// parseInsert parses
//
//	INSERT INTO <name> VALUES (<literal>, ...)
//
// Literals are split with the quote-aware scanner and kept raw; the
// engine pairs them positionally with the declared columns.
func parseInsert(q string) (Statement, error) {
	vi := keywordIndex(q, "VALUES")
	if vi == -1 {
		return nil, errors.New("INSERT: expected VALUES")
	}

	head := strings.Fields(q[:vi])
	if len(head) != 3 || !strings.EqualFold(head[1], "INTO") {
		return nil, errors.New("INSERT: expected INSERT INTO <table> VALUES (...)")
	}

	rest := strings.TrimSpace(q[vi+len("VALUES"):])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return nil, errors.New("INSERT: value list must be parenthesized")
	}

	values := SplitList(rest[1 : len(rest)-1])
	if len(values) == 0 {
		return nil, errors.New("INSERT: empty value list")
	}

	return InsertStatement{Table: head[2], Values: values}, nil
}
