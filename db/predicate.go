package db

import (
	"strings"

	"github.com/reldb/reldb/core"
)

// Two-character operators come first so that "age>=30" does not split
// at the bare ">".
var operators = []string{">=", "<=", "!=", "<>", "=", "<", ">"}

// condition is one parsed WHERE predicate. An invalid condition (no
// recognized operator) matches no rows; it is not an error.
type condition struct {
	column string
	op     string
	value  any
	valid  bool
}

func parseCondition(where string) condition {
	where = strings.TrimSpace(where)
	if where == "" {
		return condition{}
	}

	for _, op := range operators {
		index := strings.Index(where, op)
		if index < 0 {
			continue
		}
		column := strings.TrimSpace(where[:index])
		raw := strings.TrimSpace(where[index+len(op):])
		if column == "" {
			return condition{}
		}
		return condition{
			column: column,
			op:     op,
			value:  core.Parse(raw),
			valid:  true,
		}
	}

	return condition{}
}

func (c condition) matches(row core.Row) bool {
	if !c.valid {
		return false
	}

	cell := row[c.column]

	switch c.op {
	case "=":
		return core.Equal(cell, c.value)
	case "!=", "<>":
		return !core.Equal(cell, c.value)
	}

	sign, ok := core.Compare(cell, c.value)
	if !ok {
		return false
	}

	switch c.op {
	case "<":
		return sign < 0
	case "<=":
		return sign <= 0
	case ">":
		return sign > 0
	case ">=":
		return sign >= 0
	}
	return false
}
