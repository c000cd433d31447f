package sql

import (
	"errors"
	"strings"
)

// parseDelete parses
//
//	DELETE FROM <name> [WHERE <cond>]
func parseDelete(q string) (Statement, error) {
	fi := keywordIndex(q, "FROM")
	if fi == -1 {
		return nil, errors.New("DELETE: expected FROM")
	}
	if len(strings.Fields(q[:fi])) != 1 {
		return nil, errors.New("DELETE: expected DELETE FROM <table>")
	}

	table, where, err := tableAndWhere(q[fi+len("FROM"):], "DELETE")
	if err != nil {
		return nil, err
	}

	return DeleteStatement{Table: table, Where: where}, nil
}
