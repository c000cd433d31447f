package sql

import (
	"errors"
	"fmt"
	"strings"
)

// parseSelect parses
//
//	SELECT <cols|*> FROM <name> [WHERE <cond>]
//
// An empty Columns slice stands for *. The WHERE text is captured raw.
func parseSelect(q string) (Statement, error) {
	fi := keywordIndex(q, "FROM")
	if fi == -1 {
		return nil, errors.New("SELECT: expected FROM")
	}

	colsPart := strings.TrimSpace(q[len("SELECT"):fi])
	if colsPart == "" {
		return nil, errors.New("SELECT: missing column list")
	}

	var columns []string
	if colsPart != "*" {
		columns = SplitList(colsPart)
	}

	table, where, err := tableAndWhere(q[fi+len("FROM"):], "SELECT")
	if err != nil {
		return nil, err
	}

	return SelectStatement{Table: table, Columns: columns, Where: where}, nil
}

// tableAndWhere splits "<name> [WHERE <cond>]", shared by SELECT and
// DELETE.
func tableAndWhere(rest, stmt string) (table, where string, err error) {
	namePart := rest
	if wi := keywordIndex(rest, "WHERE"); wi != -1 {
		namePart = rest[:wi]
		where = strings.TrimSpace(rest[wi+len("WHERE"):])
		if where == "" {
			return "", "", fmt.Errorf("%s: empty WHERE clause", stmt)
		}
	}

	fields := strings.Fields(namePart)
	if len(fields) != 1 {
		return "", "", fmt.Errorf("%s: expected a table name", stmt)
	}
	return fields[0], where, nil
}
