package sql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reldb/reldb/core"
)

// parseCreateTable parses
//
//	CREATE TABLE <name> (<col> <TYPE> [PRIMARY KEY] [UNIQUE], ...)
//
// A column definition containing the token PRIMARY marks the table's
// primary key; one containing UNIQUE joins the unique set.
func parseCreateTable(q string) (Statement, error) {
	open := strings.Index(q, "(")
	if open == -1 {
		return nil, errors.New("CREATE TABLE: missing '('")
	}
	closing := strings.LastIndex(q, ")")
	if closing < open {
		return nil, errors.New("CREATE TABLE: missing ')'")
	}

	head := strings.Fields(q[:open])
	if len(head) != 3 || !strings.EqualFold(head[1], "TABLE") {
		return nil, errors.New("CREATE TABLE: expected CREATE TABLE <name> (<columns>)")
	}
	name := head[2]

	defs := SplitList(q[open+1 : closing])
	if len(defs) == 0 {
		return nil, errors.New("CREATE TABLE: no column definitions")
	}

	columns := make([]core.Column, 0, len(defs))
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		parts := strings.Fields(def)
		if len(parts) < 2 {
			return nil, fmt.Errorf("CREATE TABLE: invalid column definition %q", def)
		}

		column := core.Column{
			Name: parts[0],
			Type: core.ColumnType(strings.ToUpper(parts[1])),
		}
		if seen[column.Name] {
			return nil, fmt.Errorf("CREATE TABLE: duplicate column %q", column.Name)
		}
		seen[column.Name] = true

		for _, token := range parts[2:] {
			switch strings.ToUpper(token) {
			case "PRIMARY":
				column.PrimaryKey = true
			case "UNIQUE":
				column.Unique = true
			}
		}
		columns = append(columns, column)
	}

	return CreateTableStatement{Table: name, Columns: columns}, nil
}
