package db

import (
	"fmt"

	"github.com/reldb/reldb/core"
	"github.com/reldb/reldb/sql"
)

func (engine *Engine) executeInsert(statement sql.InsertStatement) (Result, error) {
	table, err := engine.catalog.Get(statement.Table)
	if err != nil {
		return Result{}, err
	}

	columns := table.Schema.Columns
	if len(statement.Values) != len(columns) {
		return Result{}, fmt.Errorf("insert into %s: %d values for %d columns",
			statement.Table, len(statement.Values), len(columns))
	}

	row := make(core.Row, len(columns))
	for i, column := range columns {
		row[column.Name] = core.Parse(statement.Values[i])
	}

	if pk := table.Schema.PrimaryKey(); pk != "" {
		for _, existing := range table.Rows {
			if core.Equal(existing[pk], row[pk]) {
				return Result{}, fmt.Errorf("duplicate value for primary key %s", pk)
			}
		}
	}

	table.Rows = append(table.Rows, row)
	return Result{Message: fmt.Sprintf("1 row inserted into %s", statement.Table), Count: 1}, nil
}
