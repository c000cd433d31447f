package db

import (
	"github.com/reldb/reldb/core"
	"github.com/reldb/reldb/sql"
)

func (engine *Engine) executeSelect(statement sql.SelectStatement) (Result, error) {
	table, err := engine.catalog.Get(statement.Table)
	if err != nil {
		return Result{}, err
	}

	// An empty column list means SELECT *. Requested columns that the
	// table does not declare are dropped from the projection silently.
	var columns []string
	if len(statement.Columns) == 0 {
		columns = table.Schema.ColumnNames()
	} else {
		// Keep the slice non-nil even when every requested column is
		// unknown, so the result still reads as a query result.
		columns = []string{}
		for _, name := range statement.Columns {
			if table.Schema.HasColumn(name) {
				columns = append(columns, name)
			}
		}
	}

	cond := parseCondition(statement.Where)
	filter := statement.Where != ""

	var data []core.Row
	for _, row := range table.Rows {
		if filter && !cond.matches(row) {
			continue
		}
		projected := make(core.Row, len(columns))
		for _, name := range columns {
			projected[name] = row[name]
		}
		data = append(data, projected)
	}

	return Result{Columns: columns, Data: data, Count: len(data)}, nil
}
