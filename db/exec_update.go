package db

import (
	"fmt"

	"github.com/reldb/reldb/core"
	"github.com/reldb/reldb/sql"
)

func (engine *Engine) executeUpdate(statement sql.UpdateStatement) (Result, error) {
	table, err := engine.catalog.Get(statement.Table)
	if err != nil {
		return Result{}, err
	}

	// Validate every assignment before touching any row so a bad SET
	// clause leaves the table unchanged.
	values := make(map[string]any, len(statement.Sets))
	for _, set := range statement.Sets {
		if !table.Schema.HasColumn(set.Column) {
			return Result{}, fmt.Errorf("table %s has no column %s", statement.Table, set.Column)
		}
		values[set.Column] = core.Parse(set.Value)
	}

	cond := parseCondition(statement.Where)
	filter := statement.Where != ""

	count := 0
	for _, row := range table.Rows {
		if filter && !cond.matches(row) {
			continue
		}
		for column, value := range values {
			row[column] = value
		}
		count++
	}

	return Result{Message: fmt.Sprintf("%d row(s) updated", count), Count: count}, nil
}
