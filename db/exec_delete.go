package db

import (
	"fmt"

	"github.com/reldb/reldb/sql"
)

func (engine *Engine) executeDelete(statement sql.DeleteStatement) (Result, error) {
	table, err := engine.catalog.Get(statement.Table)
	if err != nil {
		return Result{}, err
	}

	cond := parseCondition(statement.Where)
	filter := statement.Where != ""

	kept := table.Rows[:0:0]
	count := 0
	for _, row := range table.Rows {
		if filter && !cond.matches(row) {
			kept = append(kept, row)
			continue
		}
		count++
	}
	table.Rows = kept

	return Result{Message: fmt.Sprintf("%d row(s) deleted", count), Count: count}, nil
}
