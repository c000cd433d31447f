package db

import (
	"fmt"

	"github.com/reldb/reldb/core"
	"github.com/reldb/reldb/sql"
)

func (engine *Engine) executeCreateTable(statement sql.CreateTableStatement) (Result, error) {
	schema := core.Table{Name: statement.Table, Columns: statement.Columns}
	if err := engine.catalog.Create(schema); err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("table %s created", statement.Table)}, nil
}

func (engine *Engine) executeDropTable(statement sql.DropTableStatement) (Result, error) {
	if err := engine.catalog.Drop(statement.Table); err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("table %s dropped", statement.Table)}, nil
}

func (engine *Engine) executeShowTables() (Result, error) {
	names := engine.catalog.Names()
	data := make([]core.Row, len(names))
	for i, name := range names {
		data[i] = core.Row{"Table": name}
	}
	return Result{Columns: []string{"Table"}, Data: data, Count: len(names)}, nil
}

func (engine *Engine) executeDescribe(statement sql.DescribeStatement) (Result, error) {
	table, err := engine.catalog.Get(statement.Table)
	if err != nil {
		return Result{}, err
	}

	data := make([]core.Row, len(table.Schema.Columns))
	for i, column := range table.Schema.Columns {
		key := ""
		if column.PrimaryKey {
			key = "PRI"
		}
		data[i] = core.Row{
			"Field": column.Name,
			"Type":  string(column.Type),
			"Key":   key,
		}
	}
	return Result{Columns: []string{"Field", "Type", "Key"}, Data: data, Count: len(data)}, nil
}
