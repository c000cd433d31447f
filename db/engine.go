package db

import (
	"fmt"

	"github.com/reldb/reldb/catalog"
	"github.com/reldb/reldb/sql"
)

// Engine is one independent instance of the query engine. It owns its
// catalog and command history outright; nothing here is process-global.
//
// The engine is fully synchronous and performs no locking. Hosts that
// share an engine across goroutines must serialize calls themselves.
type Engine struct {
	catalog *catalog.Catalog
	history []string
}

func NewEngine() *Engine {
	return &Engine{catalog: catalog.New()}
}

// Execute runs a single statement and always returns a Result: every
// failure inside parsing or a handler, panics included, comes back as an
// error Result rather than escaping. The raw command is appended to the
// history before anything else happens, valid or not.
func (engine *Engine) Execute(command string) (result Result) {
	engine.history = append(engine.history, command)

	defer func() {
		if r := recover(); r != nil {
			result = errorResult(fmt.Errorf("internal error: %v", r))
		}
	}()

	statement, err := sql.Parse(command)
	if err != nil {
		return errorResult(err)
	}

	switch statement.Type() {
	case sql.CreateTableStatementType:
		result, err = engine.executeCreateTable(statement.(sql.CreateTableStatement))
	case sql.DropTableStatementType:
		result, err = engine.executeDropTable(statement.(sql.DropTableStatement))
	case sql.ShowTablesStatementType:
		result, err = engine.executeShowTables()
	case sql.DescribeStatementType:
		result, err = engine.executeDescribe(statement.(sql.DescribeStatement))
	case sql.InsertStatementType:
		result, err = engine.executeInsert(statement.(sql.InsertStatement))
	case sql.SelectStatementType:
		result, err = engine.executeSelect(statement.(sql.SelectStatement))
	case sql.UpdateStatementType:
		result, err = engine.executeUpdate(statement.(sql.UpdateStatement))
	case sql.DeleteStatementType:
		result, err = engine.executeDelete(statement.(sql.DeleteStatement))
	default:
		err = fmt.Errorf("unsupported statement type: %v", statement.Type())
	}

	if err != nil {
		return errorResult(err)
	}
	return result
}

// History returns a copy of every command ever submitted, in order. The
// engine never consults it; it exists for hosts to display.
func (engine *Engine) History() []string {
	history := make([]string, len(engine.history))
	copy(history, engine.history)
	return history
}
