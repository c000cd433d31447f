package db

import (
	"fmt"
	"os"

	"github.com/reldb/reldb/core"
)

// Result is the single outcome type returned by every statement. Exactly
// one of Error or the success fields is populated: Message for DDL and
// writes, Columns/Data/Count for reads.
type Result struct {
	Message string     `json:"message,omitempty"`
	Columns []string   `json:"columns,omitempty"`
	Data    []core.Row `json:"data,omitempty"`
	Count   int        `json:"count,omitempty"`
	Error   string     `json:"error,omitempty"`
}

func errorResult(err error) Result {
	return Result{Error: err.Error()}
}

// OK reports whether the statement succeeded.
func (result Result) OK() bool {
	return result.Error == ""
}

// Display renders the result to stdout: a bordered table for row data, a
// plain line otherwise.
func (result Result) Display() {
	if !result.OK() {
		fmt.Printf("Error: %s\n", result.Error)
		return
	}

	if result.Columns != nil {
		table := NewTable(os.Stdout)
		table.Header(result.Columns)
		for _, row := range result.Data {
			cells := make([]string, len(result.Columns))
			for i, column := range result.Columns {
				cells[i] = core.Format(row[column])
			}
			table.Row(cells)
		}
		table.Render()
		fmt.Printf("%d row(s)\n", result.Count)
		return
	}

	fmt.Println(result.Message)
}
