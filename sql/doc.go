// Package sql parses the RelDB statement language.
//
// Parse classifies a command by its leading keyword and hands it to a
// purpose-built parser for that keyword, producing a typed Statement
// record. The grammar is deliberately minimal: one table per statement,
// a single binary comparison per WHERE clause, no boolean composition.
//
//	statement, err := sql.Parse("SELECT name, age FROM users WHERE age >= 30")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sel := statement.(sql.SelectStatement)
//
// Value lists and SET clauses are split with a quote-aware scanner, so
// commas inside quoted text never act as separators. WHERE text is kept
// raw in the statement; the engine's predicate evaluator interprets it.
package sql
