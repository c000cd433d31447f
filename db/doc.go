// Package db provides the SQL execution engine for RelDB.
//
// The Engine type is the main entry point for executing statements. It
// parses the command, runs it against the in-memory catalog, and always
// returns a Result, folding every failure into the Result's Error field.
//
// # Engine Usage
//
//	engine := db.NewEngine()
//	engine.Execute("CREATE TABLE users (id INT PRIMARY, name TEXT)")
//	engine.Execute("INSERT INTO users VALUES (1, 'Alice')")
//	result := engine.Execute("SELECT * FROM users WHERE id = 1")
//	result.Display()
//
// # Results
//
// A Result carries either a Message (DDL and mutations), or Columns and
// Data (queries), or an Error. Count reports the number of rows
// returned or affected.
package db
