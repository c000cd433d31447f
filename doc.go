// Package reldb provides an embeddable in-memory relational engine with
// Git-backed snapshot persistence.
//
// Tables live entirely in memory. State can be captured as a snapshot
// and committed to a store, where every save stays reachable through
// its version id.
//
// # Quick Start
//
// Create an in-memory instance:
//
//	store, _ := ps.NewMemoryStore()
//	instance := reldb.Open(store)
//	engine := instance.Engine()
//
//	engine.Execute("CREATE TABLE users (id INT PRIMARY, name TEXT)")
//	engine.Execute("INSERT INTO users VALUES (1, 'Alice')")
//
//	result := engine.Execute("SELECT * FROM users")
//	result.Display()
//
//	instance.Save(core.Identity{Name: "App", Email: "app@example.com"}, "initial data")
//
// # Supported SQL
//
// RelDB supports a small SQL dialect:
//   - CREATE/DROP TABLE
//   - SHOW TABLES, DESCRIBE
//   - INSERT, SELECT, UPDATE, DELETE
//   - WHERE with a single comparison (=, !=, <>, <, <=, >, >=)
//   - PRIMARY and UNIQUE column markers
package reldb
