package db

import (
	"strings"
	"testing"
)

func setupTestEngine(t *testing.T) *Engine {
	t.Helper()

	engine := NewEngine()
	result := engine.Execute("CREATE TABLE users (id INT PRIMARY, name TEXT, age INT)")
	if !result.OK() {
		t.Fatalf("Failed to create table: %s", result.Error)
	}
	return engine
}

func insertTestData(t *testing.T, engine *Engine) {
	t.Helper()

	for _, command := range []string{
		"INSERT INTO users VALUES (1, 'Alice', 30)",
		"INSERT INTO users VALUES (2, 'Bob', 25)",
		"INSERT INTO users VALUES (3, 'Charlie', 35)",
	} {
		if result := engine.Execute(command); !result.OK() {
			t.Fatalf("Failed to insert: %s", result.Error)
		}
	}
}

func TestEngineCreateTable(t *testing.T) {
	engine := setupTestEngine(t)

	result := engine.Execute("CREATE TABLE users (id INT)")
	if result.OK() {
		t.Error("Expected error creating a table that already exists")
	}

	result = engine.Execute("SHOW TABLES")
	if !result.OK() {
		t.Fatalf("SHOW TABLES failed: %s", result.Error)
	}
	if result.Count != 1 {
		t.Errorf("Expected 1 table, got %d", result.Count)
	}
	if result.Data[0]["Table"] != "users" {
		t.Errorf("Expected table users, got %v", result.Data[0]["Table"])
	}
}

func TestEngineDescribe(t *testing.T) {
	engine := setupTestEngine(t)

	result := engine.Execute("DESCRIBE users")
	if !result.OK() {
		t.Fatalf("DESCRIBE failed: %s", result.Error)
	}
	if result.Count != 3 {
		t.Fatalf("Expected 3 columns, got %d", result.Count)
	}
	if result.Data[0]["Field"] != "id" || result.Data[0]["Key"] != "PRI" {
		t.Errorf("Expected id marked PRI, got %v", result.Data[0])
	}
	if result.Data[1]["Field"] != "name" || result.Data[1]["Key"] != "" {
		t.Errorf("Expected name unmarked, got %v", result.Data[1])
	}
}

func TestEngineDescribeUniqueColumnUnmarked(t *testing.T) {
	engine := NewEngine()

	result := engine.Execute("CREATE TABLE accounts (id INT PRIMARY, email TEXT UNIQUE)")
	if !result.OK() {
		t.Fatalf("CREATE TABLE failed: %s", result.Error)
	}

	result = engine.Execute("DESCRIBE accounts")
	if !result.OK() {
		t.Fatalf("DESCRIBE failed: %s", result.Error)
	}
	if result.Data[1]["Field"] != "email" || result.Data[1]["Key"] != "" {
		t.Errorf("Expected email column to carry an empty Key, got %v", result.Data[1])
	}
}

func TestEngineInsertDuplicatePrimaryKey(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("INSERT INTO users VALUES (1, 'Dave', 40)")
	if result.OK() {
		t.Fatal("Expected duplicate primary key error")
	}
	if !strings.Contains(result.Error, "primary key") {
		t.Errorf("Unexpected error: %s", result.Error)
	}

	result = engine.Execute("SELECT * FROM users")
	if result.Count != 3 {
		t.Errorf("Rejected insert changed the table: %d rows", result.Count)
	}
}

func TestEngineInsertArityMismatch(t *testing.T) {
	engine := setupTestEngine(t)

	result := engine.Execute("INSERT INTO users VALUES (1, 'Alice')")
	if result.OK() {
		t.Fatal("Expected arity mismatch error")
	}
	if !strings.Contains(result.Error, "2 values for 3 columns") {
		t.Errorf("Unexpected error: %s", result.Error)
	}
}

func TestEngineInsertQuotedComma(t *testing.T) {
	engine := NewEngine()
	engine.Execute("CREATE TABLE notes (id INT, body TEXT)")

	result := engine.Execute("INSERT INTO notes VALUES (1, 'hello, world')")
	if !result.OK() {
		t.Fatalf("Insert failed: %s", result.Error)
	}

	result = engine.Execute("SELECT body FROM notes")
	if result.Data[0]["body"] != "hello, world" {
		t.Errorf("Expected quoted comma to survive, got %v", result.Data[0]["body"])
	}
}

func TestEngineSelect(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("SELECT * FROM users")
	if !result.OK() {
		t.Fatalf("SELECT failed: %s", result.Error)
	}
	if result.Count != 3 {
		t.Errorf("Expected 3 rows, got %d", result.Count)
	}

	want := []string{"id", "name", "age"}
	for i, column := range want {
		if result.Columns[i] != column {
			t.Errorf("Expected columns %v, got %v", want, result.Columns)
			break
		}
	}
}

func TestEngineSelectWithWhere(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("SELECT * FROM users WHERE age > 25")
	if !result.OK() {
		t.Fatalf("SELECT failed: %s", result.Error)
	}
	if result.Count != 2 {
		t.Errorf("Expected 2 rows with age > 25, got %d", result.Count)
	}
}

func TestEngineSelectBoundaryInclusive(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("SELECT name FROM users WHERE age <= 30")
	if result.Count != 2 {
		t.Fatalf("Expected 2 rows with age <= 30, got %d", result.Count)
	}
	for _, row := range result.Data {
		if row["name"] != "Alice" && row["name"] != "Bob" {
			t.Errorf("Unexpected row: %v", row)
		}
	}
}

func TestEngineSelectProjection(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("SELECT name, age, nickname FROM users WHERE age = 30")
	if !result.OK() {
		t.Fatalf("SELECT failed: %s", result.Error)
	}

	// Unknown columns drop out of the projection silently.
	want := []string{"name", "age"}
	if len(result.Columns) != len(want) {
		t.Fatalf("Expected columns %v, got %v", want, result.Columns)
	}
	if result.Count != 1 {
		t.Fatalf("Expected 1 row, got %d", result.Count)
	}
	row := result.Data[0]
	if row["name"] != "Alice" || row["age"] != float64(30) {
		t.Errorf("Unexpected row: %v", row)
	}
	if _, present := row["id"]; present {
		t.Error("Projection leaked unselected column id")
	}
}

func TestEngineSelectAllColumnsUnknown(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("SELECT nickname, shoe_size FROM users")
	if !result.OK() {
		t.Fatalf("SELECT failed: %s", result.Error)
	}

	// The resolved projection is empty but still present, so the result
	// renders as a query result rather than a bare message.
	if result.Columns == nil {
		t.Fatal("Expected an empty column list, got nil")
	}
	if len(result.Columns) != 0 {
		t.Fatalf("Expected no resolved columns, got %v", result.Columns)
	}
	if result.Count != 3 {
		t.Errorf("Expected 3 rows, got %d", result.Count)
	}
}

func TestEngineSelectNoOperatorMatchesNothing(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("SELECT * FROM users WHERE age")
	if !result.OK() {
		t.Fatalf("Expected no error for operator-free condition, got %s", result.Error)
	}
	if result.Count != 0 {
		t.Errorf("Expected 0 rows, got %d", result.Count)
	}
}

func TestEngineSelectNullComparisons(t *testing.T) {
	engine := setupTestEngine(t)
	engine.Execute("INSERT INTO users VALUES (1, 'Alice', null)")
	engine.Execute("INSERT INTO users VALUES (2, 'Bob', 25)")

	result := engine.Execute("SELECT name FROM users WHERE age = null")
	if result.Count != 1 || result.Data[0]["name"] != "Alice" {
		t.Errorf("Expected only Alice for age = null, got %v", result.Data)
	}

	result = engine.Execute("SELECT name FROM users WHERE age != null")
	if result.Count != 1 || result.Data[0]["name"] != "Bob" {
		t.Errorf("Expected only Bob for age != null, got %v", result.Data)
	}

	result = engine.Execute("SELECT name FROM users WHERE age > 10")
	if result.Count != 1 || result.Data[0]["name"] != "Bob" {
		t.Errorf("Expected null to fail ordering comparisons, got %v", result.Data)
	}
}

func TestEngineUpdate(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("UPDATE users SET age = 31 WHERE name = 'Alice'")
	if !result.OK() {
		t.Fatalf("UPDATE failed: %s", result.Error)
	}
	if result.Count != 1 {
		t.Errorf("Expected 1 row updated, got %d", result.Count)
	}

	result = engine.Execute("SELECT age FROM users WHERE name = 'Alice'")
	if result.Data[0]["age"] != float64(31) {
		t.Errorf("Expected age 31, got %v", result.Data[0]["age"])
	}
}

func TestEngineUpdateAllRows(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("UPDATE users SET age = 0")
	if result.Count != 3 {
		t.Errorf("Expected 3 rows updated, got %d", result.Count)
	}

	result = engine.Execute("SELECT * FROM users WHERE age = 0")
	if result.Count != 3 {
		t.Errorf("Expected all ages zeroed, got %d rows", result.Count)
	}
}

func TestEngineUpdateUnknownColumn(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("UPDATE users SET nickname = 'Al' WHERE name = 'Alice'")
	if result.OK() {
		t.Fatal("Expected error for unknown column")
	}

	result = engine.Execute("SELECT * FROM users WHERE name = 'Alice'")
	if _, present := result.Data[0]["nickname"]; present {
		t.Error("Rejected update mutated the row")
	}
}

func TestEngineDelete(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("DELETE FROM users WHERE age < 30")
	if !result.OK() {
		t.Fatalf("DELETE failed: %s", result.Error)
	}
	if result.Count != 1 {
		t.Errorf("Expected 1 row deleted, got %d", result.Count)
	}

	result = engine.Execute("SELECT name FROM users")
	if result.Count != 2 {
		t.Fatalf("Expected 2 rows remaining, got %d", result.Count)
	}
	if result.Data[0]["name"] != "Alice" || result.Data[1]["name"] != "Charlie" {
		t.Errorf("Delete disturbed row order: %v", result.Data)
	}
}

func TestEngineDeleteAllRows(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("DELETE FROM users")
	if result.Count != 3 {
		t.Errorf("Expected 3 rows deleted, got %d", result.Count)
	}

	result = engine.Execute("DESCRIBE users")
	if !result.OK() || result.Count != 3 {
		t.Error("Schema should survive deleting every row")
	}
}

func TestEngineDropTable(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	result := engine.Execute("DROP TABLE users")
	if !result.OK() {
		t.Fatalf("DROP failed: %s", result.Error)
	}

	for _, command := range []string{
		"SELECT * FROM users",
		"INSERT INTO users VALUES (1, 'Alice', 30)",
		"DESCRIBE users",
		"DROP TABLE users",
	} {
		if result := engine.Execute(command); result.OK() {
			t.Errorf("Expected error after drop for %q", command)
		}
	}
}

func TestEngineScenario(t *testing.T) {
	engine := NewEngine()

	engine.Execute("CREATE TABLE users (id INT PRIMARY, name TEXT, age INT)")
	engine.Execute("INSERT INTO users VALUES (1, 'Alice', 30)")
	engine.Execute("INSERT INTO users VALUES (2, 'Bob', 25)")
	engine.Execute("UPDATE users SET age = 30 WHERE name = 'Bob'")
	engine.Execute("DELETE FROM users WHERE id = 1")

	result := engine.Execute("SELECT name, age FROM users")
	if !result.OK() {
		t.Fatalf("SELECT failed: %s", result.Error)
	}
	if result.Count != 1 {
		t.Fatalf("Expected 1 row, got %d", result.Count)
	}
	row := result.Data[0]
	if row["name"] != "Bob" || row["age"] != float64(30) {
		t.Errorf("Unexpected row: %v", row)
	}
}

func TestEngineUnknownCommand(t *testing.T) {
	engine := NewEngine()

	result := engine.Execute("EXPLAIN SELECT * FROM users")
	if result.OK() {
		t.Fatal("Expected error for unknown command")
	}
	if !strings.Contains(result.Error, "unknown command") {
		t.Errorf("Unexpected error: %s", result.Error)
	}
}

func TestEngineHistory(t *testing.T) {
	engine := NewEngine()

	engine.Execute("CREATE TABLE users (id INT)")
	engine.Execute("NOT EVEN SQL")
	engine.Execute("SELECT * FROM users")

	history := engine.History()
	if len(history) != 3 {
		t.Fatalf("Expected 3 history entries, got %d", len(history))
	}
	if history[1] != "NOT EVEN SQL" {
		t.Errorf("Invalid command missing from history: %v", history)
	}

	// History returns a copy.
	history[0] = "tampered"
	if engine.History()[0] != "CREATE TABLE users (id INT)" {
		t.Error("History() exposed internal state")
	}
}

func TestEngineSnapshotRestore(t *testing.T) {
	engine := setupTestEngine(t)
	insertTestData(t, engine)

	snapshot := engine.Snapshot()

	engine.Execute("DELETE FROM users")
	engine.Execute("DROP TABLE users")

	engine.Restore(snapshot)

	result := engine.Execute("SELECT * FROM users")
	if !result.OK() {
		t.Fatalf("SELECT after restore failed: %s", result.Error)
	}
	if result.Count != 3 {
		t.Errorf("Expected 3 rows after restore, got %d", result.Count)
	}

	result = engine.Execute("INSERT INTO users VALUES (1, 'Dup', 50)")
	if result.OK() {
		t.Error("Primary key constraint lost across restore")
	}
}
