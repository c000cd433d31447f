package tests

import (
	"testing"

	"github.com/reldb/reldb"
	"github.com/reldb/reldb/core"
	"github.com/reldb/reldb/ps"
)

var testIdentity = core.Identity{Name: "test", Email: "test@test.com"}

// TestFunc is the signature for test functions that work with any store
type TestFunc func(t *testing.T, instance *reldb.Instance)

// runWithBothStores runs a test function with both memory and file stores
func runWithBothStores(t *testing.T, testFunc TestFunc) {
	t.Run("Memory", func(t *testing.T) {
		store, err := ps.NewMemoryStore()
		if err != nil {
			t.Fatalf("Failed to initialize memory store: %v", err)
		}
		testFunc(t, reldb.Open(store))
	})

	t.Run("File", func(t *testing.T) {
		store, err := ps.NewFileStore(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to initialize file store: %v", err)
		}
		testFunc(t, reldb.Open(store))
	})
}

// TestIntegrationWorkflow runs a complete workflow against a fresh instance
func TestIntegrationWorkflow(t *testing.T) {
	runWithBothStores(t, func(t *testing.T, instance *reldb.Instance) {
		engine := instance.Engine()

		result := engine.Execute("CREATE TABLE employees (id INT PRIMARY, name TEXT, department TEXT, salary INT)")
		if !result.OK() {
			t.Fatalf("Failed to create table: %s", result.Error)
		}

		rows := []string{
			"INSERT INTO employees VALUES (1, 'Alice', 'Engineering', 95000)",
			"INSERT INTO employees VALUES (2, 'Bob', 'Sales', 60000)",
			"INSERT INTO employees VALUES (3, 'Charlie', 'Engineering', 85000)",
			"INSERT INTO employees VALUES (4, 'Diana', 'Marketing', 70000)",
		}
		for _, command := range rows {
			if result := engine.Execute(command); !result.OK() {
				t.Fatalf("Failed to insert: %s", result.Error)
			}
		}

		result = engine.Execute("SELECT name FROM employees WHERE department = 'Engineering'")
		if result.Count != 2 {
			t.Errorf("Expected 2 engineers, got %d", result.Count)
		}

		result = engine.Execute("UPDATE employees SET salary = 100000 WHERE name = 'Alice'")
		if result.Count != 1 {
			t.Errorf("Expected 1 row updated, got %d", result.Count)
		}

		result = engine.Execute("DELETE FROM employees WHERE salary < 65000")
		if result.Count != 1 {
			t.Errorf("Expected 1 row deleted, got %d", result.Count)
		}

		result = engine.Execute("SELECT * FROM employees")
		if result.Count != 3 {
			t.Errorf("Expected 3 rows remaining, got %d", result.Count)
		}
	})
}

// TestIntegrationSnapshotRoundTrip verifies that save, drop and load
// reproduce the exact same tables, schemas and rows.
func TestIntegrationSnapshotRoundTrip(t *testing.T) {
	runWithBothStores(t, func(t *testing.T, instance *reldb.Instance) {
		engine := instance.Engine()

		engine.Execute("CREATE TABLE users (id INT PRIMARY, name TEXT, email TEXT UNIQUE)")
		engine.Execute("CREATE TABLE orders (id INT PRIMARY, user_id INT, total REAL)")
		engine.Execute("INSERT INTO users VALUES (1, 'Alice', 'alice@example.com')")
		engine.Execute("INSERT INTO users VALUES (2, 'Bob', null)")
		engine.Execute("INSERT INTO orders VALUES (10, 1, 99.5)")

		before := engine.Execute("SELECT * FROM users")

		if _, err := instance.Save(testIdentity, "round trip"); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		engine.Execute("DROP TABLE users")
		engine.Execute("DROP TABLE orders")

		if err := instance.Load(); err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		after := engine.Execute("SELECT * FROM users")
		if after.Count != before.Count {
			t.Fatalf("Row count changed across round trip: %d != %d", after.Count, before.Count)
		}
		for i := range after.Data {
			for _, column := range after.Columns {
				if !core.Equal(after.Data[i][column], before.Data[i][column]) {
					t.Errorf("Cell %s[%d] changed: %v != %v",
						column, i, after.Data[i][column], before.Data[i][column])
				}
			}
		}

		result := engine.Execute("INSERT INTO users VALUES (1, 'Dup', null)")
		if result.OK() {
			t.Error("Primary key constraint lost across round trip")
		}

		if result := engine.Execute("SELECT total FROM orders"); result.Count != 1 {
			t.Errorf("Second table lost across round trip: %d rows", result.Count)
		}
	})
}

// TestIntegrationVersionHistory saves several states and loads each back
func TestIntegrationVersionHistory(t *testing.T) {
	runWithBothStores(t, func(t *testing.T, instance *reldb.Instance) {
		engine := instance.Engine()

		engine.Execute("CREATE TABLE events (id INT PRIMARY, name TEXT)")

		engine.Execute("INSERT INTO events VALUES (1, 'first')")
		v1, err := instance.Save(testIdentity, "one event")
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		engine.Execute("INSERT INTO events VALUES (2, 'second')")
		if _, err := instance.Save(testIdentity, "two events"); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		versions, err := instance.Store().Versions()
		if err != nil {
			t.Fatalf("Versions failed: %v", err)
		}
		if len(versions) != 2 {
			t.Fatalf("Expected 2 versions, got %d", len(versions))
		}

		if err := instance.LoadAt(v1.Id); err != nil {
			t.Fatalf("LoadAt failed: %v", err)
		}
		if result := engine.Execute("SELECT * FROM events"); result.Count != 1 {
			t.Errorf("Expected 1 event at first version, got %d", result.Count)
		}

		if err := instance.Load(); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if result := engine.Execute("SELECT * FROM events"); result.Count != 2 {
			t.Errorf("Expected 2 events at latest version, got %d", result.Count)
		}
	})
}

// TestIntegrationInstancesIndependent verifies no state leaks between instances
func TestIntegrationInstancesIndependent(t *testing.T) {
	a := reldb.Open(nil)
	b := reldb.Open(nil)

	a.Engine().Execute("CREATE TABLE shared (id INT)")
	a.Engine().Execute("INSERT INTO shared VALUES (1)")

	if result := b.Engine().Execute("SELECT * FROM shared"); result.OK() {
		t.Error("Second instance sees the first instance's table")
	}
}
