// Package catalog owns the table definitions and row stores of one
// engine instance. A Catalog is plain mutable state with no locking: the
// engine is its sole owner and hosts serialize access (see db.Engine).
package catalog

import (
	"errors"
	"fmt"

	"github.com/reldb/reldb/core"
)

var (
	ErrTableExists   = errors.New("table already exists")
	ErrTableNotFound = errors.New("table does not exist")
)

// Table pairs a schema with its row store. Rows keep insertion order,
// which is the canonical display and iteration order.
type Table struct {
	Schema core.Table
	Rows   []core.Row
}

type Catalog struct {
	tables map[string]*Table
	order  []string
}

func New() *Catalog {
	return &Catalog{tables: make(map[string]*Table)}
}

// Create registers an empty table. It fails when the name is taken.
func (catalog *Catalog) Create(schema core.Table) error {
	if _, exists := catalog.tables[schema.Name]; exists {
		return fmt.Errorf("table %s: %w", schema.Name, ErrTableExists)
	}
	catalog.tables[schema.Name] = &Table{Schema: schema}
	catalog.order = append(catalog.order, schema.Name)
	return nil
}

// Drop removes a table and all its rows.
func (catalog *Catalog) Drop(name string) error {
	if _, exists := catalog.tables[name]; !exists {
		return fmt.Errorf("table %s: %w", name, ErrTableNotFound)
	}
	delete(catalog.tables, name)
	for i, existing := range catalog.order {
		if existing == name {
			catalog.order = append(catalog.order[:i], catalog.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the table for direct mutation by the engine's handlers.
func (catalog *Catalog) Get(name string) (*Table, error) {
	table, exists := catalog.tables[name]
	if !exists {
		return nil, fmt.Errorf("table %s: %w", name, ErrTableNotFound)
	}
	return table, nil
}

// Names returns all table names in registration order.
func (catalog *Catalog) Names() []string {
	names := make([]string, len(catalog.order))
	copy(names, catalog.order)
	return names
}

func (catalog *Catalog) Len() int {
	return len(catalog.order)
}
