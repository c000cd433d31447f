package ps

import (
	"sort"

	json "github.com/goccy/go-json"

	"github.com/reldb/reldb/catalog"
	"github.com/reldb/reldb/core"
)

// ColumnDef is the serialized form of a column. Constraints live on the
// table record, not the column, so the common case stays compact.
type ColumnDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TableSnapshot is the serialized form of one table: its schema, its
// constraints and every row. Columns are an ordered array because JSON
// objects do not preserve order.
type TableSnapshot struct {
	Columns    []ColumnDef `json:"columns"`
	PrimaryKey string      `json:"primaryKey,omitempty"`
	Unique     []string    `json:"unique,omitempty"`
	Rows       []core.Row  `json:"rows"`
}

// Snapshot is the full serialized state of an engine, keyed by table
// name.
type Snapshot map[string]TableSnapshot

// Export captures every table in the catalog into a snapshot. Rows are
// copied so later mutations do not bleed into the capture.
func Export(c *catalog.Catalog) Snapshot {
	snapshot := make(Snapshot, c.Len())
	for _, name := range c.Names() {
		table, err := c.Get(name)
		if err != nil {
			continue
		}

		ts := TableSnapshot{
			PrimaryKey: table.Schema.PrimaryKey(),
			Unique:     table.Schema.UniqueColumns(),
			Columns:    make([]ColumnDef, len(table.Schema.Columns)),
			Rows:       make([]core.Row, len(table.Rows)),
		}
		for i, column := range table.Schema.Columns {
			ts.Columns[i] = ColumnDef{Name: column.Name, Type: string(column.Type)}
		}
		for i, row := range table.Rows {
			ts.Rows[i] = row.Clone()
		}
		snapshot[name] = ts
	}
	return snapshot
}

// Build reconstructs a catalog from a snapshot. Rows are restored
// verbatim, with no constraint or arity checks: a snapshot is trusted
// the way the engine trusted it when it was captured. Tables register in
// name order so iteration is deterministic after a restore.
func Build(snapshot Snapshot) *catalog.Catalog {
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	c := catalog.New()
	for _, name := range names {
		ts := snapshot[name]

		schema := core.Table{Name: name, Columns: make([]core.Column, len(ts.Columns))}
		for i, def := range ts.Columns {
			schema.Columns[i] = core.Column{
				Name:       def.Name,
				Type:       core.ColumnType(def.Type),
				PrimaryKey: def.Name == ts.PrimaryKey,
				Unique:     contains(ts.Unique, def.Name),
			}
		}

		if err := c.Create(schema); err != nil {
			continue
		}
		table, err := c.Get(name)
		if err != nil {
			continue
		}
		for _, row := range ts.Rows {
			table.Rows = append(table.Rows, row.Clone())
		}
	}
	return c
}

// Marshal encodes a snapshot as indented JSON, the on-disk and on-wire
// format.
func Marshal(snapshot Snapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}

// Unmarshal decodes a snapshot produced by Marshal.
func Unmarshal(data []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}
