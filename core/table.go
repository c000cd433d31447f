package core

// ColumnType is the declared type tag of a column. Tags are declarative
// only: inserted values are never validated against them.
type ColumnType string

const (
	IntType     ColumnType = "INT"
	TextType    ColumnType = "TEXT"
	RealType    ColumnType = "REAL"
	BooleanType ColumnType = "BOOLEAN"
)

type Column struct {
	Name       string     `json:"name"`
	Type       ColumnType `json:"type"`
	PrimaryKey bool       `json:"primaryKey,omitempty"`
	Unique     bool       `json:"unique,omitempty"`
}

// Table is the schema of one table: an ordered column list plus the
// constraints carried on the columns themselves.
type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// PrimaryKey returns the name of the primary key column, or "" when none
// is declared. When several columns are marked, the last one wins.
func (table Table) PrimaryKey() string {
	pk := ""
	for _, column := range table.Columns {
		if column.PrimaryKey {
			pk = column.Name
		}
	}
	return pk
}

// UniqueColumns returns the names of columns carrying a UNIQUE marker, in
// declaration order.
func (table Table) UniqueColumns() []string {
	var unique []string
	for _, column := range table.Columns {
		if column.Unique {
			unique = append(unique, column.Name)
		}
	}
	return unique
}

// ColumnNames returns all column names in declaration order.
func (table Table) ColumnNames() []string {
	names := make([]string, len(table.Columns))
	for i, column := range table.Columns {
		names[i] = column.Name
	}
	return names
}

func (table Table) HasColumn(name string) bool {
	for _, column := range table.Columns {
		if column.Name == name {
			return true
		}
	}
	return false
}

// Row is one record: a mapping from column name to value. Values are one
// of nil, bool, float64 or string, exactly the kinds Parse produces.
type Row map[string]any

// Clone returns a shallow copy of the row.
func (row Row) Clone() Row {
	out := make(Row, len(row))
	for name, value := range row {
		out[name] = value
	}
	return out
}
