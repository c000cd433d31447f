// Package core provides the types shared across RelDB.
//
// The package defines the schema types Table and Column, the Row record
// type, Identity for snapshot authorship, and the value functions used
// everywhere literals appear: Parse, Format, Numeric, Equal and Compare.
//
// # Values
//
// A cell value is always one of four kinds: nil (SQL NULL), bool,
// float64 or string. Parse produces exactly these kinds from literal
// tokens, and the JSON snapshot codec round-trips them unchanged:
//
//	core.Parse("'Alice'") // "Alice"
//	core.Parse("42")      // float64(42)
//	core.Parse("null")    // nil
//	core.Parse("TRUE")    // true
//
// # Comparison
//
// Equal and Compare implement the engine's coercive comparison rules: a
// number and a numeric-valued string compare numerically, booleans read
// as 1/0, and null never orders against anything.
package core
