package sql

import "github.com/reldb/reldb/core"

type StatementType int

const (
	CreateTableStatementType StatementType = iota
	DropTableStatementType
	ShowTablesStatementType
	DescribeStatementType
	InsertStatementType
	SelectStatementType
	UpdateStatementType
	DeleteStatementType
)

// Statement is the common interface for all parsed statements.
type Statement interface {
	Type() StatementType
}

type CreateTableStatement struct {
	Table   string
	Columns []core.Column
}

type DropTableStatement struct {
	Table string
}

type ShowTablesStatement struct{}

type DescribeStatement struct {
	Table string
}

// InsertStatement carries the raw literal tokens, quotes preserved, so
// the engine can classify each one with core.Parse.
type InsertStatement struct {
	Table  string
	Values []string
}

// SelectStatement with an empty Columns slice means SELECT *.
// Where holds the raw condition text; the predicate evaluator owns its
// interpretation.
type SelectStatement struct {
	Table   string
	Columns []string
	Where   string
}

// SetClause is one assignment of an UPDATE; Value is the raw literal.
type SetClause struct {
	Column string
	Value  string
}

type UpdateStatement struct {
	Table string
	Sets  []SetClause
	Where string
}

type DeleteStatement struct {
	Table string
	Where string
}

func (s CreateTableStatement) Type() StatementType { return CreateTableStatementType }
func (s DropTableStatement) Type() StatementType   { return DropTableStatementType }
func (s ShowTablesStatement) Type() StatementType  { return ShowTablesStatementType }
func (s DescribeStatement) Type() StatementType    { return DescribeStatementType }
func (s InsertStatement) Type() StatementType      { return InsertStatementType }
func (s SelectStatement) Type() StatementType      { return SelectStatementType }
func (s UpdateStatement) Type() StatementType      { return UpdateStatementType }
func (s DeleteStatement) Type() StatementType      { return DeleteStatementType }
