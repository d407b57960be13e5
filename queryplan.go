package queryi18n

// JoinType selects how a translation join binds rows.
type JoinType string

const (
	// LeftJoin keeps base rows that have no matching translation.
	LeftJoin JoinType = "left"
	// InnerJoin drops base rows without a matching translation.
	InnerJoin JoinType = "inner"
)

// Ident names a column qualified by a table name or join alias. Identifiers
// are assumed pre-sanitized by the caller; adapters must render them through
// their builder's identifier quoting, never by concatenating raw input.
type Ident struct {
	Table  string
	Column string
}

// Cond is a predicate usable in join ON clauses and WHERE filters.
type Cond interface {
	cond()
}

// ColumnsEqual asserts equality between two columns.
type ColumnsEqual struct {
	Left  Ident
	Right Ident
}

// EqualsValue asserts equality between a column and a bound value.
type EqualsValue struct {
	Column Ident
	Value  any
}

// NotNull asserts a column holds a value. It doubles as a boolean derived
// column expression (the translation-presence flag).
type NotNull struct {
	Column Ident
}

// Or groups conditions with OR semantics.
type Or struct {
	Conds []Cond
}

func (ColumnsEqual) cond() {}
func (EqualsValue) cond()  {}
func (NotNull) cond()      {}
func (Or) cond()           {}

// Expr is a derived-column expression.
type Expr interface {
	expr()
}

// ColumnRef selects a column value verbatim.
type ColumnRef struct {
	Column Ident
}

// CaseWhen yields Then when the condition holds and Else otherwise.
type CaseWhen struct {
	When Cond
	Then Expr
	Else Expr
}

func (ColumnRef) expr() {}
func (CaseWhen) expr()  {}
func (NotNull) expr()   {}

// Join describes a single join to attach to the plan. Conditions in On are
// combined with AND.
type Join struct {
	Table string
	Alias string
	Type  JoinType
	On    []Cond
}

// DerivedColumn registers an expression under an output alias.
type DerivedColumn struct {
	Expr Expr
	As   string
}

// QueryPlan is the mutable query builder the planner appends to. The planner
// takes exclusive access for the duration of a call; implementations are not
// required to be safe for concurrent mutation.
type QueryPlan interface {
	// BaseTable returns the plan's base table name.
	BaseTable() string
	// AddJoin attaches a join with its full ON condition.
	AddJoin(join Join)
	// AddColumn registers a derived output column.
	AddColumn(column DerivedColumn)
	// AddFilter appends a WHERE condition, ANDed with existing filters.
	AddFilter(cond Cond)
}
