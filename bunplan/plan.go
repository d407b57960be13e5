// Package bunplan adapts uptrace/bun select queries to the queryi18n plan
// contract. Identifiers are rendered through bun.Ident placeholders and
// values through regular bind placeholders, so nothing is concatenated into
// SQL text.
package bunplan

import (
	"strings"

	"github.com/uptrace/bun"

	queryi18n "github.com/goliatone/go-query-i18n"
)

// Plan wraps a bun select query so the planner can append translation joins,
// derived columns, and filters to it.
type Plan struct {
	query *bun.SelectQuery
	table string
}

var _ queryi18n.QueryPlan = (*Plan)(nil)

// New wraps a select query over the given base table.
func New(query *bun.SelectQuery, table string) *Plan {
	return &Plan{query: query, table: table}
}

// BaseTable returns the base table the query selects from.
func (p *Plan) BaseTable() string {
	return p.table
}

// Unwrap returns the underlying select query.
func (p *Plan) Unwrap() *bun.SelectQuery {
	return p.query
}

// AddJoin attaches a join with its ON conditions ANDed.
func (p *Plan) AddJoin(join queryi18n.Join) {
	on, args := renderConds(join.On, " AND ")
	if on == "" {
		return
	}
	joinArgs := make([]any, 0, len(args)+2)
	joinArgs = append(joinArgs, bun.Ident(join.Table), bun.Ident(join.Alias))
	joinArgs = append(joinArgs, args...)
	p.query = p.query.Join(joinKeyword(join.Type)+" ? AS ? ON "+on, joinArgs...)
}

// AddColumn registers a derived output column.
func (p *Plan) AddColumn(column queryi18n.DerivedColumn) {
	expr, args := renderExpr(column.Expr)
	if expr == "" {
		return
	}
	p.query = p.query.ColumnExpr(expr+" AS ?", append(args, bun.Ident(column.As))...)
}

// AddFilter appends a WHERE condition.
func (p *Plan) AddFilter(cond queryi18n.Cond) {
	expr, args := renderCond(cond)
	if expr == "" {
		return
	}
	p.query = p.query.Where(expr, args...)
}

func joinKeyword(joinType queryi18n.JoinType) string {
	if joinType == queryi18n.InnerJoin {
		return "INNER JOIN"
	}
	return "LEFT JOIN"
}

func renderConds(conds []queryi18n.Cond, sep string) (string, []any) {
	parts := make([]string, 0, len(conds))
	var args []any
	for _, cond := range conds {
		expr, condArgs := renderCond(cond)
		if expr == "" {
			continue
		}
		parts = append(parts, expr)
		args = append(args, condArgs...)
	}
	return strings.Join(parts, sep), args
}

func renderCond(cond queryi18n.Cond) (string, []any) {
	switch c := cond.(type) {
	case queryi18n.ColumnsEqual:
		return "?.? = ?.?", []any{
			bun.Ident(c.Left.Table), bun.Ident(c.Left.Column),
			bun.Ident(c.Right.Table), bun.Ident(c.Right.Column),
		}
	case queryi18n.EqualsValue:
		return "?.? = ?", []any{
			bun.Ident(c.Column.Table), bun.Ident(c.Column.Column),
			c.Value,
		}
	case queryi18n.NotNull:
		return "?.? IS NOT NULL", []any{
			bun.Ident(c.Column.Table), bun.Ident(c.Column.Column),
		}
	case queryi18n.Or:
		expr, args := renderConds(c.Conds, " OR ")
		if expr == "" {
			return "", nil
		}
		return "(" + expr + ")", args
	default:
		return "", nil
	}
}

func renderExpr(expr queryi18n.Expr) (string, []any) {
	switch e := expr.(type) {
	case queryi18n.ColumnRef:
		return "?.?", []any{
			bun.Ident(e.Column.Table), bun.Ident(e.Column.Column),
		}
	case queryi18n.NotNull:
		return renderCond(e)
	case queryi18n.CaseWhen:
		when, whenArgs := renderCond(e.When)
		then, thenArgs := renderExpr(e.Then)
		alt, altArgs := renderExpr(e.Else)
		if when == "" || then == "" || alt == "" {
			return "", nil
		}
		args := make([]any, 0, len(whenArgs)+len(thenArgs)+len(altArgs))
		args = append(args, whenArgs...)
		args = append(args, thenArgs...)
		args = append(args, altArgs...)
		return "CASE WHEN " + when + " THEN " + then + " ELSE " + alt + " END", args
	default:
		return "", nil
	}
}
