package qb

import (
	"strings"

	"github.com/samber/lo"
)

// Expr is a single condition fragment of a WHERE or HAVING clause.
type Expr interface {
	Build(esc *Escaper) string
}

const (
	opIn      = "IN"
	opBetween = "BETWEEN"
	opLike    = "LIKE"
)

// Operators recognized as the comparison in a column condition.
var Operators = []string{"=", "!=", "<", ">", "<=", ">=", "<>"}

// IsOperator reports whether op is one of Operators.
func IsOperator(op string) bool {
	return lo.Contains(Operators, op)
}

type WhereExpr struct {
	col, op string
	args    []any
	raw     string
	negated bool
}

func (w WhereExpr) String() string {
	return w.Build(DefaultEscaper)
}

func (w WhereExpr) Build(esc *Escaper) string {
	switch w.op {
	case opIn:
		return w.col + " " + w.not() + opIn + " (" + strings.Join(esc.EscapeAll(w.args), ", ") + ")"

	case opBetween:
		return w.col + " " + w.not() + opBetween + " " + esc.Escape(w.args[0]) + " AND " + esc.Escape(w.args[1])

	case opLike:
		return w.col + " " + w.not() + opLike + " " + esc.Escape(w.args[0])

	case "":
		return w.not() + esc.Template(w.raw, w.args...)
	}

	return w.not() + w.col + " " + w.op + " " + esc.Escape(w.args[0])
}

func (w WhereExpr) not() string {
	return lo.Ternary(w.negated, "NOT ", "")
}

func (w WhereExpr) negate() Expr {
	w.negated = !w.negated
	return w
}

type notExpr struct {
	expr Expr
}

func (e notExpr) Build(esc *Escaper) string {
	return "NOT " + e.expr.Build(esc)
}

// Not negates e. Keyword predicates place NOT before the keyword
// (col NOT IN ...), every other condition is prefixed with it.
func Not(e Expr) Expr {
	if w, ok := e.(WhereExpr); ok {
		return w.negate()
	}
	return notExpr{expr: e}
}

// Connector joins successive conditions.
type Connector string

const (
	And Connector = "AND"
	Or  Connector = "OR"
)

// Chain appends cond to prev, separated by conn unless prev is empty.
func Chain(prev, cond string, conn Connector) string {
	if prev == "" {
		return cond
	}
	return prev + " " + string(conn) + " " + cond
}

// SortBy is an ORDER BY direction. Any case is accepted.
type SortBy string

const (
	Ascend  SortBy = "ASC"
	Descend SortBy = "DESC"
)
