package qsql

import (
	"strconv"
	"strings"

	"github.com/maxshaw/qsql/qb"
)

// Select adds fields to the select list. The first call replaces the default
// "*", later calls append.
func (b *Builder) Select(fields ...string) *Builder {
	if len(fields) > 0 {
		b.selects(strings.Join(fields, ", "))
	}
	return b
}

func (b *Builder) selects(value string) {
	if b.clauses.Select == "*" {
		b.clauses.Select = value
	} else {
		b.clauses.Select += ", " + value
	}
}

func (b *Builder) Max(field string, alias ...string) *Builder {
	return b.aggregate("MAX", field, alias)
}

func (b *Builder) Min(field string, alias ...string) *Builder {
	return b.aggregate("MIN", field, alias)
}

func (b *Builder) Sum(field string, alias ...string) *Builder {
	return b.aggregate("SUM", field, alias)
}

func (b *Builder) Count(field string, alias ...string) *Builder {
	return b.aggregate("COUNT", field, alias)
}

func (b *Builder) Avg(field string, alias ...string) *Builder {
	return b.aggregate("AVG", field, alias)
}

func (b *Builder) aggregate(fn, field string, alias []string) *Builder {
	value := fn + "(" + field + ")"
	if len(alias) > 0 && alias[0] != "" {
		value += " AS " + alias[0]
	}
	b.selects(value)
	return b
}

// Join adds "JOIN target ON first = second", or "JOIN target ON first" when
// second is omitted and first is a complete condition.
func (b *Builder) Join(target, first string, second ...string) *Builder {
	return b.join("", target, first, second)
}

func (b *Builder) LeftJoin(target, first string, second ...string) *Builder {
	return b.join("LEFT ", target, first, second)
}

func (b *Builder) RightJoin(target, first string, second ...string) *Builder {
	return b.join("RIGHT ", target, first, second)
}

func (b *Builder) InnerJoin(target, first string, second ...string) *Builder {
	return b.join("INNER ", target, first, second)
}

func (b *Builder) FullOuterJoin(target, first string, second ...string) *Builder {
	return b.join("FULL OUTER ", target, first, second)
}

func (b *Builder) LeftOuterJoin(target, first string, second ...string) *Builder {
	return b.join("LEFT OUTER ", target, first, second)
}

func (b *Builder) RightOuterJoin(target, first string, second ...string) *Builder {
	return b.join("RIGHT OUTER ", target, first, second)
}

func (b *Builder) join(typ, target, first string, second []string) *Builder {
	var sb strings.Builder

	sb.WriteString(" ")
	sb.WriteString(typ)
	sb.WriteString("JOIN ")
	sb.WriteString(target)
	sb.WriteString(" ON ")
	sb.WriteString(first)

	if len(second) > 0 {
		sb.WriteString(" = ")
		sb.WriteString(second[0])
	}

	b.clauses.Join += sb.String()
	return b
}

// GroupBy replaces the GROUP BY list.
func (b *Builder) GroupBy(fields ...string) *Builder {
	b.clauses.GroupBy = strings.Join(fields, ", ")
	return b
}

// Having sets the HAVING condition. args follow Where, except that a value in
// the operator position is compared with ">" instead of "=".
func (b *Builder) Having(field string, args ...any) *Builder {
	op, val := splitArgs(args)
	b.clauses.Having = qb.HavingCmp(field, op, val).Build(b.esc)
	return b
}

// HavingRaw sets the HAVING condition from a ? template.
func (b *Builder) HavingRaw(tpl string, params ...any) *Builder {
	b.clauses.Having = qb.Raw(tpl, params...).Build(b.esc)
	return b
}

// OrderBy appends an ordering. Without a direction, fields containing a
// space and rand() are used as given and anything else sorts ascending.
func (b *Builder) OrderBy(field string, dir ...qb.SortBy) *Builder {
	var order string
	switch {
	case len(dir) > 0:
		order = field + " " + strings.ToUpper(string(dir[0]))
	case strings.Contains(field, " ") || field == "rand()":
		order = field
	default:
		order = field + " " + string(qb.Ascend)
	}

	if b.clauses.OrderBy == "" {
		b.clauses.OrderBy = order
	} else {
		b.clauses.OrderBy += ", " + order
	}
	return b
}

// Limit sets "LIMIT count", or "LIMIT count, end" when end is given.
func (b *Builder) Limit(count int, end ...int) *Builder {
	b.clauses.Limit = strconv.Itoa(count)
	if len(end) > 0 {
		b.clauses.Limit += ", " + strconv.Itoa(end[0])
	}
	return b
}

// Get renders the pending SELECT limited to one row.
func (b *Builder) Get() string {
	return b.Limit(1).GetAll()
}

// GetAll renders the pending SELECT.
func (b *Builder) GetAll() string {
	c := b.take()

	var sb strings.Builder

	sb.WriteString("SELECT ")
	sb.WriteString(c.Select)
	sb.WriteString(" FROM ")
	sb.WriteString(c.Table)
	sb.WriteString(c.Join)

	if c.Where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(c.Where)
	}

	if c.GroupBy != "" {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(c.GroupBy)
	}

	if c.Having != "" {
		sb.WriteString(" HAVING ")
		sb.WriteString(c.Having)
	}

	if c.OrderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(c.OrderBy)
	}

	if c.Limit != "" {
		sb.WriteString(" LIMIT ")
		sb.WriteString(c.Limit)
	}

	return b.end(sb.String())
}
