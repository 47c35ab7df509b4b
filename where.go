package qsql

import "github.com/maxshaw/qsql/qb"

// Where adds a column condition joined with AND.
//
// args[0] is the operator and args[1] the value. When args[0] is not one of
// qb.Operators it is the value itself and the condition is an equality:
//
//	Where("status", 1)        // status = '1'
//	Where("age", ">=", 18)    // age >= '18'
func (b *Builder) Where(field string, args ...any) *Builder {
	return b.cmp(field, args, false, qb.And)
}

func (b *Builder) OrWhere(field string, args ...any) *Builder {
	return b.cmp(field, args, false, qb.Or)
}

func (b *Builder) NotWhere(field string, args ...any) *Builder {
	return b.cmp(field, args, true, qb.And)
}

func (b *Builder) OrNotWhere(field string, args ...any) *Builder {
	return b.cmp(field, args, true, qb.Or)
}

// WhereRaw adds a templated condition joined with AND; each ? in tpl is
// replaced by the matching escaped parameter.
func (b *Builder) WhereRaw(tpl string, params ...any) *Builder {
	return b.where(qb.Raw(tpl, params...), false, qb.And)
}

func (b *Builder) OrWhereRaw(tpl string, params ...any) *Builder {
	return b.where(qb.Raw(tpl, params...), false, qb.Or)
}

func (b *Builder) NotWhereRaw(tpl string, params ...any) *Builder {
	return b.where(qb.Raw(tpl, params...), true, qb.And)
}

func (b *Builder) OrNotWhereRaw(tpl string, params ...any) *Builder {
	return b.where(qb.Raw(tpl, params...), true, qb.Or)
}

// In adds "field IN (...)". Slice values are expanded.
func (b *Builder) In(field string, values ...any) *Builder {
	return b.where(qb.In(field, values...), false, qb.And)
}

func (b *Builder) OrIn(field string, values ...any) *Builder {
	return b.where(qb.In(field, values...), false, qb.Or)
}

func (b *Builder) NotIn(field string, values ...any) *Builder {
	return b.where(qb.In(field, values...), true, qb.And)
}

func (b *Builder) OrNotIn(field string, values ...any) *Builder {
	return b.where(qb.In(field, values...), true, qb.Or)
}

func (b *Builder) Between(field string, low, high any) *Builder {
	return b.where(qb.Between(field, low, high), false, qb.And)
}

func (b *Builder) OrBetween(field string, low, high any) *Builder {
	return b.where(qb.Between(field, low, high), false, qb.Or)
}

func (b *Builder) NotBetween(field string, low, high any) *Builder {
	return b.where(qb.Between(field, low, high), true, qb.And)
}

func (b *Builder) OrNotBetween(field string, low, high any) *Builder {
	return b.where(qb.Between(field, low, high), true, qb.Or)
}

func (b *Builder) Like(field string, pattern any) *Builder {
	return b.where(qb.Like(field, pattern), false, qb.And)
}

func (b *Builder) OrLike(field string, pattern any) *Builder {
	return b.where(qb.Like(field, pattern), false, qb.Or)
}

func (b *Builder) NotLike(field string, pattern any) *Builder {
	return b.where(qb.Like(field, pattern), true, qb.And)
}

func (b *Builder) OrNotLike(field string, pattern any) *Builder {
	return b.where(qb.Like(field, pattern), true, qb.Or)
}

// Cond adds an arbitrary expression to the WHERE clause.
func (b *Builder) Cond(e qb.Expr, negate bool, conn qb.Connector) *Builder {
	return b.where(e, negate, conn)
}

func (b *Builder) cmp(field string, args []any, negate bool, conn qb.Connector) *Builder {
	op, val := splitArgs(args)
	return b.where(qb.Cmp(field, op, val), negate, conn)
}

func (b *Builder) where(e qb.Expr, negate bool, conn qb.Connector) *Builder {
	if negate {
		e = qb.Not(e)
	}
	b.clauses.Where = qb.Chain(b.clauses.Where, e.Build(b.esc), conn)
	return b
}

func splitArgs(args []any) (op, val any) {
	if len(args) > 0 {
		op = args[0]
	}
	if len(args) > 1 {
		val = args[1]
	}
	return op, val
}
