package qb

import (
	"reflect"

	"github.com/samber/lo"
)

// Cmp compares col against val using op. An unrecognized op is taken as the
// value itself and compared for equality, so Cmp(col, 1, nil) is Eq(col, 1).
func Cmp(col string, op, val any) Expr {
	return cmp(col, op, val, "=")
}

// Eq renders col = val.
func Eq(col string, val any) Expr {
	return WhereExpr{col: col, op: "=", args: []any{val}}
}

// HavingCmp is Cmp with a greater-than fallback for unrecognized operators.
func HavingCmp(col string, op, val any) Expr {
	return cmp(col, op, val, ">")
}

func cmp(col string, op, val any, fallback string) Expr {
	if s, ok := op.(string); ok && IsOperator(s) {
		return WhereExpr{col: col, op: s, args: []any{val}}
	}
	return WhereExpr{col: col, op: fallback, args: []any{op}}
}

// Raw is a templated condition; each ? is replaced by the matching escaped
// argument.
func Raw(s string, args ...any) Expr {
	return WhereExpr{raw: s, args: args}
}

// In renders col IN (...). Slice arguments are flattened into the list.
func In(col string, args ...any) Expr {
	return WhereExpr{col: col, op: opIn, args: flatten(args)}
}

func Between(col string, a, b any) Expr {
	return WhereExpr{col: col, op: opBetween, args: []any{a, b}}
}

// Like matches col against pattern as given; no wildcards are added.
func Like(col string, pattern any) Expr {
	return WhereExpr{col: col, op: opLike, args: []any{pattern}}
}

func flatten(args []any) []any {
	return lo.Flatten(lo.Map(args, func(arg any, _ int) []any {
		if arg == nil {
			return []any{nil}
		}
		rv := reflect.ValueOf(arg)
		if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Type().Elem().Kind() == reflect.Uint8 {
			return []any{arg}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}))
}
