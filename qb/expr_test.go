package qb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate(t *testing.T) {
	tests := []struct {
		name   string
		tpl    string
		params []any
		want   string
	}{
		{"empty", "", nil, ""},
		{"no placeholders", "SELECT 1", []any{1}, "SELECT 1"},
		{"trailing placeholder", "id = ?", []any{7}, "id = '7'"},
		{"leading placeholder", "? = id", []any{7}, "'7' = id"},
		{"trailing text", "id = ? LIMIT 5", []any{7}, "id = '7' LIMIT 5"},
		{"two", "id = ? AND title = ?", []any{7, "Ruby"}, "id = '7' AND title = 'Ruby'"},
		{"excess placeholders", "a = ? AND b = ? AND c", []any{1}, "a = '1' AND b =  AND c"},
		{"missing trailing param", "a = ? AND b = ?", []any{1}, "a = '1' AND b = "},
		{"excess params", "a = ?", []any{1, 2, 3}, "a = '1'"},
		{"excess params trailing text", "a = ? ORDER BY id", []any{1, 2}, "a = '1' ORDER BY id"},
		{"params without placeholders", "SELECT 1", []any{5, 6}, "SELECT 1"},
		{"adjacent", "??", []any{1, 2}, ""},
		{"nil param", "a = ?", []any{nil}, "a = NULL"},
		{"escaped param", "a = ?", []any{"x'?"}, `a = 'x\'?'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Template(tt.tpl, tt.params...))
		})
	}
}

func TestTemplateEscaper(t *testing.T) {
	assert.Equal(t, "a = 'it''s'", NewEscaper("'").Template("a = ?", "it's"))
}

func TestExprBuild(t *testing.T) {
	esc := DefaultEscaper

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"eq", Eq("a", 1), "a = '1'"},
		{"cmp", Cmp("a", ">=", 1), "a >= '1'"},
		{"cmp fallback", Cmp("a", 5, nil), "a = '5'"},
		{"cmp unknown operator", Cmp("a", "~", 1), "a = '~'"},
		{"having cmp", HavingCmp("COUNT(a)", "<", 3), "COUNT(a) < '3'"},
		{"having fallback", HavingCmp("COUNT(a)", 3, nil), "COUNT(a) > '3'"},
		{"raw", Raw("a = ? OR b = ?", 1, 2), "a = '1' OR b = '2'"},
		{"in", In("id", 1, 2, 3), "id IN ('1', '2', '3')"},
		{"in slice", In("id", []int{1, 2}), "id IN ('1', '2')"},
		{"in mixed", In("id", 1, []string{"a", "b"}, nil), "id IN ('1', 'a', 'b', NULL)"},
		{"in bytes", In("id", []byte("ab")), "id IN ('ab')"},
		{"between", Between("age", 18, 30), "age BETWEEN '18' AND '30'"},
		{"like", Like("title", "%go%"), "title LIKE '%go%'"},
		{"not eq", Not(Eq("a", 1)), "NOT a = '1'"},
		{"not raw", Not(Raw("a = ?", 1)), "NOT a = '1'"},
		{"not in", Not(In("id", 1)), "id NOT IN ('1')"},
		{"not between", Not(Between("age", 1, 2)), "age NOT BETWEEN '1' AND '2'"},
		{"not like", Not(Like("t", "x")), "t NOT LIKE 'x'"},
		{"double not", Not(Not(Eq("a", 1))), "a = '1'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.Build(esc))
		})
	}
}

type customExpr struct{}

func (customExpr) Build(*Escaper) string { return "x IS NULL" }

func TestNotCustom(t *testing.T) {
	assert.Equal(t, "NOT x IS NULL", Not(customExpr{}).Build(DefaultEscaper))
}

func TestIsOperator(t *testing.T) {
	for _, op := range []string{"=", "!=", "<", ">", "<=", ">=", "<>"} {
		assert.True(t, IsOperator(op), op)
	}
	for _, op := range []string{"", "==", "LIKE", "IN", "1"} {
		assert.False(t, IsOperator(op), op)
	}
}

func TestChain(t *testing.T) {
	assert.Equal(t, "a", Chain("", "a", And))
	assert.Equal(t, "a AND b", Chain("a", "b", And))
	assert.Equal(t, "a AND b OR c", Chain(Chain("a", "b", And), "c", Or))
}

func TestWhereExprString(t *testing.T) {
	assert.Equal(t, "a = 'b'", Eq("a", "b").(WhereExpr).String())
}
