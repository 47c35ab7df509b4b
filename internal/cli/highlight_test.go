package cli

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func TestHighlightDisabled(t *testing.T) {
	withColor(t, false)
	sq := "SELECT * FROM test WHERE a = 'SELECT'"
	assert.Equal(t, sq, Highlight(sq, `\`))
}

func TestHighlight(t *testing.T) {
	withColor(t, true)
	kw := func(s string) string { return keywordColor.Sprint(s) }

	tests := []struct {
		name, in, esc, want string
	}{
		{"keywords", "SELECT a FROM t", `\`, kw("SELECT") + " a " + kw("FROM") + " t"},
		{"identifiers untouched", "SELECT selection FROM t_from", `\`, kw("SELECT") + " selection " + kw("FROM") + " t_from"},
		{"literal", "WHERE a = 'FROM'", `\`, kw("WHERE") + " a = 'FROM'"},
		{"escaped quote", `WHERE a = 'it\'s FROM' AND b`, `\`, kw("WHERE") + ` a = 'it\'s FROM' ` + kw("AND") + " b"},
		{"doubled quote", "WHERE a = 'it''s' OR b", "'", kw("WHERE") + " a = 'it''s' " + kw("OR") + " b"},
		{"null", "VALUES (NULL)", `\`, kw("VALUES") + " (" + kw("NULL") + ")"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.in, tt.esc))
		})
	}
}
