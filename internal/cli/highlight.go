package cli

import (
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/samber/lo"
)

var keywords = lo.Associate([]string{
	"SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "IN", "BETWEEN", "LIKE",
	"JOIN", "LEFT", "RIGHT", "INNER", "FULL", "OUTER", "ON", "AS",
	"GROUP", "BY", "HAVING", "ORDER", "ASC", "DESC", "LIMIT",
	"INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE", "TRUNCATE",
	"DROP", "TABLE", "IF", "EXISTS", "ALTER", "ADD", "MODIFY", "COLUMN",
	"INDEX", "CONSTRAINT", "ANALYZE", "CHECK", "CHECKSUM", "OPTIMIZE", "REPAIR",
	"NULL", "MAX", "MIN", "SUM", "COUNT", "AVG",
}, func(k string) (string, struct{}) { return k, struct{}{} })

var keywordColor = color.New(color.FgCyan, color.Bold)

// Highlight colors SQL keywords in sq. Quoted literals are left untouched;
// a quote preceded by escapeChar does not end a literal.
func Highlight(sq, escapeChar string) string {
	if color.NoColor {
		return sq
	}

	var (
		out    strings.Builder
		word   strings.Builder
		quoted bool
		esc    = []rune(escapeChar)
	)

	flush := func() {
		w := word.String()
		if _, ok := keywords[w]; ok {
			out.WriteString(keywordColor.Sprint(w))
		} else {
			out.WriteString(w)
		}
		word.Reset()
	}

	runes := []rune(sq)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if quoted {
			out.WriteRune(r)
			if len(esc) == 1 && r == esc[0] && i+1 < len(runes) && (runes[i+1] == '\'' || runes[i+1] == '\\') {
				i++
				out.WriteRune(runes[i])
				continue
			}
			if r == '\'' {
				quoted = false
			}
			continue
		}

		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			word.WriteRune(r)
			continue
		}

		flush()
		out.WriteRune(r)
		if r == '\'' {
			quoted = true
		}
	}
	flush()

	return out.String()
}
