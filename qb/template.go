package qb

import "strings"

// Placeholder marks a positional parameter inside a template.
const Placeholder = "?"

// Template substitutes each placeholder in tpl with the escaped parameter at
// the same position. Placeholders without a parameter render as nothing and
// parameters without a placeholder are ignored.
func (e *Escaper) Template(tpl string, params ...any) string {
	parts := strings.Split(tpl, Placeholder)
	n := len(parts)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	var sb strings.Builder
	for i, part := range parts {
		sb.WriteString(part)
		if i < n-1 && i < len(params) {
			sb.WriteString(e.Escape(params[i]))
		}
	}
	return sb.String()
}

// Template substitutes placeholders using DefaultEscaper.
func Template(tpl string, params ...any) string {
	return DefaultEscaper.Template(tpl, params...)
}
