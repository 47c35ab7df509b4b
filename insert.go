package qsql

import (
	"strings"

	"github.com/samber/lo"

	"github.com/maxshaw/qsql/qb"
)

// Insert renders "INSERT INTO table (cols) VALUES (vals)" with the fields of
// values in order.
func (b *Builder) Insert(values qb.Values) string {
	c := b.take()
	fields := values.Fields()

	var sb strings.Builder

	sb.WriteString("INSERT INTO ")
	sb.WriteString(c.Table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(qb.Names(values), ", "))
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.Join(lo.Map(fields, func(f qb.Field, _ int) string {
		return b.esc.Escape(f.Value)
	}), ", "))
	sb.WriteString(")")

	return b.end(sb.String())
}
