package qsql

import (
	"strings"

	"github.com/maxshaw/qsql/qb"
)

// Update renders "UPDATE table SET col = val, ..." followed by any pending
// WHERE, ORDER BY and LIMIT clauses. Empty values render "UPDATE table SET".
func (b *Builder) Update(values qb.Values) string {
	c := b.take()

	var sb strings.Builder

	sb.WriteString("UPDATE ")
	sb.WriteString(c.Table)
	sb.WriteString(" SET")

	for i, f := range values.Fields() {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(" ")
		sb.WriteString(f.Name)
		sb.WriteString(" = ")
		sb.WriteString(b.esc.Escape(f.Value))
	}

	c.tail(&sb)

	return b.end(sb.String())
}

// UpdateOne is Update limited to one row.
func (b *Builder) UpdateOne(values qb.Values) string {
	return b.Limit(1).Update(values)
}

// Delete renders "DELETE FROM table" followed by any pending WHERE, ORDER BY
// and LIMIT clauses. A delete without any of them becomes
// "TRUNCATE TABLE table".
func (b *Builder) Delete() string {
	c := b.take()

	var sb strings.Builder

	sb.WriteString("DELETE FROM ")
	sb.WriteString(c.Table)

	c.tail(&sb)

	sq := sb.String()
	if sq == "DELETE FROM "+c.Table {
		sq = "TRUNCATE TABLE " + c.Table
	}

	return b.end(sq)
}
