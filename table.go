package qsql

import "strings"

// Drop renders "DROP TABLE table".
func (b *Builder) Drop() string {
	return b.drop(false)
}

// DropIfExists renders "DROP TABLE IF EXISTS table".
func (b *Builder) DropIfExists() string {
	return b.drop(true)
}

func (b *Builder) drop(ifExists bool) string {
	c := b.take()
	sq := "DROP TABLE "
	if ifExists {
		sq += "IF EXISTS "
	}
	return b.end(sq + c.Table)
}

// Alter renders "ALTER TABLE table COMMAND column [dataType]". Underscores in
// command separate words, so "modify_column" renders as MODIFY COLUMN.
func (b *Builder) Alter(command, column string, dataType ...string) string {
	c := b.take()

	var sb strings.Builder

	sb.WriteString("ALTER TABLE ")
	sb.WriteString(c.Table)
	sb.WriteString(" ")
	sb.WriteString(strings.ToUpper(strings.ReplaceAll(command, "_", " ")))
	sb.WriteString(" ")
	sb.WriteString(column)

	if len(dataType) > 0 && dataType[0] != "" {
		sb.WriteString(" ")
		sb.WriteString(dataType[0])
	}

	return b.end(sb.String())
}

func (b *Builder) Analyze() string {
	return b.maintain("ANALYZE")
}

func (b *Builder) Check() string {
	return b.maintain("CHECK")
}

func (b *Builder) Checksum() string {
	return b.maintain("CHECKSUM")
}

func (b *Builder) Optimize() string {
	return b.maintain("OPTIMIZE")
}

func (b *Builder) Repair() string {
	return b.maintain("REPAIR")
}

func (b *Builder) maintain(keyword string) string {
	c := b.take()
	return b.end(keyword + " TABLE " + c.Table)
}

// Query renders tpl with each ? replaced by the matching escaped parameter.
// Pending clauses are discarded.
func (b *Builder) Query(tpl string, params ...any) string {
	b.take()
	return b.end(b.esc.Template(tpl, params...))
}
