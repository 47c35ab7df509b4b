package qb

import (
	"sort"

	"github.com/samber/lo"
)

// Field is one column and the value written to it.
type Field struct {
	Name  string
	Value any
}

// Values supplies the columns of an INSERT or UPDATE in render order.
type Values interface {
	Fields() []Field
}

// Row is an ordered list of fields, rendered in slice order.
type Row []Field

// Set appends a field and returns the extended row.
func (r Row) Set(name string, value any) Row {
	return append(r, Field{Name: name, Value: value})
}

func (r Row) Fields() []Field {
	return r
}

// H is an unordered column map. Its fields render in ascending name order.
type H map[string]any

func (h H) Fields() []Field {
	keys := lo.Keys(h)
	sort.Strings(keys)
	return lo.Map(keys, func(k string, _ int) Field { return Field{Name: k, Value: h[k]} })
}

// Names returns the column names of v in order.
func Names(v Values) []string {
	return lo.Map(v.Fields(), func(f Field, _ int) string { return f.Name })
}
