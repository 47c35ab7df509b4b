package qb

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/samber/lo"
)

// DefaultEscapeChar is prefixed onto backslashes and single quotes inside
// string literals when no other character is configured.
const DefaultEscapeChar = `\`

// TimeLayout is the textual form of time.Time values embedded as literals.
const TimeLayout = "2006-01-02 15:04:05 -0700"

// DefaultEscaper escapes with DefaultEscapeChar.
var DefaultEscaper = NewEscaper(DefaultEscapeChar)

// Escaper turns arbitrary values into quoted SQL literals.
// It is immutable and safe for concurrent use.
type Escaper struct {
	char     string
	replacer *strings.Replacer
}

// NewEscaper returns an Escaper that neutralizes backslashes and single
// quotes by prefixing them with char. An empty char disables prefixing, so
// string contents are only wrapped in quotes.
func NewEscaper(char string) *Escaper {
	return &Escaper{
		char:     char,
		replacer: strings.NewReplacer(`\`, char+`\`, `'`, char+`'`),
	}
}

// Char returns the configured escape character.
func (e *Escaper) Char() string {
	return e.char
}

// Escape renders v as a literal: NULL for nil values, otherwise the quoted
// textual form of v with backslashes and quotes escaped.
func (e *Escaper) Escape(v any) string {
	s, ok := text(v)
	if !ok {
		return "NULL"
	}
	return "'" + e.replacer.Replace(s) + "'"
}

// EscapeAll escapes every value in vs.
func (e *Escaper) EscapeAll(vs []any) []string {
	return lo.Map(vs, func(v any, _ int) string { return e.Escape(v) })
}

// Escape escapes v with DefaultEscaper.
func Escape(v any) string {
	return DefaultEscaper.Escape(v)
}

// text stringifies v, reporting false when v is nil.
func text(v any) (string, bool) {
	if v == nil {
		return "", false
	}

	if valuer, ok := v.(driver.Valuer); ok {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		dv, err := valuer.Value()
		if err != nil || dv == nil {
			return "", false
		}
		v = dv
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
		return text(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return "", false
		}
	}

	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case time.Time:
		return t.Format(TimeLayout), true
	case fmt.Stringer:
		return t.String(), true
	}

	return fmt.Sprint(v), true
}
