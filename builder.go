// Package qsql assembles SQL statement text from chained builder calls.
// Statements are only rendered, never executed.
package qsql

import (
	"log"
	"strings"

	"github.com/maxshaw/qsql/qb"
)

// Clauses is the state accumulated by a Builder between terminal calls.
type Clauses struct {
	Table   string
	Select  string
	Join    string
	Where   string
	GroupBy string
	Having  string
	OrderBy string
	Limit   string
}

func newClauses() Clauses {
	return Clauses{Select: "*"}
}

// Builder assembles one SQL statement at a time from chained calls. Every
// terminal method renders the pending clauses, resets them and returns the
// statement text. A Builder is not safe for concurrent use.
type Builder struct {
	esc    *qb.Escaper
	logger *log.Logger

	clauses   Clauses
	lastQuery string
}

type Option func(*Builder)

// WithEscaper sets the escaper used for every embedded value.
func WithEscaper(esc *qb.Escaper) Option {
	return func(b *Builder) {
		if esc != nil {
			b.esc = esc
		}
	}
}

// WithEscapeChar is WithEscaper(qb.NewEscaper(char)). An empty char disables
// escaping inside literals.
func WithEscapeChar(char string) Option {
	return WithEscaper(qb.NewEscaper(char))
}

// WithLogger logs every rendered statement to l.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{esc: qb.DefaultEscaper, clauses: newClauses()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Escaper returns the escaper the builder embeds values with.
func (b *Builder) Escaper() *qb.Escaper {
	return b.esc
}

// Table selects the table(s) the statement works on, replacing any previous
// selection.
func (b *Builder) Table(names ...string) *Builder {
	b.clauses.Table = strings.Join(names, ", ")
	return b
}

// From selects the table of m.
func (b *Builder) From(m Modeler) *Builder {
	return b.Table(m.TableName())
}

// Clauses returns a copy of the pending clause state.
func (b *Builder) Clauses() Clauses {
	return b.clauses
}

// LastQuery returns the most recently rendered statement.
func (b *Builder) LastQuery() string {
	return b.lastQuery
}

// take hands the pending clauses to a terminal call and leaves defaults in
// their place.
func (b *Builder) take() Clauses {
	c := b.clauses
	b.clauses = newClauses()
	return c
}

func (b *Builder) end(sq string) string {
	b.lastQuery = sq
	if b.logger != nil {
		b.logger.Printf("[SQL] %s\n", sq)
	}
	return sq
}

// tail renders the WHERE, ORDER BY and LIMIT clauses shared by SELECT,
// UPDATE and DELETE.
func (c Clauses) tail(sb *strings.Builder) {
	if c.Where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(c.Where)
	}

	if c.OrderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(c.OrderBy)
	}

	if c.Limit != "" {
		sb.WriteString(" LIMIT ")
		sb.WriteString(c.Limit)
	}
}
