// Package script replays statements described in YAML against a builder.
package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/maxshaw/qsql"
	"github.com/maxshaw/qsql/qb"
)

// File is a statement script.
type File struct {
	Statements []Statement `yaml:"statements"`
}

// Statement describes the clauses of one statement and the terminal action
// that renders it.
type Statement struct {
	Table      List        `yaml:"table"`
	Select     List        `yaml:"select"`
	Aggregates []Aggregate `yaml:"aggregates"`
	Joins      []Join      `yaml:"joins"`
	Where      []Cond      `yaml:"where"`
	GroupBy    List        `yaml:"group_by"`
	Having     *Cond       `yaml:"having"`
	OrderBy    []Order     `yaml:"order_by"`
	Limit      Limit       `yaml:"limit"`

	Action string  `yaml:"action"`
	Values *Values `yaml:"values"`
	Alter  *Alter  `yaml:"alter"`
	SQL    string  `yaml:"sql"`
	Params []any   `yaml:"params"`
}

type Aggregate struct {
	Fn    string `yaml:"fn"`
	Field string `yaml:"field"`
	As    string `yaml:"as"`
}

type Join struct {
	Type  string `yaml:"type"`
	Table string `yaml:"table"`
	On    string `yaml:"on"`
	With  string `yaml:"with"`
}

// Cond is one WHERE or HAVING condition. The kind is picked by which of
// In, Between, Like or Raw is set; otherwise it compares Field with Value.
type Cond struct {
	Field   string  `yaml:"field"`
	Op      string  `yaml:"op"`
	Value   any     `yaml:"value"`
	In      []any   `yaml:"in"`
	Between []any   `yaml:"between"`
	Like    *string `yaml:"like"`
	Raw     string  `yaml:"raw"`
	Params  []any   `yaml:"params"`
	Or      bool    `yaml:"or"`
	Not     bool    `yaml:"not"`
}

type Order struct {
	Field string `yaml:"field"`
	Dir   string `yaml:"dir"`
}

type Alter struct {
	Command string `yaml:"command"`
	Column  string `yaml:"column"`
	Type    string `yaml:"type"`
}

type joinFunc func(b *qsql.Builder, target, first string, second ...string) *qsql.Builder

var joins = map[string]joinFunc{
	"":            (*qsql.Builder).Join,
	"inner":       (*qsql.Builder).InnerJoin,
	"left":        (*qsql.Builder).LeftJoin,
	"right":       (*qsql.Builder).RightJoin,
	"full_outer":  (*qsql.Builder).FullOuterJoin,
	"left_outer":  (*qsql.Builder).LeftOuterJoin,
	"right_outer": (*qsql.Builder).RightOuterJoin,
}

type aggregateFunc func(b *qsql.Builder, field string, alias ...string) *qsql.Builder

var aggregates = map[string]aggregateFunc{
	"max":   (*qsql.Builder).Max,
	"min":   (*qsql.Builder).Min,
	"sum":   (*qsql.Builder).Sum,
	"count": (*qsql.Builder).Count,
	"avg":   (*qsql.Builder).Avg,
}

var terminals = map[string]func(b *qsql.Builder) string{
	"get":            (*qsql.Builder).Get,
	"get_all":        (*qsql.Builder).GetAll,
	"delete":         (*qsql.Builder).Delete,
	"drop":           (*qsql.Builder).Drop,
	"drop_if_exists": (*qsql.Builder).DropIfExists,
	"analyze":        (*qsql.Builder).Analyze,
	"check":          (*qsql.Builder).Check,
	"checksum":       (*qsql.Builder).Checksum,
	"optimize":       (*qsql.Builder).Optimize,
	"repair":         (*qsql.Builder).Repair,
}

// Load decodes a script. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Msg: "empty script", Underlying: err}
		}
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	return &f, nil
}

// Render applies every statement to b in order and returns the rendered
// statements. It stops at the first invalid statement.
func (f *File) Render(b *qsql.Builder) ([]string, error) {
	out := make([]string, 0, len(f.Statements))
	for i, s := range f.Statements {
		sq, err := s.Apply(b)
		if err != nil {
			return out, fmt.Errorf("statement %d: %w", i+1, err)
		}
		out = append(out, sq)
	}
	return out, nil
}

func (s Statement) action() string {
	return lo.Ternary(s.Action == "", "get_all", strings.ToLower(s.Action))
}

// Validate reports the first field of s that cannot be rendered.
func (s Statement) Validate() error {
	for i, a := range s.Aggregates {
		if _, ok := aggregates[strings.ToLower(a.Fn)]; !ok {
			return invalid(fmt.Sprintf("aggregates[%d].fn", i), "unknown aggregate %q", a.Fn)
		}
		if a.Field == "" {
			return invalid(fmt.Sprintf("aggregates[%d].field", i), "field is required")
		}
	}

	for i, j := range s.Joins {
		if _, ok := joins[strings.ToLower(j.Type)]; !ok {
			return invalid(fmt.Sprintf("joins[%d].type", i), "unknown join type %q", j.Type)
		}
		if j.Table == "" || j.On == "" {
			return invalid(fmt.Sprintf("joins[%d]", i), "table and on are required")
		}
	}

	for i, c := range s.Where {
		if _, err := c.expr(); err != nil {
			return prefix(fmt.Sprintf("where[%d]", i), err)
		}
	}

	if s.Having != nil {
		if err := s.Having.validHaving(); err != nil {
			return prefix("having", err)
		}
	}

	for i, o := range s.OrderBy {
		if o.Field == "" {
			return invalid(fmt.Sprintf("order_by[%d].field", i), "field is required")
		}
	}

	if len(s.Limit) > 2 {
		return invalid("limit", "expected a count or [count, end], got %d values", len(s.Limit))
	}

	switch action := s.action(); action {
	case "insert", "update":
		if s.Values == nil || len(s.Values.Row) == 0 {
			return invalid("values", "%s requires values", action)
		}
	case "alter":
		if s.Alter == nil || s.Alter.Command == "" || s.Alter.Column == "" {
			return invalid("alter", "command and column are required")
		}
	case "query":
		if s.SQL == "" {
			return invalid("sql", "query requires sql")
		}
	default:
		if _, ok := terminals[action]; !ok {
			return invalid("action", "unknown action %q", s.Action)
		}
	}

	return nil
}

// Apply validates s, accumulates its clauses on b and renders it with the
// configured action.
func (s Statement) Apply(b *qsql.Builder) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	action := s.action()
	if action == "query" {
		return b.Query(s.SQL, s.Params...), nil
	}

	b.Table(s.Table...).Select(s.Select...)

	for _, a := range s.Aggregates {
		aggregates[strings.ToLower(a.Fn)](b, a.Field, a.As)
	}

	for _, j := range s.Joins {
		join := joins[strings.ToLower(j.Type)]
		if j.With == "" {
			join(b, j.Table, j.On)
		} else {
			join(b, j.Table, j.On, j.With)
		}
	}

	for _, c := range s.Where {
		e, _ := c.expr()
		b.Cond(e, c.Not, lo.Ternary(c.Or, qb.Or, qb.And))
	}

	if len(s.GroupBy) > 0 {
		b.GroupBy(s.GroupBy...)
	}

	if h := s.Having; h != nil {
		switch {
		case h.Raw != "":
			b.HavingRaw(h.Raw, h.Params...)
		case h.Op != "":
			b.Having(h.Field, h.Op, h.Value)
		default:
			b.Having(h.Field, h.Value)
		}
	}

	for _, o := range s.OrderBy {
		if o.Dir == "" {
			b.OrderBy(o.Field)
		} else {
			b.OrderBy(o.Field, qb.SortBy(o.Dir))
		}
	}

	if len(s.Limit) > 0 {
		b.Limit(s.Limit[0], s.Limit[1:]...)
	}

	switch action {
	case "insert":
		return b.Insert(s.Values.Row), nil
	case "update":
		return b.Update(s.Values.Row), nil
	case "alter":
		return b.Alter(s.Alter.Command, s.Alter.Column, s.Alter.Type), nil
	}
	return terminals[action](b), nil
}

func (c Cond) kinds() int {
	return lo.Count([]bool{c.In != nil, c.Between != nil, c.Like != nil, c.Raw != ""}, true)
}

func (c Cond) expr() (qb.Expr, error) {
	if c.kinds() > 1 {
		return nil, invalid("", "only one of in, between, like or raw may be set")
	}

	if c.Raw != "" {
		return qb.Raw(c.Raw, c.Params...), nil
	}

	if c.Field == "" {
		return nil, invalid("field", "field is required")
	}

	switch {
	case c.In != nil:
		return qb.In(c.Field, c.In...), nil
	case c.Between != nil:
		if len(c.Between) != 2 {
			return nil, invalid("between", "expected [low, high], got %d values", len(c.Between))
		}
		return qb.Between(c.Field, c.Between[0], c.Between[1]), nil
	case c.Like != nil:
		return qb.Like(c.Field, *c.Like), nil
	case c.Op != "":
		if !qb.IsOperator(c.Op) {
			return nil, invalid("op", "unknown operator %q", c.Op)
		}
		return qb.Cmp(c.Field, c.Op, c.Value), nil
	}
	return qb.Eq(c.Field, c.Value), nil
}

func (c Cond) validHaving() error {
	if c.In != nil || c.Between != nil || c.Like != nil {
		return invalid("", "having supports comparisons and raw conditions only")
	}
	if c.Or || c.Not {
		return invalid("", "having does not accept or/not")
	}
	if c.Raw == "" && c.Field == "" {
		return invalid("field", "field is required")
	}
	if c.Op != "" && !qb.IsOperator(c.Op) {
		return invalid("op", "unknown operator %q", c.Op)
	}
	return nil
}

func prefix(field string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		if verr.Field == "" {
			return &ValidationError{Field: field, Msg: verr.Msg, Underlying: verr.Underlying}
		}
		return &ValidationError{Field: field + "." + verr.Field, Msg: verr.Msg, Underlying: verr.Underlying}
	}
	return err
}
