package script

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/maxshaw/qsql/qb"
)

// List accepts either a single string or a sequence of strings.
type List []string

func (l *List) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*l = List{node.Value}
		return nil
	}

	var items []string
	if err := node.Decode(&items); err != nil {
		return err
	}
	*l = items
	return nil
}

// Limit accepts a count or a [count, end] pair.
type Limit []int

func (l *Limit) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		*l = Limit{n}
		return nil
	}

	var items []int
	if err := node.Decode(&items); err != nil {
		return err
	}
	*l = items
	return nil
}

// Values is a column mapping decoded in document order.
type Values struct {
	qb.Row
}

func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: values must be a mapping", node.Line)
	}

	row := make(qb.Row, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var val any
		if err := node.Content[i+1].Decode(&val); err != nil {
			return err
		}
		row = row.Set(node.Content[i].Value, val)
	}
	v.Row = row
	return nil
}
