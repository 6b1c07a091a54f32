package recipe

import (
	"fmt"

	"selb/selector"
	"selb/utils/debug"
)

// Tree returns indented dump of the named entry showing how it is composed.
func (c *Catalog) Tree(name string) (string, error) {
	s, ok := c.entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	var t debug.Tree
	t.Line(0, "%s", name)
	dumpStringifier(&t, 1, s)
	return t.String(), nil
}

func dumpStringifier(t *debug.Tree, depth int, s selector.Stringifier) {
	switch v := s.(type) {
	case selector.Combined:
		t.Line(depth, "combined")
		t.Field(depth+1, "combinator", v.Combinator)
		t.Line(depth+1, "left")
		dumpStringifier(t, depth+2, v.Left)
		t.Line(depth+1, "right")
		dumpStringifier(t, depth+2, v.Right)
	case selector.Selector:
		t.Line(depth, "selector")
		for _, f := range v.Fragments() {
			t.Field(depth+1, f.Kind.String(), f.Text)
		}
		if err := v.Err(); err != nil {
			t.Field(depth+1, "error", err.Error())
		}
	case nil:
		t.Line(depth, "<nil>")
	default:
		text, err := s.Stringify()
		if err != nil {
			t.Field(depth, "error", err.Error())
			return
		}
		t.Field(depth, fmt.Sprintf("%T", s), text)
	}
}
