// Package debug has helpers producing human readable dumps of program
// structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// Tree accumulates indented text, two spaces per depth level.
type Tree struct {
	sb strings.Builder
}

func (t *Tree) String() string {
	return t.sb.String()
}

func (t *Tree) indent(depth int) {
	for range depth {
		t.sb.WriteString("  ")
	}
}

// Line writes formatted line at depth.
func (t *Tree) Line(depth int, format string, args ...any) {
	t.indent(depth)
	fmt.Fprintf(&t.sb, format, args...)
	t.sb.WriteByte('\n')
}

// Field writes "label: value" line at depth. Non empty values are quoted so
// significant whitespace stays visible.
func (t *Tree) Field(depth int, label, value string) {
	t.indent(depth)
	t.sb.WriteString(label)
	t.sb.WriteString(": ")
	if value != "" {
		t.sb.WriteString(strconv.Quote(value))
	}
	t.sb.WriteByte('\n')
}
