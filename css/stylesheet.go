package css

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Rule is a single CSS rule: rendered selector and its declarations.
type Rule struct {
	Selector   string
	Properties map[string]Value
}

// Options controls stylesheet formatting.
type Options struct {
	Indent  string // declaration indent, ignored when Compact
	Compact bool   // one rule per line, no optional whitespace
}

// DefaultOptions are used by WriteTo and String.
var DefaultOptions = Options{Indent: "  "}

// Stylesheet is an ordered list of rules with optional leading comment.
type Stylesheet struct {
	Header string
	Rules  []Rule
}

// WriteTo writes the stylesheet to w using DefaultOptions, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	return s.Format(w, DefaultOptions)
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// Format writes the stylesheet to w in rule order. Property order within a
// rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) Format(w io.Writer, opts Options) (int64, error) {
	var total int64

	if s.Header != "" {
		n, err := fmt.Fprintf(w, "/* %s */\n", escapeComment(s.Header))
		total += int64(n)
		if err != nil {
			return total, err
		}
		if len(s.Rules) > 0 && !opts.Compact {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}

	for i := range s.Rules {
		var (
			n   int
			err error
		)
		if opts.Compact {
			n, err = writeCompactRule(w, &s.Rules[i])
		} else {
			n, err = writeRule(w, &s.Rules[i], opts.Indent)
		}
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between rules (except after last)
		if !opts.Compact && i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, name := range sortedNames(rule.Properties) {
		n, err = fmt.Fprintf(w, "%s%s: %s;\n", indent, name, rule.Properties[name].Raw)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeCompactRule writes rule on a single line: sel{a:b;c:d}
func writeCompactRule(w io.Writer, rule *Rule) (int, error) {
	names := sortedNames(rule.Properties)
	decls := make([]string, 0, len(names))
	for _, name := range names {
		decls = append(decls, name+":"+rule.Properties[name].Compact)
	}
	return fmt.Fprintf(w, "%s{%s}\n", rule.Selector, strings.Join(decls, ";"))
}

func sortedNames(props map[string]Value) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// escapeComment makes sure text cannot close the comment it is placed in.
func escapeComment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
