package selector

import (
	"errors"
	"fmt"
	"strings"
)

// Kind of selector fragment.
type Kind int

const (
	KindElement Kind = iota + 1
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

// ErrInvalidKind is returned by ParseKind for unknown names.
var ErrInvalidKind = errors.New("not a valid selector kind")

var kindNames = [...]string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
}

// String returns the kind name as used in error messages and recipes.
func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k >= KindElement && k <= KindPseudoElement
}

// Rank is the ordering weight of the kind, fragments of a selector must be
// added with non-decreasing rank.
func (k Kind) Rank() int {
	return int(k)
}

// Singleton reports whether at most one fragment of this kind is allowed per
// selector.
func (k Kind) Singleton() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// format renders value the way it appears in selector text.
func (k Kind) format(value string) string {
	switch k {
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default:
		return value
	}
}

// KindNames returns kind names in rank order.
func KindNames() []string {
	names := make([]string, 0, len(kindNames)-1)
	for k := KindElement; k <= KindPseudoElement; k++ {
		names = append(names, kindNames[k])
	}
	return names
}

// ParseKind converts name to Kind. Matching ignores case, dashes and
// underscores, so "pseudo-class", "pseudo_class" and "pseudoClass" are all
// accepted.
func ParseKind(name string) (Kind, error) {
	norm := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))

	for k := KindElement; k <= KindPseudoElement; k++ {
		if strings.ReplaceAll(kindNames[k], "-", "") == norm {
			return k, nil
		}
	}
	return Kind(0), fmt.Errorf("%q is %w", name, ErrInvalidKind)
}
