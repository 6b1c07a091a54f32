package css

import (
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParsePropertyName checks that name is a single identifier and returns it in
// canonical form. Regular properties are lower cased, custom properties
// ("--name") are case sensitive and kept as is.
func ParsePropertyName(name string) (string, error) {
	name = strings.TrimSpace(name)
	l := css.NewLexer(parse.NewInputString(name))

	tt, data := l.Next()
	if tt != css.IdentToken && tt != css.CustomPropertyNameToken {
		return "", fmt.Errorf("%w: property name %q", ErrBadValue, name)
	}
	if next, _ := l.Next(); next != css.ErrorToken {
		return "", fmt.Errorf("%w: property name %q", ErrBadValue, name)
	}
	if strings.HasPrefix(string(data), "--") {
		return string(data), nil
	}
	return strings.ToLower(string(data)), nil
}
