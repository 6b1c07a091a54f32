package css

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrBadValue is returned for declaration values which cannot be emitted.
var ErrBadValue = errors.New("bad declaration value")

// Value is a normalized declaration value.
type Value struct {
	Raw     string // comments dropped, whitespace collapsed: "0px  auto" -> "0px auto"
	Compact string // Raw without optional whitespace and units of zero lengths: "0 auto"
}

// lengthUnits may be dropped from zero values. Other units (time, angle,
// resolution) are required by CSS even for zero.
var lengthUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "ex": true, "ch": true,
	"vw": true, "vh": true, "vmin": true, "vmax": true,
	"cm": true, "mm": true, "q": true, "in": true, "pt": true, "pc": true,
}

type token struct {
	tt   css.TokenType
	data string
}

// ParseValue tokenizes a declaration value, drops comments and collapses
// whitespace. Values which would terminate a declaration or a block early are
// rejected.
func ParseValue(raw string) (Value, error) {
	tokens, err := tokenize(raw)
	if err != nil {
		return Value{}, err
	}
	if len(tokens) == 0 {
		return Value{}, fmt.Errorf("%w: empty value", ErrBadValue)
	}

	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.data)
	}
	return Value{Raw: sb.String(), Compact: compact(tokens)}, nil
}

// compact drops whitespace around commas and units of zero lengths. Inside
// functions units are kept, calc(0px + 1em) is not the same as calc(0 + 1em).
func compact(tokens []token) string {
	var (
		sb    strings.Builder
		depth int
	)
	for i, t := range tokens {
		switch t.tt {
		case css.WhitespaceToken:
			// tokenize never leaves whitespace at the edges
			if tokens[i-1].tt == css.CommaToken || tokens[i+1].tt == css.CommaToken {
				continue
			}
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		case css.DimensionToken:
			if num, unit := splitDimension(t.data); depth == 0 && num == 0 && lengthUnits[unit] {
				sb.WriteByte('0')
				continue
			}
		}
		sb.WriteString(t.data)
	}
	return sb.String()
}

// tokenize returns significant tokens of raw with runs of whitespace replaced
// by a single space token. Leading and trailing whitespace is dropped.
func tokenize(raw string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(raw))

	var (
		tokens  []token
		pending bool
	)
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("%w: %q: %w", ErrBadValue, raw, err)
			}
			return tokens, nil
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			pending = len(tokens) > 0
			continue
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken, css.BadStringToken, css.BadURLToken, css.CDOToken, css.CDCToken:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrBadValue, string(data), raw)
		}
		if pending {
			tokens = append(tokens, token{tt: css.WhitespaceToken, data: " "})
			pending = false
		}
		tokens = append(tokens, token{tt: tt, data: string(data)})
	}
}

// splitDimension separates number of a dimension token from its lower cased
// unit. Exponent notation is not expected in values.
func splitDimension(s string) (float64, string) {
	end := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	if end <= 0 {
		return 0, strings.ToLower(s)
	}
	num, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// not a number we understand, never treat it as zero
		return 1, strings.ToLower(s[end:])
	}
	return num, strings.ToLower(s[end:])
}
