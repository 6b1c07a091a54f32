// Package sorting provides language aware and natural ordering of strings.
package sorting

import (
	"fmt"
	"slices"
	"sort"

	"github.com/maruel/natural"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Locale returns a copy of items sorted according to the collation rules of
// language tag.
func Locale(items []string, tag language.Tag, opts ...collate.Option) []string {
	out := slices.Clone(items)
	collate.New(tag, opts...).SortStrings(out)
	return out
}

// LocaleBy is Locale with tag given as BCP 47 string ("sv", "de-DE").
func LocaleBy(items []string, lang string, opts ...collate.Option) ([]string, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("unable to parse language '%s': %w", lang, err)
	}
	return Locale(items, tag, opts...), nil
}

// Natural returns a copy of items with embedded numbers compared by value.
func Natural(items []string) []string {
	out := slices.Clone(items)
	sort.Sort(natural.StringSlice(out))
	return out
}
