// Package recipe describes named selectors, their combinations and style
// rules in YAML and turns them into a stylesheet.
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gosimple/slug"
	yaml "gopkg.in/yaml.v3"

	"selb/selector"
)

// Version is the only recipe format version presently understood.
const Version = 1

var (
	ErrEmptyRecipe = errors.New("empty recipe")
	ErrBadStep     = errors.New("step must have exactly one selector kind")
)

type (
	// Step adds a single fragment. Exactly one of the kind fields is expected.
	Step struct {
		Element       *string `yaml:"element,omitempty"`
		ID            *string `yaml:"id,omitempty"`
		Class         *string `yaml:"class,omitempty"`
		Attribute     *string `yaml:"attribute,omitempty"`
		PseudoClass   *string `yaml:"pseudo_class,omitempty"`
		PseudoElement *string `yaml:"pseudo_element,omitempty"`
		// Slug turns value into URL friendly identifier first ("Article Title" -> "article-title")
		Slug bool `yaml:"slug,omitempty"`
	}

	SelectorDef struct {
		Name  string `yaml:"name"`
		Steps []Step `yaml:"steps"`
	}

	Combination struct {
		Name       string `yaml:"name"`
		Left       string `yaml:"left"`
		Combinator string `yaml:"combinator"`
		Right      string `yaml:"right"`
	}

	RuleDef struct {
		Selector     string            `yaml:"selector"`
		Declarations map[string]string `yaml:"declarations"`
	}

	Recipe struct {
		Version      int           `yaml:"version"`
		Header       string        `yaml:"header,omitempty"`
		Selectors    []SelectorDef `yaml:"selectors"`
		Combinations []Combination `yaml:"combinations,omitempty"`
		Rules        []RuleDef     `yaml:"rules,omitempty"`
	}
)

// Load decodes a recipe. Unknown fields are errors.
func Load(r io.Reader) (*Recipe, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	rcp := &Recipe{}
	if err := dec.Decode(rcp); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRecipe
		}
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	if rcp.Version != Version {
		return nil, fmt.Errorf("unsupported recipe version %d, expected %d", rcp.Version, Version)
	}
	return rcp, nil
}

// LoadFile reads recipe from file at path.
func LoadFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	rcp, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("recipe '%s': %w", path, err)
	}
	return rcp, nil
}

// kindValue returns the single kind present in the step and its value.
func (s Step) kindValue() (selector.Kind, string, error) {
	var (
		kind  selector.Kind
		value string
		count int
	)
	for _, f := range []struct {
		k selector.Kind
		v *string
	}{
		{selector.KindElement, s.Element},
		{selector.KindID, s.ID},
		{selector.KindClass, s.Class},
		{selector.KindAttribute, s.Attribute},
		{selector.KindPseudoClass, s.PseudoClass},
		{selector.KindPseudoElement, s.PseudoElement},
	} {
		if f.v != nil {
			kind, value = f.k, *f.v
			count++
		}
	}
	if count != 1 {
		return 0, "", fmt.Errorf("%w, got %d", ErrBadStep, count)
	}
	if s.Slug {
		value = slug.Make(value)
	}
	return kind, value, nil
}

// Build applies all steps in order starting from the empty root.
func (d SelectorDef) Build() (selector.Selector, error) {
	sel := selector.New()
	for i, step := range d.Steps {
		kind, value, err := step.kindValue()
		if err != nil {
			return sel, fmt.Errorf("step %d: %w", i+1, err)
		}
		if sel = sel.Add(kind, value); sel.Err() != nil {
			return sel, fmt.Errorf("step %d: %w", i+1, sel.Err())
		}
	}
	return sel, nil
}
