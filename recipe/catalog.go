package recipe

import (
	"errors"
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"selb/css"
	"selb/selector"
)

var (
	ErrUnknownName   = errors.New("unknown selector name")
	ErrDuplicateName = errors.New("duplicate selector name")
)

// Catalog keeps built selectors and combinations by name.
type Catalog struct {
	log     *zap.Logger
	entries map[string]selector.Stringifier
	order   []string
}

func newCatalog(log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{log: log.Named("recipe"), entries: make(map[string]selector.Stringifier)}
}

func (c *Catalog) add(name string, s selector.Stringifier) error {
	if name == "" {
		return errors.New("missing name")
	}
	if _, exists := c.entries[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	c.entries[name] = s
	c.order = append(c.order, name)
	return nil
}

// Lookup returns named entry.
func (c *Catalog) Lookup(name string) (selector.Stringifier, bool) {
	s, ok := c.entries[name]
	return s, ok
}

// Render returns selector text for the named entry.
func (c *Catalog) Render(name string) (string, error) {
	s, ok := c.entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return s.Stringify()
}

// Names returns all entry names in natural order ("item2" before "item10").
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	sort.Sort(natural.StringSlice(names))
	return names
}

// Len returns number of entries.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Build builds every selector and then every combination of the recipe.
// Problems are collected across the whole recipe and reported together, the
// catalog is only returned when there are none.
func (r *Recipe) Build(log *zap.Logger) (*Catalog, error) {
	cat := newCatalog(log)

	var errs error
	for i, def := range r.Selectors {
		sel, err := def.Build()
		if err == nil {
			err = cat.add(def.Name, sel)
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector #%d %q: %w", i+1, def.Name, err))
			continue
		}
		cat.log.Debug("Built selector", zap.String("name", def.Name), zap.Stringer("selector", sel))
	}

	for i, cmb := range r.Combinations {
		if err := cat.combine(cmb); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("combination #%d %q: %w", i+1, cmb.Name, err))
		}
	}

	if errs != nil {
		return nil, errs
	}
	return cat, nil
}

func (c *Catalog) combine(cmb Combination) error {
	if cmb.Name != "" && (cmb.Name == cmb.Left || cmb.Name == cmb.Right) {
		return errors.New("combination refers to itself")
	}
	left, ok := c.entries[cmb.Left]
	if !ok {
		return fmt.Errorf("left operand: %w: %q", ErrUnknownName, cmb.Left)
	}
	right, ok := c.entries[cmb.Right]
	if !ok {
		return fmt.Errorf("right operand: %w: %q", ErrUnknownName, cmb.Right)
	}

	combined := selector.Combine(left, cmb.Combinator, right)
	if err := c.add(cmb.Name, combined); err != nil {
		return err
	}
	c.log.Debug("Built combination", zap.String("name", cmb.Name), zap.Stringer("selector", combined))
	return nil
}

// Stylesheet renders recipe rules using selectors from cat. Rule order is
// kept, declarations are normalized. Rules without declarations are skipped.
func (r *Recipe) Stylesheet(cat *Catalog) (*css.Stylesheet, error) {
	sheet := &css.Stylesheet{Header: r.Header}

	var errs error
	for i, rd := range r.Rules {
		text, err := cat.Render(rd.Selector)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule #%d: %w", i+1, err))
			continue
		}
		if len(rd.Declarations) == 0 {
			cat.log.Warn("Skipping rule without declarations", zap.String("selector", rd.Selector))
			continue
		}

		props := make(map[string]css.Value, len(rd.Declarations))
		for name, raw := range rd.Declarations {
			prop, err := css.ParsePropertyName(name)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("rule #%d %q: %w", i+1, rd.Selector, err))
				continue
			}
			val, err := css.ParseValue(raw)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("rule #%d %q property %s: %w", i+1, rd.Selector, prop, err))
				continue
			}
			props[prop] = val
		}
		sheet.Rules = append(sheet.Rules, css.Rule{Selector: text, Properties: props})
	}

	if errs != nil {
		return nil, errs
	}
	cat.log.Debug("Prepared stylesheet", zap.Int("rules", len(sheet.Rules)))
	return sheet, nil
}
