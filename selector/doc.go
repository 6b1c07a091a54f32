// Package selector assembles simple CSS selectors from typed fragments.
//
// A Selector is an immutable value. Every builder call returns a new Selector
// with one more fragment and never touches the receiver, so the same root can
// be extended into any number of independent branches, from any goroutine.
//
//	sel := selector.Element("a").Attribute(`href$=".png"`).PseudoClass("focus")
//	s, err := sel.Stringify() // a[href$=".png"]:focus
//
// # Ordering
//
// Fragments must be added in rank order:
//
//   - element (1)
//   - id (2)
//   - class (3)
//   - attribute (4)
//   - pseudo-class (5)
//   - pseudo-element (6)
//
// Equal consecutive ranks are fine (".a.b"), but element, id and pseudo-element
// may only appear once. A violation is sticky: the chain stops growing and the
// error is reported by Err and Stringify.
//
// # Combinators
//
// Combine joins any two Stringifier values (selectors or other combinations)
// with a combinator. The combinator is not validated and is always surrounded
// by exactly one space on each side.
//
// Only textual assembly is done here. Parsing, matching against a document and
// specificity are out of reach of this package.
package selector
