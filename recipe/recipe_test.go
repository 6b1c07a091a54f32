package recipe_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"selb/recipe"
	"selb/selector"
)

func newLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func load(t *testing.T, src string) *recipe.Recipe {
	t.Helper()
	rcp, err := recipe.Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return rcp
}

func TestLoadFile_Article(t *testing.T) {
	rcp, err := recipe.LoadFile("testdata/article.yaml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	cat, err := rcp.Build(newLogger(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cat.Len() != 9 {
		t.Errorf("expected 9 catalog entries, got %d", cat.Len())
	}

	tests := map[string]string{
		"main":       "div#main",
		"title":      ".article-title",
		"png-link":   `a[href$=".png"]:focus`,
		"main-data":  "div#main + table#data",
		"striped":    "tr:nth-of-type(even)   td:nth-of-type(even)",
		"main-title": "div#main > .article-title",
	}
	for name, want := range tests {
		got, err := cat.Render(name)
		if err != nil {
			t.Errorf("Render(%q) error = %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("Render(%q): expected %q, got %q", name, want, got)
		}
	}

	sheet, err := rcp.Stylesheet(cat)
	if err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}
	want := `/* article styles */

div#main + table#data {
  color: #333;
  margin: 0 auto;
}

tr:nth-of-type(even)   td:nth-of-type(even) {
  background: rgb(240, 240, 240);
}

a[href$=".png"]:focus {
  outline: 1px dotted;
}
`
	if got := sheet.String(); got != want {
		t.Errorf("unexpected stylesheet:\n%s\nwant:\n%s", got, want)
	}
}

func TestCatalog_NamesNaturalOrder(t *testing.T) {
	rcp := load(t, `
version: 1
selectors:
  - name: item10
    steps: [{class: a}]
  - name: item2
    steps: [{class: b}]
  - name: item1
    steps: [{class: c}]
`)
	cat, err := rcp.Build(newLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"item1", "item2", "item10"}
	if got := cat.Names(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if _, ok := cat.Lookup("item2"); !ok {
		t.Error("expected item2 to be present")
	}
	if _, err := cat.Render("item3"); !errors.Is(err, recipe.ErrUnknownName) {
		t.Errorf("expected ErrUnknownName, got %v", err)
	}
}

func TestBuild_CollectsAllErrors(t *testing.T) {
	rcp := load(t, `
version: 1
selectors:
  - name: dup-element
    steps:
      - element: div
      - element: span
  - name: bad-order
    steps:
      - class: a
      - element: div
  - name: two-kinds
    steps:
      - element: div
        class: a
  - name: ok
    steps: [{element: p}]
  - name: ok
    steps: [{element: p}]
combinations:
  - name: broken
    left: ok
    combinator: ">"
    right: missing
  - name: self
    left: self
    combinator: "+"
    right: ok
`)
	_, err := rcp.Build(newLogger(t))
	if err == nil {
		t.Fatal("expected error")
	}

	if !errors.Is(err, selector.ErrDuplicateSingleton) {
		t.Errorf("expected duplicate singleton error in %v", err)
	}
	if !errors.Is(err, selector.ErrOutOfOrder) {
		t.Errorf("expected out of order error in %v", err)
	}
	if !errors.Is(err, recipe.ErrBadStep) {
		t.Errorf("expected bad step error in %v", err)
	}
	if !errors.Is(err, recipe.ErrDuplicateName) {
		t.Errorf("expected duplicate name error in %v", err)
	}
	if !errors.Is(err, recipe.ErrUnknownName) {
		t.Errorf("expected unknown name error in %v", err)
	}
	if !strings.Contains(err.Error(), "refers to itself") {
		t.Errorf("expected self reference error in %v", err)
	}
}

func TestBuild_NestedCombinations(t *testing.T) {
	rcp := load(t, `
version: 1
selectors:
  - name: a
    steps: [{element: a}]
  - name: b
    steps: [{element: b}]
  - name: c
    steps: [{element: c}]
combinations:
  - name: ab
    left: a
    combinator: "~"
    right: b
  - name: abc
    left: ab
    combinator: ">"
    right: c
`)
	cat, err := rcp.Build(newLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	got, err := cat.Render("abc")
	if err != nil {
		t.Fatal(err)
	}
	if got != "a ~ b > c" {
		t.Errorf("expected %q, got %q", "a ~ b > c", got)
	}
}

func TestStylesheet_Errors(t *testing.T) {
	rcp := load(t, `
version: 1
selectors:
  - name: p
    steps: [{element: p}]
rules:
  - selector: nowhere
    declarations: {color: red}
  - selector: p
    declarations:
      "font size": 1em
  - selector: p
    declarations:
      color: "red; background: blue"
  - selector: p
    declarations: {}
`)
	cat, err := rcp.Build(newLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	_, err = rcp.Stylesheet(cat)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, recipe.ErrUnknownName) {
		t.Errorf("expected unknown selector in %v", err)
	}
	if !strings.Contains(err.Error(), "font size") {
		t.Errorf("expected bad property name in %v", err)
	}
	if !strings.Contains(err.Error(), "property color") {
		t.Errorf("expected bad value in %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "empty recipe"},
		{"version", "version: 2\n", "unsupported recipe version"},
		{"unknown field", "version: 1\nselectorz: []\n", "failed to decode recipe"},
		{"unknown step kind", "version: 1\nselectors:\n  - name: x\n    steps: [{tag: div}]\n", "failed to decode recipe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := recipe.Load(strings.NewReader(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	if _, err := recipe.LoadFile("testdata/does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSelectorDef_Build(t *testing.T) {
	value := "Hello World"
	def := recipe.SelectorDef{Name: "x", Steps: []recipe.Step{{Class: &value, Slug: true}, {Class: &value}}}
	sel, err := def.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := sel.String(); got != ".hello-world.Hello World" {
		t.Errorf("unexpected %q", got)
	}
}
