package render

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"selb/config"
)

// NameValues holds variables available for file name template expansion.
type NameValues struct {
	Recipe string // recipe file name without extension
	Entry  string // path inside bundle, empty for standalone recipes
	Bundle string // bundle file name without extension
	Header string
}

func newNameValues(src, entry, header string, bundle bool) NameValues {
	v := NameValues{Recipe: trimExt(path.Base(entry)), Header: header}
	if bundle {
		v.Entry = entry
		v.Bundle = trimExt(path.Base(src))
	}
	return v
}

func trimExt(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// entryName flattens bundle entry path into a single name: "a/main.yaml"
// becomes "a-main", so entries sharing a base name do not collide.
func entryName(entry string) string {
	return strings.ReplaceAll(strings.Trim(trimExt(entry), "/"), "/", "-")
}

// outputName returns stylesheet file name, expanding field when it is not
// empty. Without a template bundle entries are named after their full path.
func outputName(field string, values NameValues) (string, error) {
	name := values.Recipe
	if len(values.Entry) > 0 {
		name = entryName(values.Entry)
	}
	if len(field) > 0 {
		tmpl, err := template.New(config.NameTemplateFieldName).Funcs(sprig.FuncMap()).Parse(field)
		if err != nil {
			return "", fmt.Errorf("unable to parse template field %s: %w", config.NameTemplateFieldName, err)
		}
		buf := new(bytes.Buffer)
		if err := tmpl.Execute(buf, values); err != nil {
			return "", fmt.Errorf("unable to expand template field %s: %w", config.NameTemplateFieldName, err)
		}
		name = strings.TrimSpace(buf.String())
	}
	return config.CleanFileName(name) + ".css", nil
}
