// Package archive reads recipe bundles: zip archives carrying any number of
// YAML recipes.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// WalkFunc is called for every recipe in the bundle. The name argument is the
// entry path inside the archive, r yields its content. If an error is
// returned, processing stops.
type WalkFunc func(name string, r io.Reader) error

// IsBundle reports whether path names a recipe bundle.
func IsBundle(p string) bool {
	return strings.EqualFold(path.Ext(p), ".zip")
}

// IsRecipe reports whether entry name looks like a recipe file.
func IsRecipe(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Walk calls walkFn for every recipe file in bundle in entry name order.
// Entries with absolute paths or ".." components make the whole bundle
// invalid.
func Walk(bundle string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(bundle)
	if err != nil {
		return err
	}
	defer r.Close()

	files := make([]*zip.File, 0, len(r.File))
	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
		if f.FileInfo().IsDir() || !IsRecipe(f.Name) {
			continue
		}
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	for _, f := range files {
		if err := visit(f, walkFn); err != nil {
			return err
		}
	}
	return nil
}

func visit(f *zip.File, walkFn WalkFunc) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("unable to open zip entry %q: %w", f.Name, err)
	}
	defer rc.Close()
	return walkFn(f.Name, rc)
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
