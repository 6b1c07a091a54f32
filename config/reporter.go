package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"selb/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty report. When destination cannot be created report
// goes to a temporary file, Report.Name tells where.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &Report{id: id, file: f, items: make(map[string]item)}, nil
}

// item is either a file to be read when archive is written or data kept in
// memory.
type item struct {
	path  string
	data  []byte
	added time.Time
}

func (it item) stored() bool {
	return it.data == nil
}

// Report accumulates recipes, produced stylesheets and logs for the debug
// archive. Methods are safe to call on nil Report, which means no report was
// requested. Not safe for concurrent use.
type Report struct {
	id    uuid.UUID
	file  *os.File
	items map[string]item
}

// ID returns unique report identifier, it is recorded in the manifest and
// as the archive comment.
func (r *Report) ID() string {
	if r == nil {
		return ""
	}
	return r.id.String()
}

// Name returns absolute name of the archive file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers file at path, it is read when report is closed. Storing
// different file under the same name is a program error.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if p, err := filepath.Abs(path); err == nil {
		path = p
	}
	if old, exists := r.items[name]; exists {
		if old.stored() && old.path == path {
			return
		}
		panic(fmt.Sprintf("report entry [%s] already holds %s, refusing %s", name, old.path, path))
	}
	r.items[name] = item{path: path, added: time.Now()}
}

// StoreData keeps copy of data under name. Names cannot be reused.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, exists := r.items[name]; exists {
		panic(fmt.Sprintf("report entry [%s] already exists", name))
	}
	r.items[name] = item{data: append([]byte{}, data...), added: time.Now()}
}

// Close writes the archive.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()

	arc := zip.NewWriter(r.file)
	if err := r.write(arc); err != nil {
		arc.Close()
		return err
	}
	return arc.Close()
}

func (r *Report) write(arc *zip.Writer) error {
	if err := arc.SetComment(misc.GetAppName() + " report " + r.ID()); err != nil {
		return err
	}

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	slices.Sort(names)

	if err := addEntry(arc, "MANIFEST", time.Now(), bytes.NewReader(r.manifest(names))); err != nil {
		return err
	}
	for _, name := range names {
		it := r.items[name]
		if !it.stored() {
			if err := addEntry(arc, name, it.added, bytes.NewReader(it.data)); err != nil {
				return err
			}
			continue
		}
		if err := addFile(arc, name, it.path); err != nil {
			return err
		}
	}
	return nil
}

// manifest lists every item, including files which do not exist anymore.
func (r *Report) manifest(names []string) []byte {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "report\t%s\t%s\n", r.ID(), misc.GetVersion())
	for _, name := range names {
		it := r.items[name]
		src := "data"
		if it.stored() {
			src = it.path
		}
		fmt.Fprintf(buf, "%s\t%s\t%s\n", it.added.UTC().Format(time.RFC3339), name, src)
	}
	return buf.Bytes()
}

// addFile copies regular file into the archive, absent files are skipped.
func addFile(arc *zip.Writer, name, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return addEntry(arc, name, info.ModTime(), f)
}

func addEntry(arc *zip.Writer, name string, modified time.Time, src io.Reader) error {
	w, err := arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified})
	if err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	return nil
}
