// Package lang resolves string ids to localized labels from TOML tables.
package lang

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/justinpbarnett/modal/internal/logging"
)

// DefaultLanguage is always loaded underneath the requested language.
const DefaultLanguage = "en"

//go:embed strings/*.toml
var builtin embed.FS

// Table maps string ids to labels.
type Table struct {
	language string
	strings  map[string]string
}

// New returns a table over fixed entries, mainly for tests.
func New(language string, entries map[string]string) *Table {
	t := &Table{language: language, strings: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.strings[k] = v
	}
	return t
}

// Load builds the table for language. Entries come from the builtin
// DefaultLanguage table, then the builtin table for language, then
// <dir>/<language>.toml when dir is set; later layers win.
func Load(language, dir string) (*Table, error) {
	t := New(language, nil)

	if err := t.mergeFS(builtin, path.Join("strings", DefaultLanguage+".toml")); err != nil {
		return nil, err
	}
	if language != DefaultLanguage {
		err := t.mergeFS(builtin, path.Join("strings", language+".toml"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if dir != "" {
		err := t.mergeFS(os.DirFS(dir), language+".toml")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) mergeFS(fsys fs.FS, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	var entries map[string]string
	if _, err := toml.Decode(string(data), &entries); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	for k, v := range entries {
		t.strings[k] = v
	}
	return nil
}

// Language reports which language the table was built for.
func (t *Table) Language() string {
	if t == nil {
		return ""
	}
	return t.language
}

// Lookup returns the label for id and whether it exists.
func (t *Table) Lookup(id string) (string, bool) {
	if t == nil {
		return "", false
	}
	s, ok := t.strings[id]
	return s, ok
}

// Get returns the label for id, or "" when the id is unknown. Callers that
// build widgets from an empty label treat it as a construction failure.
func (t *Table) Get(id string) string {
	s, ok := t.Lookup(id)
	if !ok {
		logging.ForComponent(logging.CompLang).Debug("missing string", "id", id, "language", t.Language())
	}
	return s
}

// Len reports the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.strings)
}
