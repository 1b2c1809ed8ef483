package feed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// state is the on-disk shape of the cursor. Rows are display output and
// are not persisted.
type state struct {
	Date    string `yaml:"date"`
	Page    int    `yaml:"page"`
	PerPage int    `yaml:"per_page"`
}

// SaveCursor persists the feed cursor so a later `list --more` can
// continue from it.
func SaveCursor(path string, f *Feed) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := yaml.Marshal(state{Date: f.date, Page: f.page, PerPage: f.perPage})
	if err != nil {
		return fmt.Errorf("marshaling feed cursor: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing feed cursor: %w", err)
	}
	return nil
}

// LoadCursor restores a persisted cursor. A missing file returns nil so
// the caller can start a fresh feed.
func LoadCursor(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading feed cursor: %w", err)
	}
	var st state
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing feed cursor: %w", err)
	}
	f := New(st.Date, st.PerPage)
	if st.Page > 1 {
		f.page = st.Page
	}
	return f, nil
}
