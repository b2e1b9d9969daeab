package pyproject

import (
	"fmt"
	"os"

	"github.com/matthewgulliver/mogpack/internal/style"
)

// Result describes the outcome of an Init run.
type Result struct {
	ManifestPath string
	StyleURL     string
	// Added is false when the manifest already carried a [tool.nitpick]
	// table and was left untouched.
	Added bool
}

// Init appends the mogpack nitpick configuration to the manifest in dir,
// pointing at the style file for the given git ref. The manifest must
// already exist; Init never creates one. If a [tool.nitpick] table is
// already present the manifest is left byte-identical and Result.Added is
// false.
func Init(dir, ref string) (*Result, error) {
	if ref == "" {
		ref = style.DefaultRef()
	}
	if err := style.ValidateRef(ref); err != nil {
		return nil, err
	}

	m, err := Load(dir)
	if err != nil {
		return nil, err
	}

	styleURL := style.URL(ref)
	if m.HasNitpick() {
		return &Result{ManifestPath: m.Path, StyleURL: styleURL, Added: false}, nil
	}

	// The leading newline keeps the table header on a fresh line even when
	// the file lacks a trailing newline.
	fragment := fmt.Sprintf("\n[tool.nitpick]\nstyle = [%q]\nignore_styles = []\n", styleURL)

	f, err := os.OpenFile(m.Path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s for append: %w", m.Path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(fragment); err != nil {
		return nil, fmt.Errorf("writing to %s: %w", m.Path, err)
	}

	return &Result{ManifestPath: m.Path, StyleURL: styleURL, Added: true}, nil
}
