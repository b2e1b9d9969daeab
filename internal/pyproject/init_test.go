package pyproject

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_AddsNitpickConfig(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, minimalManifest)

	res, err := Init(dir, "")
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if !res.Added {
		t.Error("Added = false, want true")
	}
	if res.StyleURL != "github://matthewgulliver/mogpack@main/nitpick-style.toml" {
		t.Errorf("StyleURL = %q", res.StyleURL)
	}

	content, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "[tool.nitpick]") {
		t.Errorf("expected [tool.nitpick] in manifest, got:\n%s", content)
	}
	if !strings.Contains(string(content), `style = ["github://matthewgulliver/mogpack@main/nitpick-style.toml"]`) {
		t.Errorf("expected default style entry in manifest, got:\n%s", content)
	}
	if !strings.Contains(string(content), "ignore_styles = []") {
		t.Errorf("expected empty ignore_styles in manifest, got:\n%s", content)
	}

	// The result must itself be a loadable manifest with exactly one style entry.
	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() after Init error: %v", err)
	}
	cfg, err := m.Nitpick()
	if err != nil {
		t.Fatalf("Nitpick() error: %v", err)
	}
	if len(cfg.Style) != 1 || cfg.Style[0] != res.StyleURL {
		t.Errorf("Style = %v, want [%q]", cfg.Style, res.StyleURL)
	}
	if len(cfg.IgnoreStyles) != 0 {
		t.Errorf("IgnoreStyles = %v, want empty", cfg.IgnoreStyles)
	}
}

func TestInit_CustomRef(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"tag", "v1.2.3", "github://matthewgulliver/mogpack@v1.2.3/nitpick-style.toml"},
		{"commit hash", "abc123def", "github://matthewgulliver/mogpack@abc123def/nitpick-style.toml"},
		{"branch", "develop", "github://matthewgulliver/mogpack@develop/nitpick-style.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, minimalManifest)

			res, err := Init(dir, tt.ref)
			if err != nil {
				t.Fatalf("Init() error: %v", err)
			}
			if res.StyleURL != tt.want {
				t.Errorf("StyleURL = %q, want %q", res.StyleURL, tt.want)
			}

			content, err := os.ReadFile(filepath.Join(dir, FileName))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(content), `style = ["`+tt.want+`"]`) {
				t.Errorf("expected style entry for ref %q, got:\n%s", tt.ref, content)
			}
		})
	}
}

func TestInit_InvalidRef(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, minimalManifest)

	if _, err := Init(dir, "v1 .0"); err == nil {
		t.Fatal("expected error for ref containing whitespace, got nil")
	}
}

func TestInit_ManifestNotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := Init(dir, "")
	if !errors.Is(err, ErrManifestNotFound) {
		t.Fatalf("Init() error = %v, want ErrManifestNotFound", err)
	}

	// Nothing may be created on failure.
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("expected directory to stay empty, found %d entries", len(entries))
	}
}

func TestInit_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, minimalManifest)

	if _, err := Init(dir, ""); err != nil {
		t.Fatalf("first Init() error: %v", err)
	}
	after, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}

	res, err := Init(dir, "")
	if err != nil {
		t.Fatalf("second Init() error: %v", err)
	}
	if res.Added {
		t.Error("second Init() reported Added = true")
	}

	final, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if string(final) != string(after) {
		t.Errorf("second Init() modified the manifest:\n%s", final)
	}
	if n := strings.Count(string(final), "[tool.nitpick]"); n != 1 {
		t.Errorf("expected exactly 1 [tool.nitpick] table, found %d", n)
	}
}

func TestInit_PreservesExistingConfig(t *testing.T) {
	existing := `[project]
name = "test-project"
version = "0.1.0"

[tool.nitpick]
style = ["github://other/repo@main/style.toml"]
`
	dir := t.TempDir()
	writeManifest(t, dir, existing)

	res, err := Init(dir, "")
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if res.Added {
		t.Error("Added = true for already configured manifest")
	}

	content, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != existing {
		t.Errorf("manifest was modified:\n%s", content)
	}
}

func TestInit_PreservesExistingContent(t *testing.T) {
	existing := `[project]
name = "my-project"
version = "1.0.0"

[tool.mypy]
strict = true
`
	dir := t.TempDir()
	writeManifest(t, dir, existing)

	if _, err := Init(dir, ""); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[project]", `name = "my-project"`, "[tool.mypy]", "strict = true", "[tool.nitpick]"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected %q in manifest, got:\n%s", want, content)
		}
	}
	if !strings.HasPrefix(string(content), existing) {
		t.Errorf("existing content was altered:\n%s", content)
	}
}

func TestInit_NoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `name = "x"`) // no trailing newline

	if _, err := Init(dir, ""); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() after Init error: %v", err)
	}
	if !m.HasNitpick() {
		t.Errorf("expected [tool.nitpick] table, got:\n%s", m.Raw)
	}
}
