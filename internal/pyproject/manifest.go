package pyproject

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the manifest file this tool operates on.
const FileName = "pyproject.toml"

// Sentinel errors reported by Load. Callers check them with errors.Is.
var (
	// ErrManifestNotFound means the target directory has no pyproject.toml.
	ErrManifestNotFound = errors.New("pyproject.toml not found")
	// ErrInvalidManifest means the manifest exists but is not valid TOML.
	ErrInvalidManifest = errors.New("invalid pyproject.toml")
)

// NitpickConfig is the [tool.nitpick] table written by init.
type NitpickConfig struct {
	Style        []string `toml:"style"`
	IgnoreStyles []string `toml:"ignore_styles"`
}

// Manifest is a parsed pyproject.toml. Raw holds the file bytes exactly as
// read so edits can preserve the user's formatting.
type Manifest struct {
	Path string
	Raw  []byte

	root map[string]interface{}
}

// Path returns the manifest path for a project directory.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads and parses the manifest in the given project directory.
// A missing file yields ErrManifestNotFound; a file that does not parse as
// TOML yields ErrInvalidManifest. Both carry the path for user messages.
func Load(dir string) (*Manifest, error) {
	path := Path(dir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrManifestNotFound, dir)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var root map[string]interface{}
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidManifest, path, err)
	}

	return &Manifest{Path: path, Raw: data, root: root}, nil
}

// NitpickTable returns the raw [tool.nitpick] table, or nil if the manifest
// has none. A [tool.nitpick.x] subtable alone still counts as present.
func (m *Manifest) NitpickTable() map[string]interface{} {
	tool, ok := m.root["tool"].(map[string]interface{})
	if !ok {
		return nil
	}
	nitpick, ok := tool["nitpick"].(map[string]interface{})
	if !ok {
		return nil
	}
	return nitpick
}

// HasNitpick reports whether the manifest already carries a [tool.nitpick] table.
func (m *Manifest) HasNitpick() bool {
	return m.NitpickTable() != nil
}

// Nitpick decodes the [tool.nitpick] table into a typed config.
// Returns nil if the table is absent.
func (m *Manifest) Nitpick() (*NitpickConfig, error) {
	table := m.NitpickTable()
	if table == nil {
		return nil, nil
	}

	// Round-trip through TOML for strict typed decoding of the table alone.
	data, err := toml.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("encoding [tool.nitpick] table: %w", err)
	}

	var cfg NitpickConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding [tool.nitpick] table in %s: %w", m.Path, err)
	}

	return &cfg, nil
}
