// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into the binary. Every user-visible name, the style
// repository, and the env var prefix come from here so a fork only has to
// touch one file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	StyleRepo   string `yaml:"style_repo"`
	StyleFile   string `yaml:"style_file"`
	DefaultRef  string `yaml:"default_ref"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "mogpack",
			DisplayName: "Mogpack",
			Description: "Reusable development tooling and configuration bundle for Python projects",
			HomeDir:     ".mogpack",
			EnvPrefix:   "MOGPACK",
			GoModule:    "github.com/matthewgulliver/mogpack",
			StyleRepo:   "matthewgulliver/mogpack",
			StyleFile:   "nitpick-style.toml",
			DefaultRef:  "main",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "mogpack").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Mogpack").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".mogpack").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MOGPACK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// StyleRepo returns the "owner/repo" hosting the nitpick style file.
func StyleRepo() string { load(); return defaults.StyleRepo }

// StyleFile returns the style file name within the style repository.
func StyleFile() string { load(); return defaults.StyleFile }

// DefaultRef returns the git ref used when the user supplies none (e.g., "main").
func DefaultRef() string { load(); return defaults.DefaultRef }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "MOGPACK_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
