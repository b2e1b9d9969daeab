// Package config manages user-level settings stored at ~/.mogpack/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default git ref used when building style URLs.
package config
