package toolchain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionPattern matches the first dotted version number in --version output,
// e.g. "ruff 0.4.4", "mypy 1.8.0 (compiled: yes)", "nitpick (0.35.0)".
var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// ExtractVersion pulls the first version number out of a tool's --version
// output. Returns "" when no version is recognizable.
func ExtractVersion(output string) string {
	return versionPattern.FindString(output)
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// IsAtLeast returns true if version is min or newer.
func IsAtLeast(version, min string) (bool, error) {
	cmp, err := CompareVersions(version, min)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
