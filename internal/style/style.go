// Package style builds nitpick style URLs for the bundle's hosted rule set.
// URLs use nitpick's github:// scheme so the enforcement tool fetches the
// style file straight from the repository at a pinned ref.
package style

import (
	"fmt"
	"strings"

	"github.com/matthewgulliver/mogpack/internal/branding"
)

// DefaultRef returns the git ref used when the caller supplies none.
func DefaultRef() string {
	return branding.DefaultRef()
}

// URL returns the github:// style URL for the given git ref (branch, tag,
// or commit). An empty ref resolves to the default ref.
func URL(ref string) string {
	if ref == "" {
		ref = branding.DefaultRef()
	}
	return fmt.Sprintf("github://%s@%s/%s", branding.StyleRepo(), ref, branding.StyleFile())
}

// ValidateRef rejects refs that cannot appear in the ref segment of a style
// URL. Branch names may contain slashes; the '@' separator and whitespace
// may not.
func ValidateRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("ref must not be empty")
	}
	if strings.ContainsAny(ref, "@ \t\n") {
		return fmt.Errorf("invalid ref %q: must not contain '@' or whitespace", ref)
	}
	return nil
}
