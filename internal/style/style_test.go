package style

import "testing"

func TestURL(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"default ref", "main", "github://matthewgulliver/mogpack@main/nitpick-style.toml"},
		{"empty ref falls back to default", "", "github://matthewgulliver/mogpack@main/nitpick-style.toml"},
		{"tag", "v1.0.0", "github://matthewgulliver/mogpack@v1.0.0/nitpick-style.toml"},
		{"commit hash", "abc123def", "github://matthewgulliver/mogpack@abc123def/nitpick-style.toml"},
		{"branch", "develop", "github://matthewgulliver/mogpack@develop/nitpick-style.toml"},
		{"branch with slash", "feature/strict-mypy", "github://matthewgulliver/mogpack@feature/strict-mypy/nitpick-style.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL(tt.ref); got != tt.want {
				t.Errorf("URL(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestValidateRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		wantErr bool
	}{
		{"branch", "main", false},
		{"tag", "v1.2.3", false},
		{"commit", "abc123def", false},
		{"slash branch", "feature/x", false},
		{"empty", "", true},
		{"contains at", "v1@main", true},
		{"contains space", "my ref", true},
		{"contains tab", "my\tref", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRef(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultRef(t *testing.T) {
	if got := DefaultRef(); got != "main" {
		t.Errorf("DefaultRef() = %q, want %q", got, "main")
	}
}
