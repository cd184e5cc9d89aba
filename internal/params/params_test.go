package params

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreCandidates(t *testing.T) {
	candidates := StoreCandidates()

	if len(candidates) == 0 {
		t.Fatal("no candidates")
	}

	for _, c := range candidates {
		if filepath.Base(c) != StoreFileName {
			t.Errorf("candidate %q does not end in %q", c, StoreFileName)
		}
	}
}

func TestResolveStorePathPrefersExisting(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	// Nothing exists yet: the user-config candidate is the creation
	// target.
	path := ResolveStorePath()
	if !strings.HasPrefix(path, dir) {
		t.Skipf("user config dir not honored on this platform: %s", path)
	}

	// Once the file exists it is picked directly.
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal(err)
	}

	if got := ResolveStorePath(); got != path {
		t.Errorf("ResolveStorePath() = %q, want %q", got, path)
	}
}
