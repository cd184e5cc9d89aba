package params

import (
	"os"
	"path/filepath"

	"github.com/inovacc/sshcm/internal/application"
)

// StoreFileName is the on-disk name of the connection store.
const StoreFileName = "ssh-cm.connections"

// StoreCandidates returns the ordered list of paths checked for an
// existing store. The first entry doubles as the creation target when
// no store exists yet.
// Linux: ~/.config/sshcm/ssh-cm.connections (via os.UserConfigDir)
// Fallback: ssh-cm.connections next to the executable.
func StoreCandidates() []string {
	var candidates []string

	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, application.AppName, StoreFileName))
	}

	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), StoreFileName))
	}

	if len(candidates) == 0 {
		candidates = append(candidates, StoreFileName)
	}

	return candidates
}

// ResolveStorePath picks the first existing candidate, falling back to
// the first candidate as the creation target.
func ResolveStorePath() string {
	candidates := StoreCandidates()

	for _, p := range candidates {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}

	return candidates[0]
}
