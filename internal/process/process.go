// Package process launches external commands with the standard I/O
// streams passed straight through.
package process

import (
	"fmt"
	"os"
	"os/exec"
)

// Run starts argv[0] with the remaining elements as arguments and
// blocks until the child exits. The child inherits stdin, stdout and
// stderr unchanged.
func Run(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty argument vector")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", argv[0], err)
	}

	return nil
}

// IsInstalled checks if the given binary is available in PATH.
func IsInstalled(binary string) bool {
	_, err := exec.LookPath(binary)

	return err == nil
}
