package dependencyservice

import (
	"os"
	"os/exec"
)

// attachedCommand runs a command with the terminal attached. Its output goes
// to stderr; stdout is reserved for the report stream.
func attachedCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
