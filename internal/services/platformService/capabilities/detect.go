// Package capabilities answers "is this external tool available?" questions.
// Pure PATH lookups, no side effects, safe to call before any package manager
// state exists.
package capabilities

import "os/exec"

// Which returns the path to a binary, if found (i.e. lsblk -> /usr/bin/lsblk).
func Which(binary string) (string, error) {
	return exec.LookPath(binary)
}

// IsCommandAvailable tests if a command is on the PATH, i.e. 'lsblk'.
func IsCommandAvailable(binary string) bool {
	_, err := exec.LookPath(binary)

	return err == nil
}
