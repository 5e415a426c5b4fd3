//go:build linux || freebsd

package inventoryservice

import (
	"strings"

	"golang.org/x/sys/unix"
)

// unameFallback reads kernel release and machine arch via the uname syscall,
// for hosts where the uname binary itself is unavailable.
func unameFallback() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}

	release := utsField(uts.Release[:])
	machine := utsField(uts.Machine[:])

	return strings.TrimSpace(release + " " + machine)
}

func utsField(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
