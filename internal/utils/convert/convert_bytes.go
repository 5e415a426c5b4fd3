package convert

import (
	"fmt"
)

const gib = 1024 * 1024 * 1024

// BytesToGiB renders a byte count in binary gigabytes with 2 decimal places.
// Zero stays "0 GiB" so unreadable sources read as empty, not broken.
func BytesToGiB(bytes uint64) string {
	if bytes == 0 {
		return "0 GiB"
	}

	return fmt.Sprintf("%.2f GiB", float64(bytes)/float64(gib))
}

func BytesToHumanReadable(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	// Units: KB, MB, GB, TB, PB, EB, ZB, YB
	units := []string{"KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

	if exp >= len(units) {
		return fmt.Sprintf("%.1f B", float64(bytes))
	}

	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
