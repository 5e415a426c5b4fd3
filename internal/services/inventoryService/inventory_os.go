package inventoryservice

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	platformservice "github.com/redjax/collect-inventory/internal/services/platformService"

	"github.com/shirou/gopsutil/v4/host"
)

// hostUptime is swappable in tests.
var hostUptime = host.Uptime

func (c *Collector) collectOS() string {
	var b strings.Builder

	kv(&b, "Hostname", c.hostname())
	kv(&b, "Distribution", c.distribution())
	kv(&b, "Kernel", c.kernel())
	kv(&b, "Uptime", c.uptime())
	kv(&b, "Timezone", c.timezone())

	return b.String()
}

func (c *Collector) hostname() string {
	return firstResult([]strategy{
		{"hostname", func() (string, error) { return c.Runner.Run("hostname") }},
		{"stdlib", func() (string, error) { return os.Hostname() }},
	})
}

func (c *Collector) distribution() string {
	switch c.Profile.Family {
	case platformservice.Linux:
		return firstResult([]strategy{
			{"os-release", func() (string, error) {
				data, err := c.Runner.ReadFile("/etc/os-release")
				if err != nil {
					return "", err
				}
				return parseOSRelease(data), nil
			}},
			{"goos", func() (string, error) { return runtime.GOOS, nil }},
		})
	case platformservice.FreeBSD:
		return firstResult([]strategy{
			{"freebsd-version", func() (string, error) { return c.Runner.Run("freebsd-version") }},
			{"uname", func() (string, error) { return c.Runner.Run("uname", "-sr") }},
		})
	default:
		return runtime.GOOS
	}
}

// parseOSRelease pulls PRETTY_NAME out of /etc/os-release content.
func parseOSRelease(data string) string {
	for _, line := range strings.Split(data, "\n") {
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			return strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), "\"")
		}
	}

	return ""
}

func (c *Collector) kernel() string {
	return firstResult([]strategy{
		{"uname", func() (string, error) { return c.Runner.Run("uname", "-rm") }},
		{"syscall", func() (string, error) { return unameFallback(), nil }},
		{"goarch", func() (string, error) { return runtime.GOARCH, nil }},
	})
}

func (c *Collector) uptime() string {
	strategies := []strategy{}
	if c.Profile.Family == platformservice.Linux {
		// Human-readable form when the host's uptime supports it.
		strategies = append(strategies, strategy{"uptime -p", func() (string, error) {
			return c.Runner.Run("uptime", "-p")
		}})
	}
	strategies = append(strategies,
		strategy{"uptime", func() (string, error) { return c.Runner.Run("uptime") }},
		strategy{"gopsutil", func() (string, error) {
			secs, err := hostUptime()
			if err != nil || secs == 0 {
				return "", err
			}
			return (time.Duration(secs) * time.Second).String(), nil
		}},
	)

	return firstResult(strategies)
}

func (c *Collector) timezone() string {
	return firstResult([]strategy{
		{"date", func() (string, error) { return c.Runner.Run("date", "+%Z %z") }},
		{"stdlib", func() (string, error) {
			zone, offset := time.Now().Zone()
			return zone + " " + formatUTCOffset(offset), nil
		}},
	})
}

// formatUTCOffset renders a UTC offset in seconds as ±HHMM, keeping the
// minute component for half-hour and 45-minute zones.
func formatUTCOffset(seconds int) string {
	return fmt.Sprintf("%+05d", seconds/3600*100+seconds%3600/60)
}
