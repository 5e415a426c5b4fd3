package inventoryservice

import (
	"strings"

	platformservice "github.com/redjax/collect-inventory/internal/services/platformService"
)

// serialHint is shown when no serial source is usable. Actionable on purpose:
// the serial is obtainable, just not from an unprivileged run.
const serialHint = "run as root with dmidecode installed to read the serial number"

// sbcModelPaths are probed in order for single-board-computer identity.
var sbcModelPaths = []string{
	"/proc/device-tree/model",
	"/sys/firmware/devicetree/base/model",
}

func (c *Collector) collectHardware() string {
	switch c.Profile.Family {
	case platformservice.Linux:
		return c.hardwareLinux()
	case platformservice.FreeBSD:
		return c.hardwareFreeBSD()
	default:
		return notImplemented("hardware identity")
	}
}

func (c *Collector) hardwareLinux() string {
	var b strings.Builder

	kv(&b, "Vendor", c.dmiFile("sys_vendor"))
	kv(&b, "Model", c.dmiFile("product_name"))
	kv(&b, "BIOS version", c.dmiFile("bios_version"))
	kv(&b, "Serial number", c.serial(func() string { return c.dmiFile("product_serial") }))

	if sbc := c.sbcModel(); sbc != "" {
		kv(&b, "Single-board computer", sbc)
	}

	return b.String()
}

func (c *Collector) hardwareFreeBSD() string {
	var b strings.Builder

	kv(&b, "Vendor", c.kenv("smbios.system.maker"))
	kv(&b, "Model", c.kenv("smbios.system.product"))
	kv(&b, "BIOS version", c.kenv("smbios.bios.version"))
	kv(&b, "Serial number", c.serial(func() string { return c.kenv("smbios.system.serial") }))

	return b.String()
}

// serial prefers dmidecode under elevated privilege, then the platform's
// readable identity source, then the instructional hint.
func (c *Collector) serial(fallback func() string) string {
	if c.Euid == 0 && c.has("dmidecode") {
		if out, err := c.Runner.Run("dmidecode", "-s", "system-serial-number"); err == nil {
			if s := strings.TrimSpace(out); s != "" {
				return s
			}
		}
	}

	if s := fallback(); s != "" {
		return s
	}

	return serialHint
}

// sbcModel probes the device-tree model sources for a known hobbyist board.
// A case-insensitive substring match is treated as sufficient; no match means
// the line is silently omitted.
func (c *Collector) sbcModel() string {
	for _, path := range sbcModelPaths {
		data, err := c.Runner.ReadFile(path)
		if err != nil {
			continue
		}

		model := strings.TrimSpace(strings.TrimRight(data, "\x00"))
		if strings.Contains(strings.ToLower(model), "raspberry pi") {
			return model
		}
	}

	return ""
}

func (c *Collector) dmiFile(name string) string {
	data, err := c.Runner.ReadFile("/sys/class/dmi/id/" + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(data)
}

func (c *Collector) kenv(key string) string {
	out, err := c.Runner.Run("kenv", "-q", key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}
