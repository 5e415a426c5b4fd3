package inventoryservice

import (
	"strings"

	platformservice "github.com/redjax/collect-inventory/internal/services/platformService"
)

// displayClasses match PCI device descriptions for display-class controllers
// in lspci output.
var displayClasses = []string{"vga", "3d", "display"}

func (c *Collector) collectGPU() string {
	switch c.Profile.Family {
	case platformservice.Linux:
		if !c.has("lspci") {
			return placeholder("lspci not available; install pciutils to list GPUs")
		}

		out, err := c.Runner.Run("lspci")
		if err != nil {
			return placeholder("lspci failed; GPU details skipped")
		}

		matches := filterDisplayControllers(out)
		if len(matches) == 0 {
			return placeholder("no display controllers detected")
		}
		return indentLines(strings.Join(matches, "\n"), "  ")

	case platformservice.FreeBSD:
		out, err := c.Runner.Run("pciconf", "-lv")
		if err != nil {
			return placeholder("pciconf failed; GPU details skipped")
		}

		matches := filterPciconfDisplay(out)
		if len(matches) == 0 {
			return placeholder("no display controllers detected")
		}
		return indentLines(strings.Join(matches, "\n"), "  ")

	default:
		return notImplemented("GPU enumeration")
	}
}

// filterDisplayControllers keeps lspci lines for display-class devices,
// matching case-insensitively against the known class names.
func filterDisplayControllers(out string) []string {
	var matches []string

	for _, line := range strings.Split(out, "\n") {
		lower := strings.ToLower(line)
		for _, class := range displayClasses {
			if strings.Contains(lower, class) {
				matches = append(matches, strings.TrimSpace(line))
				break
			}
		}
	}

	return matches
}

// filterPciconfDisplay walks pciconf -lv output blocks and keeps devices
// whose PCI class is display.
func filterPciconfDisplay(out string) []string {
	var matches []string
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		for _, line := range block {
			if strings.Contains(strings.ToLower(line), "class") && strings.Contains(strings.ToLower(line), "display") {
				matches = append(matches, block...)
				break
			}
		}
		block = nil
	}

	for _, line := range strings.Split(out, "\n") {
		// Block headers are unindented; detail lines are indented.
		if line != "" && line[0] != ' ' && line[0] != '\t' {
			flush()
		}
		if strings.TrimSpace(line) != "" {
			block = append(block, strings.TrimRight(line, "\r"))
		}
	}
	flush()

	return matches
}
