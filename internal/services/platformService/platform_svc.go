// Platform resolution for the inventory collector.
// The running OS is probed exactly once and mapped to a Profile describing
// which report sections run and which external tools they lean on.
package platformservice

import (
	"runtime"
	"strings"

	"github.com/redjax/collect-inventory/internal/utils/strutils"
)

// Family is the OS family the collector knows how to inventory.
type Family string

const (
	Linux   Family = "linux"
	FreeBSD Family = "freebsd"
	// Unknown still produces a report; platform-specific sections degrade
	// to labeled placeholders instead of failing.
	Unknown Family = "unknown"
)

// SectionKind names one block of the report.
type SectionKind string

const (
	SectionOS       SectionKind = "os"
	SectionHardware SectionKind = "hardware"
	SectionCPU      SectionKind = "cpu"
	SectionMemory   SectionKind = "memory"
	SectionStorage  SectionKind = "storage"
	SectionGPU      SectionKind = "gpu"
	SectionNetwork  SectionKind = "network"
)

// Title returns the section's display name, i.e. "os" -> "OS", "memory" -> "Memory".
func (k SectionKind) Title() string {
	switch k {
	case SectionOS, SectionCPU, SectionGPU:
		return strings.ToUpper(string(k))
	default:
		return strutils.ToTitleCase(string(k))
	}
}

// Profile is the per-family collection plan. Immutable once resolved.
type Profile struct {
	Family Family
	// External tools the collectors lean on, before GPU/network toggles.
	BaseTools []string
	// Report sections in render order.
	SectionOrder []SectionKind
	// Tool name -> package name for the family's package manager.
	// Tools not listed install under their own name.
	PackageMap map[string]string
}

// sectionOrder is shared by every family; GPU and network are filtered out
// later when their toggles are off.
var sectionOrder = []SectionKind{
	SectionOS,
	SectionHardware,
	SectionCPU,
	SectionMemory,
	SectionStorage,
	SectionGPU,
	SectionNetwork,
}

// Resolve maps the running OS onto a Profile. Called once at startup; an
// unrecognized OS degrades to the Unknown family, never an error.
func Resolve() Profile {
	return resolveFamily(runtime.GOOS)
}

func resolveFamily(goos string) Profile {
	switch goos {
	case "linux":
		return Profile{
			Family: Linux,
			BaseTools: []string{
				"hostname", "uname", "uptime", "lsblk", "lscpu",
				"awk", "sed", "grep", "cat", "date",
			},
			SectionOrder: sectionOrder,
			PackageMap: map[string]string{
				"lsblk": "util-linux",
				"lscpu": "util-linux",
				"ip":    "iproute2",
				"lspci": "pciutils",
			},
		}
	case "freebsd":
		return Profile{
			Family: FreeBSD,
			BaseTools: []string{
				"hostname", "uname", "uptime", "sysctl",
				"awk", "sed", "grep", "cat", "date",
				"ifconfig", "pciconf", "geom", "kenv", "swapinfo",
			},
			SectionOrder: sectionOrder,
			PackageMap: map[string]string{
				"lspci": "pciutils",
			},
		}
	default:
		return Profile{
			Family: Unknown,
			BaseTools: []string{
				"hostname", "uname", "uptime",
				"awk", "sed", "grep", "cat", "date",
			},
			SectionOrder: sectionOrder,
		}
	}
}

// RequiredTools returns the full tool set for one run: base tools, the
// GPU/network tools when those sections are enabled, and dmidecode, which is
// always requested for the opportunistic hardware serial lookup.
func (p Profile) RequiredTools(includeNetwork, includeGPU bool) []string {
	tools := make([]string, 0, len(p.BaseTools)+3)
	tools = append(tools, p.BaseTools...)

	if includeNetwork && p.Family == Linux {
		tools = append(tools, "ip")
	}

	if includeGPU && p.Family == Linux {
		tools = append(tools, "lspci")
	}
	// FreeBSD's GPU and network tools (pciconf, ifconfig) are already base
	// tools, so toggles only matter on Linux.

	tools = append(tools, "dmidecode")

	return tools
}

// Sections returns the section order with disabled sections filtered out.
func (p Profile) Sections(includeNetwork, includeGPU bool) []SectionKind {
	out := make([]SectionKind, 0, len(p.SectionOrder))
	for _, s := range p.SectionOrder {
		if s == SectionNetwork && !includeNetwork {
			continue
		}
		if s == SectionGPU && !includeGPU {
			continue
		}
		out = append(out, s)
	}
	return out
}

// PackageFor maps a tool to its installable package, falling back to the tool
// name itself.
func (p Profile) PackageFor(tool string) string {
	if pkg, ok := p.PackageMap[tool]; ok {
		return pkg
	}
	return tool
}
