package inventoryservice

import (
	"fmt"
	"runtime"
	"strings"

	platformservice "github.com/redjax/collect-inventory/internal/services/platformService"

	"github.com/klauspost/cpuid/v2"
)

type cpuFacts struct {
	Model          string
	Arch           string
	LogicalCores   string
	ThreadsPerCore string
	Sockets        string
}

func (f cpuFacts) render() string {
	var b strings.Builder

	kv(&b, "Model", f.Model)
	kv(&b, "Architecture", f.Arch)
	kv(&b, "Logical cores", f.LogicalCores)
	kv(&b, "Threads per core", f.ThreadsPerCore)
	kv(&b, "Sockets", f.Sockets)

	return b.String()
}

func (c *Collector) collectCPU() string {
	switch c.Profile.Family {
	case platformservice.Linux:
		if c.has("lscpu") {
			if out, err := c.Runner.Run("lscpu"); err == nil {
				if facts, ok := parseLscpu(out); ok {
					return facts.render()
				}
			}
		}
	case platformservice.FreeBSD:
		if facts, ok := c.cpuSysctl(); ok {
			return facts.render()
		}
	}

	return c.cpuGeneric().render()
}

// parseLscpu extracts the fields the report cares about from lscpu output.
// ok is false when the output doesn't even carry a model name, which triggers
// the generic fallback.
func parseLscpu(out string) (cpuFacts, bool) {
	fields := map[string]string{}
	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	facts := cpuFacts{
		Model:          fields["Model name"],
		Arch:           fields["Architecture"],
		LogicalCores:   fields["CPU(s)"],
		ThreadsPerCore: fields["Thread(s) per core"],
		Sockets:        fields["Socket(s)"],
	}

	return facts, facts.Model != ""
}

func (c *Collector) cpuSysctl() (cpuFacts, bool) {
	model := c.sysctl("hw.model")
	if model == "" {
		return cpuFacts{}, false
	}

	facts := cpuFacts{
		Model:          model,
		Arch:           c.sysctl("hw.machine"),
		LogicalCores:   c.sysctl("hw.ncpu"),
		ThreadsPerCore: c.sysctl("kern.smp.threads_per_core"),
		// No cheap sysctl for socket count; single-socket is the common case.
		Sockets: "1",
	}

	return facts, true
}

func (c *Collector) sysctl(key string) string {
	out, err := c.Runner.Run("sysctl", "-n", key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// cpuGeneric is the minimal raw-count fallback when no rich tool is usable.
func (c *Collector) cpuGeneric() cpuFacts {
	facts := cpuFacts{
		Model:        strings.TrimSpace(cpuid.CPU.BrandName),
		Arch:         runtime.GOARCH,
		LogicalCores: fmt.Sprintf("%d", runtime.NumCPU()),
		Sockets:      "1",
	}

	if cpuid.CPU.PhysicalCores > 0 && cpuid.CPU.LogicalCores > 0 {
		facts.ThreadsPerCore = fmt.Sprintf("%d", cpuid.CPU.LogicalCores/cpuid.CPU.PhysicalCores)
	}

	return facts
}
