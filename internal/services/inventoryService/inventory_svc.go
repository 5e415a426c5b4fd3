// Section collectors for the inventory report.
//
// Every collector degrades instead of failing: a missing tool or unreadable
// source becomes an "n/a" value or an explanatory placeholder line, because a
// partial report beats an aborted run.
package inventoryservice

import (
	"fmt"
	"os"
	"strings"

	platformservice "github.com/redjax/collect-inventory/internal/services/platformService"
	"github.com/redjax/collect-inventory/internal/services/platformService/capabilities"
)

// Collector runs the report sections for one resolved platform.
type Collector struct {
	Profile platformservice.Profile
	Runner  Runner
	// Tool availability as decided during dependency resolution. Tools not
	// listed fall back to a live PATH check.
	Tools map[string]bool
	Euid  int
}

func New(profile platformservice.Profile, runner Runner, tools map[string]bool) *Collector {
	return &Collector{
		Profile: profile,
		Runner:  runner,
		Tools:   tools,
		Euid:    os.Geteuid(),
	}
}

// Collect renders the body of one section. Never returns an error; failures
// surface as placeholder text inside the section.
func (c *Collector) Collect(kind platformservice.SectionKind) string {
	switch kind {
	case platformservice.SectionOS:
		return c.collectOS()
	case platformservice.SectionHardware:
		return c.collectHardware()
	case platformservice.SectionCPU:
		return c.collectCPU()
	case platformservice.SectionMemory:
		return c.collectMemory()
	case platformservice.SectionStorage:
		return c.collectStorage()
	case platformservice.SectionGPU:
		return c.collectGPU()
	case platformservice.SectionNetwork:
		return c.collectNetwork()
	default:
		return notImplemented(string(kind))
	}
}

func (c *Collector) has(tool string) bool {
	if present, ok := c.Tools[tool]; ok {
		return present
	}
	return capabilities.IsCommandAvailable(tool)
}

// strategy is one way to obtain a section's (or field's) text. Strategies are
// tried in order; the first non-empty result wins.
type strategy struct {
	name string
	run  func() (string, error)
}

func firstResult(strategies []strategy) string {
	for _, s := range strategies {
		out, err := s.run()
		if err != nil {
			continue
		}
		if out = strings.TrimSpace(out); out != "" {
			return out
		}
	}

	return ""
}

// kv appends an indented "key: value" line, substituting "n/a" for empty
// values.
func kv(b *strings.Builder, key, value string) {
	if value == "" {
		value = "n/a"
	}
	fmt.Fprintf(b, "  %s: %s\n", key, value)
}

// indentLines indents every non-empty line of raw tool output.
func indentLines(raw, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(raw, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func notImplemented(what string) string {
	return fmt.Sprintf("  %s collection not implemented for this OS\n", what)
}

func placeholder(text string) string {
	return "  " + text + "\n"
}
