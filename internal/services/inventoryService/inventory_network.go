package inventoryservice

import (
	"fmt"
	"net"
	"strings"
	"time"

	platformservice "github.com/redjax/collect-inventory/internal/services/platformService"

	"github.com/jackpal/gateway"
	probing "github.com/prometheus-community/pro-bing"
)

// ifaceInfo is the enumeration result the collectors render; kept flat so
// tests can feed synthetic interfaces.
type ifaceInfo struct {
	Name  string
	Addrs []string
}

// Swappable in tests.
var (
	listInterfaces  = realInterfaces
	discoverGateway = gateway.DiscoverGateway
	pingHost        = realPing
)

// tunnelRoles maps interface name prefixes to role labels, checked in order.
var tunnelRoles = []struct {
	prefix string
	role   string
}{
	{"tailscale", "Tailscale"},
	{"zt", "ZeroTier"},
	{"wg", "Tunnel"},
	{"tun", "Tunnel"},
	{"tap", "Tunnel"},
	{"gif", "Tunnel"},
}

func (c *Collector) collectNetwork() string {
	switch c.Profile.Family {
	case platformservice.Linux:
		return c.networkLinux()
	case platformservice.FreeBSD:
		return c.networkFreeBSD()
	default:
		return notImplemented("network enumeration")
	}
}

func (c *Collector) networkLinux() string {
	if !c.has("ip") {
		return placeholder("ip not available; install iproute2 to list interfaces")
	}

	var b strings.Builder

	sections := []struct {
		label string
		args  []string
	}{
		{"Links", []string{"-o", "link", "show"}},
		{"IPv4 addresses", []string{"-o", "-4", "addr", "show"}},
		{"IPv6 addresses", []string{"-o", "-6", "addr", "show"}},
	}

	for _, s := range sections {
		b.WriteString("  " + s.label + ":\n")
		out, err := c.Runner.Run("ip", s.args...)
		if err != nil || strings.TrimSpace(out) == "" {
			b.WriteString("    n/a\n")
			continue
		}
		b.WriteString(indentLines(out, "    "))
	}

	b.WriteString(c.gatewayLine())

	return b.String()
}

// networkFreeBSD has no unified link+address tool, so interfaces are
// enumerated directly and annotated with a best-effort role label derived
// from the default route and a tunnel-name heuristic. Classification only;
// not authoritative routing state.
func (c *Collector) networkFreeBSD() string {
	ifaces := listInterfaces()
	if len(ifaces) == 0 {
		return placeholder("no network interfaces detected")
	}

	defaultIface := c.defaultRouteInterface()

	var b strings.Builder
	for _, iface := range ifaces {
		addrs := "n/a"
		if len(iface.Addrs) > 0 {
			addrs = strings.Join(iface.Addrs, ", ")
		}

		if role := classifyRole(iface.Name, defaultIface); role != "" {
			fmt.Fprintf(&b, "  %s (%s): %s\n", iface.Name, role, addrs)
		} else {
			fmt.Fprintf(&b, "  %s: %s\n", iface.Name, addrs)
		}
	}

	b.WriteString(c.gatewayLine())

	return b.String()
}

// classifyRole labels an interface as the default-route carrier, a tunnel, or
// a named overlay network. Empty means no label.
func classifyRole(name, defaultIface string) string {
	if name != "" && name == defaultIface {
		return "LAN/Default"
	}

	for _, t := range tunnelRoles {
		if strings.HasPrefix(name, t.prefix) {
			return t.role
		}
	}

	return ""
}

// defaultRouteInterface parses `route -n get default` for the interface name.
func (c *Collector) defaultRouteInterface() string {
	out, err := c.Runner.Run("route", "-n", "get", "default")
	if err != nil {
		return ""
	}

	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if found && strings.TrimSpace(key) == "interface" {
			return strings.TrimSpace(value)
		}
	}

	return ""
}

// gatewayLine reports the default gateway and whether it answers a single
// unprivileged probe. Omitted entirely when no gateway is discoverable.
func (c *Collector) gatewayLine() string {
	gw, err := discoverGateway()
	if err != nil || gw == nil || gw.IsUnspecified() {
		return ""
	}

	reachability := "not reachable"
	if pingHost(gw.String()) {
		reachability = "reachable"
	}

	return fmt.Sprintf("  Default gateway: %s (%s)\n", gw, reachability)
}

func realInterfaces() []ifaceInfo {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil
	}

	var result []ifaceInfo
	for _, iface := range ifaces {
		info := ifaceInfo{Name: iface.Name}

		if addrs, err := iface.Addrs(); err == nil {
			for _, addr := range addrs {
				info.Addrs = append(info.Addrs, addr.String())
			}
		}

		result = append(result, info)
	}

	return result
}

func realPing(host string) bool {
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return false
	}

	pinger.Count = 1
	pinger.Timeout = 2 * time.Second
	pinger.SetPrivileged(false)

	if err := pinger.Run(); err != nil {
		return false
	}

	return pinger.Statistics().PacketsRecv > 0
}
