package inventoryservice

import (
	"strings"

	"github.com/redjax/collect-inventory/internal/utils/convert"

	"github.com/shirou/gopsutil/v4/mem"
)

// Swappable in tests.
var (
	virtualMemory = mem.VirtualMemory
	swapMemory    = mem.SwapMemory
)

// collectMemory reports totals in binary gigabytes. Unreadable sources read
// as "0 GiB" rather than an error.
func (c *Collector) collectMemory() string {
	var total, available, swap uint64

	if vm, err := virtualMemory(); err == nil && vm != nil {
		total = vm.Total
		available = vm.Available
	}

	if sw, err := swapMemory(); err == nil && sw != nil {
		swap = sw.Total
	}

	var b strings.Builder
	kv(&b, "Total", convert.BytesToGiB(total))
	kv(&b, "Available", convert.BytesToGiB(available))
	kv(&b, "Swap total", convert.BytesToGiB(swap))

	return b.String()
}
