package inventoryservice

import (
	platformservice "github.com/redjax/collect-inventory/internal/services/platformService"
	"github.com/redjax/collect-inventory/internal/utils/convert"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shirou/gopsutil/v4/disk"
)

// Swappable in tests.
var (
	diskPartitions = disk.Partitions
	diskUsage      = disk.Usage
)

func (c *Collector) collectStorage() string {
	switch c.Profile.Family {
	case platformservice.Linux:
		if !c.has("lsblk") {
			if out := c.partitionTable(); out != "" {
				return indentLines(out, "  ")
			}
			return placeholder("lsblk not available; install util-linux to list block devices")
		}

		out := firstResult([]strategy{
			{"lsblk", func() (string, error) {
				return c.Runner.Run("lsblk", "-o", "NAME,SIZE,TYPE,FSTYPE,MOUNTPOINT,MODEL,SERIAL")
			}},
			{"gopsutil", func() (string, error) { return c.partitionTable(), nil }},
		})
		if out == "" {
			return placeholder("block device enumeration failed")
		}
		return indentLines(out, "  ")

	case platformservice.FreeBSD:
		out := firstResult([]strategy{
			{"geom", func() (string, error) { return c.Runner.Run("geom", "disk", "list") }},
			{"gopsutil", func() (string, error) { return c.partitionTable(), nil }},
		})
		if out == "" {
			return placeholder("geom not available; storage details skipped")
		}
		return indentLines(out, "  ")

	default:
		return notImplemented("storage enumeration")
	}
}

// partitionTable renders mounted filesystems as a table when the platform's
// block-device tool is unusable.
func (c *Collector) partitionTable() string {
	parts, err := diskPartitions(false)
	if err != nil || len(parts) == 0 {
		return ""
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Device", "Mount", "Type", "Size", "Used", "Free"})

	for _, part := range parts {
		usage, err := diskUsage(part.Mountpoint)
		if err != nil {
			t.AppendRow(table.Row{part.Device, part.Mountpoint, part.Fstype, "n/a", "n/a", "n/a"})
			continue
		}

		t.AppendRow(table.Row{
			part.Device,
			part.Mountpoint,
			part.Fstype,
			convert.BytesToGiB(usage.Total),
			convert.BytesToGiB(usage.Used),
			convert.BytesToGiB(usage.Free),
		})
	}

	return t.Render()
}
