// The collect pipeline: resolve platform, resolve dependencies, run the
// section collectors, stream the report.
package collectcommand

import (
	"fmt"
	"os"
	"time"

	"github.com/redjax/collect-inventory/internal/config"
	dependencyservice "github.com/redjax/collect-inventory/internal/services/dependencyService"
	inventoryservice "github.com/redjax/collect-inventory/internal/services/inventoryService"
	platformservice "github.com/redjax/collect-inventory/internal/services/platformService"
	"github.com/redjax/collect-inventory/internal/services/platformService/capabilities"
	reportservice "github.com/redjax/collect-inventory/internal/services/reportService"
	"github.com/redjax/collect-inventory/internal/utils/spinner"

	"github.com/google/uuid"
)

// Run executes one full inventory run. The whole pipeline is sequential:
// platform, then package manager, then dependencies (prompting synchronously),
// then section collection, then the report stream. Nothing past flag parsing
// is fatal.
func Run(cfg config.RunConfig) error {
	if cfg.Debug {
		fmt.Fprintf(os.Stderr, "run id: %s\n", uuid.NewString())
	}

	profile := platformservice.Resolve()
	if cfg.Debug {
		fmt.Fprintf(os.Stderr, "resolved platform family: %s\n", profile.Family)
	}

	// Dependency resolution is a distinct phase: all prompts happen before
	// any data collection starts.
	mgr := dependencyservice.DetectManager(capabilities.IsCommandAvailable)
	resolver := dependencyservice.NewResolver(mgr, profile, cfg.AllowInstall)
	decisions := resolver.EnsureAll(profile.RequiredTools(cfg.IncludeNetwork, cfg.IncludeGPU))

	tools := make(map[string]bool, len(decisions))
	for _, d := range decisions {
		tools[d.Tool] = d.Present
	}

	collector := inventoryservice.New(profile, inventoryservice.ExecRunner{}, tools)

	var sections []reportservice.SectionFunc
	for _, kind := range profile.Sections(cfg.IncludeNetwork, cfg.IncludeGPU) {
		sections = append(sections, func() (string, string) {
			stop := spinner.StartSpinner("Collecting " + kind.Title() + " section")
			body := collector.Collect(kind)
			stop()
			return kind.Title(), body
		})
	}

	report := reportservice.New(reportservice.DefaultLabel, time.Now())

	path, err := report.Persist(sections, os.Stdout)
	if err != nil {
		// Best-effort policy: the terminal copy already streamed, so a
		// persistence failure is a warning, not an abort.
		fmt.Fprintf(os.Stderr, "WARNING: could not persist report: %v\n", err)
		return nil
	}

	fmt.Fprintf(os.Stderr, "Report written to %s\n", path)

	return nil
}
