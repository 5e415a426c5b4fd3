package dependencyservice

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	platformservice "github.com/redjax/collect-inventory/internal/services/platformService"
	"github.com/redjax/collect-inventory/internal/services/platformService/capabilities"

	"github.com/charmbracelet/lipgloss"
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// Decision is the per-tool outcome of dependency resolution. Ephemeral; it
// only decides whether a section collector degrades gracefully.
type Decision struct {
	Tool             string
	Present          bool
	UserChoseInstall bool
	InstallSucceeded bool
}

// Resolver walks the required-tool list, prompting to install what's missing.
//
// All shared state for the run lives here, including the one-shot
// "apt index already refreshed" flag.
type Resolver struct {
	Manager PackageManager
	Profile platformservice.Profile
	// When false no prompt is ever shown and no installer is ever invoked.
	AllowInstall bool

	// Injection points for tests; NewResolver fills in the real ones.
	Available func(string) bool
	RunCmd    func(name string, args ...string) error
	Euid      int

	In   io.Reader
	ErrW io.Writer

	aptUpdated bool
	reader     *bufio.Reader
}

func NewResolver(mgr PackageManager, profile platformservice.Profile, allowInstall bool) *Resolver {
	return &Resolver{
		Manager:      mgr,
		Profile:      profile,
		AllowInstall: allowInstall,
		Available:    capabilities.IsCommandAvailable,
		RunCmd:       runAttached,
		Euid:         os.Geteuid(),
		In:           os.Stdin,
		ErrW:         os.Stderr,
	}
}

// runAttached runs an install command with the terminal attached, so package
// manager progress and any of its own prompts stay visible.
func runAttached(name string, args ...string) error {
	return attachedCommand(name, args...)
}

// EnsureAll resolves every tool in order, returning one Decision per tool.
func (r *Resolver) EnsureAll(tools []string) []Decision {
	decisions := make([]Decision, 0, len(tools))
	for _, tool := range tools {
		decisions = append(decisions, r.Ensure(tool))
	}

	return decisions
}

// Ensure checks one tool and, when allowed and confirmed, tries to install it.
// Never fatal: every failure path returns a Decision and warns on ErrW.
func (r *Resolver) Ensure(tool string) Decision {
	if r.Available(tool) {
		return Decision{Tool: tool, Present: true}
	}

	pkg := r.Profile.PackageFor(tool)

	if !r.AllowInstall {
		r.warnf("missing tool %q (package %q); report output may be incomplete", tool, pkg)
		return Decision{Tool: tool}
	}

	if r.Manager == None {
		r.warnf("missing tool %q and no supported package manager was found; install package %q manually", tool, pkg)
		return Decision{Tool: tool}
	}

	if !r.confirmInstall(tool, pkg) {
		r.warnf("skipping install of %q; report output may be incomplete", tool)
		return Decision{Tool: tool}
	}

	r.install(pkg)

	present := r.Available(tool)
	if !present {
		r.warnf("tool %q still unavailable after attempted install", tool)
	}

	return Decision{
		Tool:             tool,
		Present:          present,
		UserChoseInstall: true,
		InstallSucceeded: present,
	}
}

// confirmInstall prompts on ErrW and reads one line from In. Any answer other
// than an explicit yes (including plain Enter) declines.
func (r *Resolver) confirmInstall(tool, pkg string) bool {
	if r.reader == nil {
		r.reader = bufio.NewReader(r.In)
	}

	fmt.Fprintf(r.ErrW, "Tool %q is missing. Install package %q with %s? [y/N]: ", tool, pkg, r.Manager)

	answer, err := r.reader.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	return acceptAnswer(answer)
}

// acceptAnswer is the pure half of the prompt: it maps the user's raw answer
// onto install/skip without touching a terminal.
func acceptAnswer(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}

// install runs the manager's update step (apt family, once per run) and the
// install command, both through the elevation wrapper.
func (r *Resolver) install(pkg string) {
	if aptFamily(r.Manager) && !r.aptUpdated {
		// One index refresh per process, no matter how many tools get
		// installed in this run.
		r.aptUpdated = true
		if err := r.runElevated(string(r.Manager), "update"); err != nil {
			r.warnf("%s update failed: %v", r.Manager, err)
		}
	}

	var args []string
	switch r.Manager {
	case Apt, AptGet, Dnf, Yum, Pkg:
		args = []string{"install", "-y", pkg}
	case Pacman:
		// Sync the package database on every install.
		args = []string{"-Sy", "--noconfirm", pkg}
	case Zypper:
		args = []string{"--non-interactive", "install", pkg}
	default:
		return
	}

	if err := r.runElevated(string(r.Manager), args...); err != nil {
		r.warnf("install of %q with %s failed: %v", pkg, r.Manager, err)
	}
}

// runElevated wraps the command in the elevation mechanism unless already
// running as root. FreeBSD hosts without sudo fall back to doas when present.
func (r *Resolver) runElevated(name string, args ...string) error {
	elevate := r.elevationTool()
	if elevate == "" {
		return r.RunCmd(name, args...)
	}

	return r.RunCmd(elevate, append([]string{name}, args...)...)
}

func (r *Resolver) elevationTool() string {
	if r.Euid == 0 {
		return ""
	}

	if r.Profile.Family == platformservice.FreeBSD && !r.Available("sudo") && r.Available("doas") {
		return "doas"
	}

	return "sudo"
}

func (r *Resolver) warnf(format string, args ...any) {
	fmt.Fprintln(r.ErrW, warnStyle.Render("WARNING: "+fmt.Sprintf(format, args...)))
}
