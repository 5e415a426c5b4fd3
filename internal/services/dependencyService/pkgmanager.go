// Package manager probing and the missing-tool install workflow.
//
// Dependency resolution is its own phase: the full required-tool list is
// walked (prompting for installs as needed) before any section collector
// runs, so a user who declines every prompt still gets a best-effort report.
package dependencyservice

// PackageManager identifies the system package manager selected for this run.
type PackageManager string

const (
	Apt    PackageManager = "apt"
	AptGet PackageManager = "apt-get"
	Dnf    PackageManager = "dnf"
	Yum    PackageManager = "yum"
	Pacman PackageManager = "pacman"
	Zypper PackageManager = "zypper"
	Pkg    PackageManager = "pkg"
	None   PackageManager = "none"
)

// managerPriority is deliberate: Debian-family tools first. Keep the order
// stable so detection is reproducible across runs.
var managerPriority = []PackageManager{Apt, AptGet, Dnf, Yum, Pacman, Zypper, Pkg}

// DetectManager probes the candidate list in priority order and returns the
// first manager whose binary is present, or None. Called once per run.
func DetectManager(available func(string) bool) PackageManager {
	for _, mgr := range managerPriority {
		if available(string(mgr)) {
			return mgr
		}
	}

	return None
}

// aptFamily reports whether mgr wants an index update before its first
// install of the run.
func aptFamily(mgr PackageManager) bool {
	return mgr == Apt || mgr == AptGet
}
