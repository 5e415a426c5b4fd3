package config

import (
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// runFlags mirrors the flags the root command registers, with defaults only.
func runFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("collect-inventory", pflag.ContinueOnError)
	fs.Bool("no-network", false, "")
	fs.Bool("no-gpu", false, "")
	fs.Bool("skip-install", false, "")
	fs.Bool("debug", false, "")

	return fs
}

func TestEnvLayerReachesRunConfig(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		check  func(RunConfig) bool
	}{
		{"no-network disables network", "INVENTORY_NO_NETWORK", func(c RunConfig) bool { return !c.IncludeNetwork }},
		{"no-gpu disables gpu", "INVENTORY_NO_GPU", func(c RunConfig) bool { return !c.IncludeGPU }},
		{"skip-install disables installs", "INVENTORY_SKIP_INSTALL", func(c RunConfig) bool { return !c.AllowInstall }},
		{"debug enables debug", "INVENTORY_DEBUG", func(c RunConfig) bool { return c.Debug }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			K = koanf.New(".")
			t.Setenv(tt.envVar, "true")

			LoadConfig(runFlags(), "")

			if cfg := Run(); !tt.check(cfg) {
				t.Fatalf("%s=true did not reach RunConfig: %+v", tt.envVar, cfg)
			}
		})
	}
}

func TestExplicitFlagOverridesEnv(t *testing.T) {
	K = koanf.New(".")
	t.Setenv("INVENTORY_NO_NETWORK", "true")

	fs := runFlags()
	if err := fs.Parse([]string{"--no-network=false"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	LoadConfig(fs, "")

	if cfg := Run(); !cfg.IncludeNetwork {
		t.Fatalf("explicit flag should win over env: %+v", cfg)
	}
}

func TestFlagDefaultsDoNotMaskEnv(t *testing.T) {
	K = koanf.New(".")
	t.Setenv("INVENTORY_NO_GPU", "true")

	// Flags parsed but untouched: their false defaults must not shadow the
	// env layer loaded before them.
	fs := runFlags()
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	LoadConfig(fs, "")

	if cfg := Run(); cfg.IncludeGPU {
		t.Fatalf("unchanged flag default masked the env layer: %+v", cfg)
	}
}
