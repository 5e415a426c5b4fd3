package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// assertNoReportFile fails when the current directory gained a report file.
func assertNoReportFile(t *testing.T) {
	t.Helper()

	matches, err := filepath.Glob("collect_inventory_*.txt")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("report files written: %v", matches)
	}
}

func TestUnknownFlagFailsWithoutReport(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--bogus"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("unknown flag should fail argument validation")
	}

	assertNoReportFile(t)
}

func TestUnexpectedArgumentFailsWithoutReport(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"stray-argument"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("positional arguments should fail validation")
	}

	assertNoReportFile(t)
}

func TestHelpSucceedsWithoutReport(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"-h"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("help should not error: %v", err)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("usage not printed:\n%s", out.String())
	}

	assertNoReportFile(t)
}
