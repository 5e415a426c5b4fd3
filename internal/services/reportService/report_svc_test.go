package reportservice

import (
	"bytes"
	"errors"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"
)

type failWriter struct{ err error }

func (w failWriter) Write(p []byte) (int, error) { return 0, w.err }

func stubSections() []SectionFunc {
	return []SectionFunc{
		func() (string, string) { return "OS", "  Hostname: testbox\n" },
		func() (string, string) { return "Hardware", "  Vendor: n/a\n" },
		func() (string, string) { return "CPU", "  Model: n/a\n" },
		func() (string, string) { return "Memory", "  Total: 0 GiB\n" },
		func() (string, string) { return "Storage", "  lsblk not available; install util-linux to list block devices\n" },
	}
}

func TestFilenamePattern(t *testing.T) {
	r := New(DefaultLabel, time.Date(2026, 8, 25, 9, 30, 5, 0, time.UTC))

	want := "collect_inventory_20260825_093005.txt"
	if got := r.Filename(); got != want {
		t.Fatalf("Filename() = %q; want %q", got, want)
	}

	pattern := regexp.MustCompile(`^collect_inventory_\d{8}_\d{6}\.txt$`)
	if !pattern.MatchString(r.Filename()) {
		t.Fatalf("Filename() = %q does not match required pattern", r.Filename())
	}
}

func TestWriteStructure(t *testing.T) {
	r := New(DefaultLabel, time.Date(2026, 8, 25, 9, 30, 5, 0, time.UTC))

	var buf bytes.Buffer
	if err := r.Write(&buf, stubSections()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "collect_inventory - host inventory report\nGenerated: 2026-08-25T09:30:05Z\n") {
		t.Fatalf("header pair malformed:\n%s", out)
	}

	// Every degraded section still renders its header: declining every
	// install prompt must not drop sections from the report.
	for _, header := range []string{"\n== OS ==\n", "\n== Hardware ==\n", "\n== CPU ==\n", "\n== Memory ==\n", "\n== Storage ==\n"} {
		if !strings.Contains(out, header) {
			t.Fatalf("missing section header %q:\n%s", header, out)
		}
	}

	if !strings.HasSuffix(out, "\n== End of report ==\n") {
		t.Fatalf("missing footer:\n%s", out)
	}

	// Section order is a readability contract.
	if strings.Index(out, "== OS ==") > strings.Index(out, "== Hardware ==") ||
		strings.Index(out, "== Memory ==") > strings.Index(out, "== Storage ==") {
		t.Fatalf("sections out of order:\n%s", out)
	}
}

func TestPersistTeeIsByteIdentical(t *testing.T) {
	t.Chdir(t.TempDir())

	r := New(DefaultLabel, time.Now())

	var terminal bytes.Buffer
	path, err := r.Persist(stubSections(), &terminal)
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}

	fileContent, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading persisted report: %v", err)
	}

	if !bytes.Equal(fileContent, terminal.Bytes()) {
		t.Fatalf("file and terminal output differ:\nfile:\n%s\nterminal:\n%s", fileContent, terminal.Bytes())
	}

	if len(fileContent) == 0 {
		t.Fatal("persisted report is empty")
	}
}

func TestPersistFileCreateFailureStillStreams(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	r := New(DefaultLabel, time.Now())

	var terminal bytes.Buffer
	path, err := r.Persist(stubSections(), &terminal)

	if err == nil {
		t.Skip("running as root; directory permissions not enforced")
	}
	if path != "" {
		t.Fatalf("path should be empty on create failure, got %q", path)
	}
	if terminal.Len() == 0 {
		t.Fatal("report should still stream to the terminal when the file fails")
	}
	if !strings.Contains(err.Error(), "creating report file") {
		t.Fatalf("error should name the create failure: %v", err)
	}
}

func TestPersistSurfacesTerminalWriteError(t *testing.T) {
	t.Chdir(t.TempDir())

	r := New(DefaultLabel, time.Now())
	sentinel := errors.New("terminal gone")

	path, err := r.Persist(stubSections(), failWriter{sentinel})

	if !errors.Is(err, sentinel) {
		t.Fatalf("terminal write error dropped: %v", err)
	}
	if path == "" {
		t.Fatal("the file was created; its path should be returned with the error")
	}
}

func TestPersistCreateFailureKeepsBothErrors(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root; directory permissions not enforced")
	}

	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	r := New(DefaultLabel, time.Now())
	sentinel := errors.New("terminal gone")

	_, err := r.Persist(stubSections(), failWriter{sentinel})
	if err == nil {
		t.Fatal("create failure plus terminal failure must surface an error")
	}

	if !errors.Is(err, sentinel) {
		t.Fatalf("terminal write error dropped: %v", err)
	}
	if !strings.Contains(err.Error(), "creating report file") {
		t.Fatalf("create error dropped: %v", err)
	}
}
