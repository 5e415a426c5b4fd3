// Report assembly and persistence.
//
// The report is streamed section-by-section through a tee: the persisted file
// and the terminal receive byte-identical content, and an interrupt mid-run
// leaves nothing worse than a truncated file.
package reportservice

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultLabel is the fixed script label used in the header and filename.
const DefaultLabel = "collect_inventory"

const footer = "== End of report =="

// SectionFunc produces one rendered section on demand, so collection happens
// while the report streams.
type SectionFunc func() (title, body string)

// Report carries the run identity stamped into the header and filename.
type Report struct {
	Label     string
	Generated time.Time
}

func New(label string, generated time.Time) *Report {
	return &Report{Label: label, Generated: generated}
}

// Filename is <label>_<YYYYMMDD>_<HHMMSS>.txt. Second granularity; collisions
// within the same second are accepted.
func (r *Report) Filename() string {
	return fmt.Sprintf("%s_%s.txt", r.Label, r.Generated.Format("20060102_150405"))
}

// Write renders the whole report to w: header line pair, blank line, each
// section as "\n== Title ==\n" plus its body, then the footer.
func (r *Report) Write(w io.Writer, sections []SectionFunc) error {
	if _, err := fmt.Fprintf(w, "%s - host inventory report\nGenerated: %s\n",
		r.Label, r.Generated.Format(time.RFC3339)); err != nil {
		return err
	}

	for _, section := range sections {
		title, body := section()
		if _, err := fmt.Fprintf(w, "\n== %s ==\n%s", title, body); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", footer)

	return err
}

// Persist streams the report simultaneously into a timestamped file in the
// current working directory and to terminal. When the file can't be created
// the report still goes to the terminal, and the error is returned alongside
// an empty path.
func (r *Report) Persist(sections []SectionFunc, terminal io.Writer) (string, error) {
	name := r.Filename()

	f, err := os.Create(name)
	if err != nil {
		werr := r.Write(terminal, sections)
		return "", errors.Join(fmt.Errorf("creating report file: %w", err), werr)
	}

	werr := r.Write(io.MultiWriter(f, terminal), sections)
	cerr := f.Close()

	return name, errors.Join(werr, cerr)
}
