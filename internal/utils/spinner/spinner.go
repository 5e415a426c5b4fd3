package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner starts a terminal spinner with the given message.
// Returns a stop function to halt and clear the spinner.
//
// The spinner writes to stderr: stdout carries the report itself and must stay
// byte-identical with the persisted file.
//
// Usage: assign the spinner to a 'stop' variable, run some code, then call stop().
// i.e.:
//
//	stop := spinner.StartSpinner("Your message here ")
//	err := lib.SomeOperation()
//	stop()
//	if err != nil { return err }
func StartSpinner(message string) func() {
	// CharSets[14] is a good default.
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()

	return func() {
		s.Stop()
	}
}
