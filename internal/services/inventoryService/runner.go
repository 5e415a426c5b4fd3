package inventoryservice

import (
	"os"
	"os/exec"
)

// Runner abstracts the data sources the section collectors read: external
// commands and flat files. Collectors never shell out directly, so strategies
// can be exercised with canned output in tests.
type Runner interface {
	Run(name string, args ...string) (string, error)
	ReadFile(path string) (string, error)
}

// ExecRunner is the production Runner: real commands, real files.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

func (ExecRunner) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	return string(data), err
}
