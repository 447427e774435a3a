package compress

import (
	"os"
	"os/exec"
	"strings"

	"github.com/pdfpress/pdfpress/pkg/errors"
	"github.com/pdfpress/pdfpress/pkg/util/console"
)

// CommandRunner runs a single external command.
type CommandRunner interface {
	Run(name string, args ...string) error
}

type gsRunner struct{}

func (r *gsRunner) Run(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return errors.GhostscriptNotFound("Ghostscript (gs) was not found on PATH. Run `pdfpress setup` to install it")
	}

	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	cmd.Stderr = os.Stderr
	console.Debug("$ " + strings.Join(cmd.Args, " "))

	return cmd.Run()
}
