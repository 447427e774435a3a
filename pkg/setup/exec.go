package setup

import (
	"os"
	"os/exec"
	"strings"

	"github.com/pdfpress/pdfpress/pkg/util/console"
)

// CommandRunner runs a single external command with its output streamed
// through to the user.
type CommandRunner interface {
	Run(name string, args ...string) error
}

type execRunner struct{}

func (r *execRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	console.Debug("$ " + strings.Join(cmd.Args, " "))

	return cmd.Run()
}
