// Package doctor checks that the environment `pdfpress setup` produces is
// actually usable: Ghostscript and pip on PATH, Ghostscript new enough, and
// the requirements manifest readable.
package doctor

import (
	"fmt"
	"os/exec"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/pdfpress/pdfpress/pkg/config"
	"github.com/pdfpress/pdfpress/pkg/requirements"
	"github.com/pdfpress/pdfpress/pkg/util/console"
)

// Ghostscript 9.50 changed -dSAFER to the behavior we rely on.
const minGhostscriptVersion = "9.50"

type Doctor struct {
	lookPath func(file string) (string, error)
	version  func(name string, args ...string) (string, error)
}

func NewDoctor() *Doctor {
	return &Doctor{
		lookPath: exec.LookPath,
		version: func(name string, args ...string) (string, error) {
			out, err := exec.Command(name, args...).Output()
			return string(out), err
		},
	}
}

// Check runs every check and reports all findings before failing, so the
// user gets the full picture in one run.
func (d *Doctor) Check(cfg *config.Config) error {
	problems := 0

	if err := d.checkGhostscript(); err != nil {
		console.Error(err.Error())
		problems++
	}

	if _, err := d.lookPath("pip"); err != nil {
		console.Error("pip was not found on PATH")
		problems++
	} else {
		console.Info("pip: ok")
	}

	if err := d.checkRequirements(cfg.Setup.PythonRequirements); err != nil {
		console.Error(err.Error())
		problems++
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found, run `pdfpress setup` to fix them", problems)
	}
	return nil
}

func (d *Doctor) checkGhostscript() error {
	if _, err := d.lookPath("gs"); err != nil {
		return fmt.Errorf("Ghostscript (gs) was not found on PATH")
	}

	raw, err := d.version("gs", "--version")
	if err != nil {
		return fmt.Errorf("Failed to run gs --version: %w", err)
	}
	installed, err := goversion.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("Failed to parse Ghostscript version %q: %w", strings.TrimSpace(raw), err)
	}
	minimum := goversion.Must(goversion.NewVersion(minGhostscriptVersion))
	if installed.LessThan(minimum) {
		return fmt.Errorf("Ghostscript %s is too old, %s or newer is required", installed, minimum)
	}

	console.Infof("ghostscript %s: ok", installed)
	return nil
}

func (d *Doctor) checkRequirements(requirementsFile string) error {
	if requirementsFile == "" {
		console.Info("no python requirements configured")
		return nil
	}

	reqs, err := requirements.ReadRequirements(requirementsFile)
	if err != nil {
		return fmt.Errorf("Failed to read %s: %w", requirementsFile, err)
	}
	console.Infof("%s: %d requirement(s)", requirementsFile, len(reqs))
	for _, req := range reqs {
		console.Debug("  " + req)
	}
	return nil
}
