// Package setup installs what the compression backend needs to run:
// Ghostscript (and any other configured system packages) through apt, then
// the project's Python dependencies through pip. The two steps run strictly
// in order and the first failure aborts the whole thing.
package setup

import (
	"fmt"

	"github.com/pdfpress/pdfpress/pkg/config"
)

type Installer struct {
	runner CommandRunner
}

func NewInstaller() *Installer {
	return &Installer{runner: &execRunner{}}
}

// NewInstallerWithRunner is used by tests to stub out the package managers.
func NewInstallerWithRunner(runner CommandRunner) *Installer {
	return &Installer{runner: runner}
}

// Run performs the system package install followed by the pip install.
// pip never runs if the system install fails.
func (i *Installer) Run(setup *config.Setup) error {
	if err := i.installSystemPackages(setup.SystemPackages); err != nil {
		return err
	}
	return i.installPythonRequirements(setup.PythonRequirements)
}

func (i *Installer) installSystemPackages(packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	if err := i.runner.Run("apt-get", "update", "-qq"); err != nil {
		return fmt.Errorf("Failed to update package lists: %w", err)
	}

	args := []string{"install", "-qqy", "--no-install-recommends"}
	args = append(args, packages...)
	if err := i.runner.Run("apt-get", args...); err != nil {
		return fmt.Errorf("Failed to install system packages: %w", err)
	}
	return nil
}

func (i *Installer) installPythonRequirements(requirementsFile string) error {
	if requirementsFile == "" {
		return nil
	}

	if err := i.runner.Run("pip", "install", "-r", requirementsFile); err != nil {
		return fmt.Errorf("Failed to install Python requirements from %s: %w", requirementsFile, err)
	}
	return nil
}
