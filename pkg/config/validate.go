package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/pdfpress/pdfpress/pkg/util/files"
)

const defaultRequirementsFile = "requirements.txt"

// ValidateAndComplete checks the setup section and resolves the requirements
// path against the project root. When no requirements file is configured but
// requirements.txt exists in the project root, it is picked up.
func (c *Config) ValidateAndComplete(rootDir string) error {
	for _, pkg := range c.Setup.SystemPackages {
		if pkg == "" {
			return fmt.Errorf("system_packages contains an empty package name")
		}
		if !packageNameRegex.MatchString(pkg) {
			return fmt.Errorf("Invalid system package name %q", pkg)
		}
	}

	if c.Setup.PythonRequirements == "" {
		defaultPath := filepath.Join(rootDir, defaultRequirementsFile)
		exists, err := files.Exists(defaultPath)
		if err != nil {
			return err
		}
		if exists {
			c.Setup.PythonRequirements = defaultPath
		}
		return nil
	}

	requirementsPath, err := homedir.Expand(c.Setup.PythonRequirements)
	if err != nil {
		return fmt.Errorf("Failed to expand %s: %w", c.Setup.PythonRequirements, err)
	}
	if !filepath.IsAbs(requirementsPath) {
		requirementsPath = filepath.Join(rootDir, requirementsPath)
	}
	exists, err := files.Exists(requirementsPath)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("python_requirements file %s does not exist", requirementsPath)
	}
	c.Setup.PythonRequirements = requirementsPath
	return nil
}
