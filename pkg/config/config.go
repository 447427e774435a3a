package config

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v2"
)

// Setup describes what `pdfpress setup` installs: system packages through
// the OS package manager, then a pip requirements file.
type Setup struct {
	SystemPackages     []string `json:"system_packages,omitempty" yaml:"system_packages"`
	PythonRequirements string   `json:"python_requirements,omitempty" yaml:"python_requirements"`
}

type Config struct {
	Setup *Setup `json:"setup" yaml:"setup"`
}

// Debian package name charset. Anything outside this is rejected before it
// gets near a shell.
var packageNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9+.-]*$`)

func DefaultConfig() *Config {
	return &Config{
		Setup: &Setup{
			SystemPackages: []string{"ghostscript"},
		},
	}
}

func FromYAML(contents []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.UnmarshalStrict(contents, config); err != nil {
		return nil, fmt.Errorf("Failed to parse config yaml: %w", err)
	}
	if config.Setup == nil {
		config.Setup = DefaultConfig().Setup
	}
	return config, nil
}
