package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/pdfpress/pdfpress/pkg/errors"
	"github.com/pdfpress/pdfpress/pkg/global"
	"github.com/pdfpress/pdfpress/pkg/util/files"
)

const maxSearchDepth = 100

// GetConfig loads and validates the config for a project. customDir can be
// specified to override the default, the current working directory. When no
// config file exists anywhere up the tree, defaults are used with the
// working directory as project root.
func GetConfig(customDir string) (*Config, string, error) {
	config, rootDir, err := GetRawConfig(customDir)
	if err != nil {
		return nil, "", err
	}
	err = config.ValidateAndComplete(rootDir)
	return config, rootDir, err
}

func GetRawConfig(customDir string) (*Config, string, error) {
	startDir := customDir
	if startDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		startDir = cwd
	}

	rootDir, err := findProjectRootDir(startDir)
	if err != nil {
		if errors.IsConfigNotFound(err) {
			return DefaultConfig(), startDir, nil
		}
		return nil, "", err
	}

	config, err := loadConfigFromFile(path.Join(rootDir, global.ConfigFilename))
	if err != nil {
		return nil, "", err
	}
	return config, rootDir, nil
}

func loadConfigFromFile(file string) (*Config, error) {
	contents, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return FromYAML(contents)
}

// Walk up the directory tree to find the directory holding the config file
func findProjectRootDir(startDir string) (string, error) {
	dir := startDir
	for i := 0; i < maxSearchDepth; i++ {
		configPath := path.Join(dir, global.ConfigFilename)
		exists, err := files.Exists(configPath)
		if err != nil {
			return "", fmt.Errorf("Failed to scan directory %s for %s: %w", dir, global.ConfigFilename, err)
		}
		if exists {
			return dir, nil
		}
		if dir == "/" || dir == filepath.Dir(dir) {
			break
		}
		dir = filepath.Dir(dir)
	}
	return "", errors.ConfigNotFound(fmt.Sprintf("%s not found in %s or any parent directory", global.ConfigFilename, startDir))
}
