package files

import (
	"errors"
	"fmt"
	"os"
)

func Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, fmt.Errorf("Failed to determine if %s exists: %w", path, err)
	}
}

func IsDir(path string) (bool, error) {
	file, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return file.Mode().IsDir(), nil
}

// WriteIfDifferent writes contents to path, skipping the write when the file
// already holds exactly those contents. Keeps mtimes stable for unchanged files.
func WriteIfDifferent(path string, contents string) error {
	current, err := os.ReadFile(path)
	if err == nil && string(current) == contents {
		return nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(contents), 0o644)
}
