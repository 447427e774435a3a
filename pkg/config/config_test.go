package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	contents := `
setup:
  system_packages:
    - ghostscript
    - libxml2
  python_requirements: requirements.txt
`
	config, err := FromYAML([]byte(contents))
	require.NoError(t, err)
	require.Equal(t, []string{"ghostscript", "libxml2"}, config.Setup.SystemPackages)
	require.Equal(t, "requirements.txt", config.Setup.PythonRequirements)
}

func TestFromYAMLDefaults(t *testing.T) {
	config, err := FromYAML([]byte(""))
	require.NoError(t, err)
	require.Equal(t, []string{"ghostscript"}, config.Setup.SystemPackages)
	require.Equal(t, "", config.Setup.PythonRequirements)
}

func TestFromYAMLUnknownField(t *testing.T) {
	_, err := FromYAML([]byte("setup:\n  system_packges: [ghostscript]\n"))
	require.Error(t, err)
}

func TestValidateRejectsBadPackageNames(t *testing.T) {
	for _, pkg := range []string{"", "ghostscript; rm -rf /", "$(whoami)", "Ghostscript"} {
		config := DefaultConfig()
		config.Setup.SystemPackages = []string{pkg}
		require.Error(t, config.ValidateAndComplete(t.TempDir()), "package name %q should be rejected", pkg)
	}
}

func TestValidateResolvesRequirementsAgainstRoot(t *testing.T) {
	rootDir := t.TempDir()
	reqFile := filepath.Join(rootDir, "requirements-prod.txt")
	require.NoError(t, os.WriteFile(reqFile, []byte("pikepdf==8.0.0"), 0o644))

	config := DefaultConfig()
	config.Setup.PythonRequirements = "requirements-prod.txt"
	require.NoError(t, config.ValidateAndComplete(rootDir))
	require.Equal(t, reqFile, config.Setup.PythonRequirements)
}

func TestValidateMissingRequirementsFileIsError(t *testing.T) {
	config := DefaultConfig()
	config.Setup.PythonRequirements = "requirements-prod.txt"
	require.Error(t, config.ValidateAndComplete(t.TempDir()))
}

func TestValidatePicksUpDefaultRequirementsFile(t *testing.T) {
	rootDir := t.TempDir()
	reqFile := filepath.Join(rootDir, "requirements.txt")
	require.NoError(t, os.WriteFile(reqFile, []byte("pikepdf==8.0.0"), 0o644))

	config := DefaultConfig()
	require.NoError(t, config.ValidateAndComplete(rootDir))
	require.Equal(t, reqFile, config.Setup.PythonRequirements)
}
