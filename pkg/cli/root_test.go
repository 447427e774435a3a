package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd, err := NewRootCommand()
	require.NoError(t, err)

	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	require.Contains(t, names, "setup")
	require.Contains(t, names, "compress")
	require.Contains(t, names, "server")
	require.Contains(t, names, "doctor")
}

func TestServerCommandRequiresPort(t *testing.T) {
	t.Setenv("PORT", "")

	cmd, err := NewRootCommand()
	require.NoError(t, err)
	cmd.SetArgs([]string{"server"})

	err = cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "PORT")
}
