package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	assert.Equal(t, "gpukit", cmd.Use)

	expected := []string{"init", "install", "uninstall", "status", "version", "completion"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "expected subcommand %q", name)
	}
}

func TestInstallFlags(t *testing.T) {
	cmd := Install()

	for _, name := range []string{"config", "kubeconfig", "verify"} {
		require.NotNil(t, cmd.Flags().Lookup(name), "expected flag %q", name)
	}

	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
}

func TestUninstallFlags(t *testing.T) {
	cmd := Uninstall()

	for _, name := range []string{"config", "kubeconfig", "delete-namespace"} {
		require.NotNil(t, cmd.Flags().Lookup(name), "expected flag %q", name)
	}
}

func TestStatusFlags(t *testing.T) {
	cmd := Status()

	for _, name := range []string{"config", "kubeconfig"} {
		require.NotNil(t, cmd.Flags().Lookup(name), "expected flag %q", name)
	}
}

func TestInitFlags(t *testing.T) {
	cmd := Init()

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "gpukit.yaml", flag.DefValue)
}
