package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd("v1.2.3")

	require.NotNil(t, cmd)
	assert.Equal(t, "pets", cmd.Use)
	assert.Equal(t, "v1.2.3", cmd.Version)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "browse")
	assert.Contains(t, names, "regions")
}

func TestRootConfigFileApplied(t *testing.T) {
	server := newListingServer(t)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("page_size: 2\n"), 0600))

	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "--endpoint", server.URL, "list"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Page 1/2 (3 animals)", "page size comes from the config file")
}

func TestRootInvalidConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: xml\n"), 0600))

	cmd := NewRootCmd("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "list"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output must be table, json, or yaml")
}

func TestBrowseRefusesNonTerminal(t *testing.T) {
	// Test processes never have a TTY on stdout, so browse must refuse.
	server := newListingServer(t)

	_, err := runCommand(t, server.URL, "browse")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
