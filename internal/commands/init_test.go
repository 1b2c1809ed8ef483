package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesConfig(t *testing.T) {
	home := setupEnv(t, "http://localhost:5000")
	path := filepath.Join(home, "custom", "tally.yaml")

	out, err := runTally(t, "init", "--config", path, "--server", "https://ledger.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)
	assert.Contains(t, contents, "url: https://ledger.example.com")
	assert.Contains(t, contents, "per_page: 50")
	assert.Contains(t, contents, "style: auto")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	home := setupEnv(t, "http://localhost:5000")
	path := filepath.Join(home, "tally.yaml")

	_, err := runTally(t, "init", "--config", path)
	require.NoError(t, err)

	_, err = runTally(t, "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
