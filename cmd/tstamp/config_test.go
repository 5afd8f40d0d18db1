package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cli-helpers/cli-helpers-go/errors"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tstamp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "output: json\nverbose: 3\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 3, cfg.Verbose)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Zero(t, cfg)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "output: [unclosed\n")

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, exitCode(errors.WrapLogger(fmt.Errorf("setup failed"))))
	assert.Equal(t, 1, exitCode(errors.NewInvalidTimestamp("garbage")))
	assert.Equal(t, 1, exitCode(fmt.Errorf("plain error")))
}
