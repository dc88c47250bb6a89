package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test. It stands in for
// t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.MaxErrors)
	assert.False(t, cfg.DoubleQuotedStrings)
	assert.False(t, cfg.Comments)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlfront.yaml")
	content := "max_errors: 5\ndouble_quoted_strings: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxErrors)
	assert.True(t, cfg.DoubleQuotedStrings)
	assert.False(t, cfg.Comments, "unset keys keep defaults")
}

func TestLoad_ConfigFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_FindsLocalConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := "verbose: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqlfront.yml"), []byte(content), 0600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlfront.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_errors: 5\n"), 0600))
	t.Setenv("SQLFRONT_MAX_ERRORS", "9")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.MaxErrors)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SQLFRONT_MAX_ERRORS", "9")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-errors", 0, "")
	flags.Bool("double-quoted-strings", false, "")
	require.NoError(t, flags.Parse([]string{"--max-errors=3"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxErrors, "explicitly set flag wins")
	assert.False(t, cfg.DoubleQuotedStrings, "unchanged flag does not override")
}
