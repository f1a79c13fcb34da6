package params

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOverrideFileEmptyPath(t *testing.T) {
	ov, err := LoadOverrideFile("")
	require.NoError(t, err)
	require.Nil(t, ov)
}

func TestLoadOverrideFileParsesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Alpha": 10, "Beta": -5}`), 0644))

	ov, err := LoadOverrideFile(path)
	require.NoError(t, err)
	require.Equal(t, 10.0, ov["Alpha"])
	require.Equal(t, -5.0, ov["Beta"])
}

func TestLoadOverrideFileMissingFile(t *testing.T) {
	_, err := LoadOverrideFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "unreadable-override", cfgErr.Kind)
}

func TestLoadOverrideFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := LoadOverrideFile(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "unreadable-override", cfgErr.Kind)
}
