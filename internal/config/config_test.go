package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlang/weft/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Templates.Dir)

	require.NoError(t, NewConfigValidator().Validate(cfg))
}

func TestLoaderLoad(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
templates:
  dir: /srv/weft/templates
`)

	loader := NewConfigLoader(NewConfigValidator())
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/srv/weft/templates", cfg.Templates.Dir)
}

func TestLoaderEnvExpansion(t *testing.T) {
	t.Setenv("WEFT_TEST_TPL_DIR", "/tmp/templates")

	path := writeConfig(t, `
log:
  level: info
  format: text
templates:
  dir: ${WEFT_TEST_TPL_DIR}
`)

	loader := NewConfigLoader(NewConfigValidator())
	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/templates", cfg.Templates.Dir)
}

func TestLoaderUnsetEnvExpandsEmpty(t *testing.T) {
	path := writeConfig(t, `
log:
  level: info
  format: text
templates:
  dir: ${WEFT_TEST_UNSET_VAR}
`)

	loader := NewConfigLoader(NewConfigValidator())
	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Templates.Dir)
}

func TestExpandDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("WEFT_TEST_BASE", "/srv/weft")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"absolute path unchanged", "/srv/templates", "/srv/templates"},
		{"tilde alone", "~", home},
		{"tilde prefix", "~/templates", filepath.Join(home, "templates")},
		{"env reference", "${WEFT_TEST_BASE}/templates", "/srv/weft/templates"},
		{"unset env stays empty", "${WEFT_TEST_UNSET_VAR}", ""},
		{"cleans redundant segments", "/srv//weft/./templates", "/srv/weft/templates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandDir(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewConfigLoader(NewConfigValidator())

	_, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.CONFIG_LOAD_FAILED))
}

func TestLoaderValidationFailure(t *testing.T) {
	path := writeConfig(t, `
log:
  level: loud
  format: text
`)

	loader := NewConfigLoader(NewConfigValidator())
	_, err := loader.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.CONFIG_VALIDATION_FAILED))
}

func TestLoadWithDefaults(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		loader := NewConfigLoader(NewConfigValidator())
		cfg, err := loader.LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		path := writeConfig(t, `
log:
  level: warn
  format: text
`)
		loader := NewConfigLoader(NewConfigValidator())
		cfg, err := loader.LoadWithDefaults(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Log.Level)
	})
}

func TestValidatorNilConfig(t *testing.T) {
	err := NewConfigValidator().Validate(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.CONFIG_VALIDATION_FAILED))
}
