package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "AMD_UPROF_DIR", cfg.Product.DirVar())
	assert.Equal(t, "AMD_UPROF_LIB_DIR", cfg.Product.LibDirVar())
	assert.Equal(t, "AMD_UPROF_INCLUDE_DIR", cfg.Product.IncludeDirVar())
	assert.Equal(t, []string{"AMD_UPROF_DIR", "AMD_UPROF_INCLUDE_DIR", "AMD_UPROF_LIB_DIR"}, cfg.Product.EnvVars())
	assert.Equal(t, []string{"lib", "lib64", filepath.Join("lib", "x64")}, cfg.Product.LibSubdirs)
	assert.Equal(t, []string{"include", "inc"}, cfg.Product.IncludeSubdirs)
	assert.Equal(t, DefaultSkipVar, cfg.SkipVar)
	assert.False(t, cfg.Bindings.Enabled)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Product.Library = ""
	cfg.Product.EnvPrefix = ""
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "product.env_prefix")
	assert.Contains(t, err.Error(), "product.library")

	cfg = DefaultConfig()
	cfg.Product.Header = ""
	require.NoError(t, cfg.Validate(), "header only matters with bindings")
	cfg.Bindings.Enabled = true
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
product:
  name: Acme Tracer
  env_prefix: ACME
  library: acmetrace
  lib_subdirs: [lib64]
bindings:
  enabled: true
output:
  format: env
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Tracer", cfg.Product.Name)
	assert.Equal(t, "ACME_LIB_DIR", cfg.Product.LibDirVar())
	assert.Equal(t, []string{"lib64"}, cfg.Product.LibSubdirs)
	assert.Equal(t, []string{"include", "inc"}, cfg.Product.IncludeSubdirs)
	assert.True(t, cfg.Bindings.Enabled)
	assert.Equal(t, "wrapper.go", cfg.Bindings.Input)
	assert.Equal(t, "env", cfg.Output.Format)
	assert.Equal(t, "uprof", cfg.Output.Package)
}

func TestLoadConfigTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nativelocate.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
debug = true

[product]
library = "other"
name_fragments = ["other"]
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "other", cfg.Product.Library)
	assert.Equal(t, []string{"other"}, cfg.Product.NameFragments)
	assert.Equal(t, "AMD_UPROF", cfg.Product.EnvPrefix)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("product: [unterminated"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := DefaultConfig()
			cfg.Product.Library = "roundtrip"
			cfg.Bindings.Enabled = true

			require.NoError(t, SaveConfig(cfg, path))
			loaded, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestDefaultConfigPathFromEnv(t *testing.T) {
	t.Setenv(ConfigEnvVar, "/etc/custom.yaml")
	assert.Equal(t, "/etc/custom.yaml", DefaultConfigPath())
}
