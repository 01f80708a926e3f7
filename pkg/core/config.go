// pkg/core/config.go
package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigEnvVar points at a config file, overriding the default lookup
const ConfigEnvVar = "NATIVELOCATE_CONFIG"

// DefaultSkipVar disables the search entirely when set (documentation-only builds)
const DefaultSkipVar = "NATIVELOCATE_SKIP"

// localConfigNames are looked up in the working directory before the user config
var localConfigNames = []string{"nativelocate.yaml", "nativelocate.yml", "nativelocate.toml"}

// ErrInvalidConfig indicates a configuration that cannot drive a search
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds nativelocate configuration
type Config struct {
	Product  Product        `yaml:"product" toml:"product"`
	Bindings BindingsConfig `yaml:"bindings" toml:"bindings"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	SkipVar  string         `yaml:"skip_var" toml:"skip_var"`
	Debug    bool           `yaml:"debug" toml:"debug"`
}

// BindingsConfig controls header translation
type BindingsConfig struct {
	Enabled bool     `yaml:"enabled" toml:"enabled"`
	Input   string   `yaml:"input" toml:"input"`     // File handed to the translator
	Output  string   `yaml:"output" toml:"output"`   // Where the translated bindings are written
	Command []string `yaml:"command" toml:"command"` // Translator argv prefix
}

// OutputConfig controls how directives are emitted
type OutputConfig struct {
	Format  string `yaml:"format" toml:"format"`   // cgo, env or yaml
	Package string `yaml:"package" toml:"package"` // Package clause of generated cgo files
	Path    string `yaml:"path" toml:"path"`       // Empty means stdout
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Product: DefaultProduct(),
		Bindings: BindingsConfig{
			Enabled: false,
			Input:   "wrapper.go",
			Output:  "bindings.go",
			Command: []string{"go", "tool", "cgo", "-godefs", "--"},
		},
		Output: OutputConfig{
			Format:  "cgo",
			Package: "uprof",
		},
		SkipVar: DefaultSkipVar,
	}
}

// Validate checks that the product can be searched for
func (c *Config) Validate() error {
	var missing []string
	if c.Product.EnvPrefix == "" {
		missing = append(missing, "product.env_prefix")
	}
	if c.Product.Library == "" {
		missing = append(missing, "product.library")
	}
	if len(c.Product.LibSubdirs) == 0 {
		missing = append(missing, "product.lib_subdirs")
	}
	if c.Bindings.Enabled {
		if c.Product.Header == "" {
			missing = append(missing, "product.header")
		}
		if len(c.Product.IncludeSubdirs) == 0 {
			missing = append(missing, "product.include_subdirs")
		}
		if len(c.Bindings.Command) == 0 {
			missing = append(missing, "bindings.command")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}

// DefaultConfigPath returns the config file used when none is given
func DefaultConfigPath() string {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path
	}
	for _, name := range localConfigNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return filepath.Join(xdg.ConfigHome, "nativelocate", "config.yaml")
}

// LoadConfig loads configuration from file. Fields absent from the file keep
// their defaults; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file, as TOML when path ends in .toml
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
