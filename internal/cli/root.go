// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/nativelocate"
	"github.com/arc-language/nativelocate/pkg/core"
	"github.com/arc-language/nativelocate/pkg/logging"
)

var (
	cfgFile   string
	targetOS  string
	debug     bool
	verbosity int
	config    *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nativelocate",
	Short: "Locate pre-built native libraries for cgo builds",
	Long: `nativelocate - build-time locator for pre-built native libraries

Finds the library and header directories of a proprietary native product
(AMD uProf by default) and emits the cgo flags needed to link against it.

Search order, first match wins:
  1. <PREFIX>_LIB_DIR / <PREFIX>_INCLUDE_DIR, used as-is
  2. <PREFIX>_DIR, expanded via lib, lib64, lib/x64 (or include, inc)
  3. product-named directories under /opt and /usr/local`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./nativelocate.yaml or $XDG_CONFIG_HOME/nativelocate/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&targetOS, "target-os", "", "target operating system (default is $GOOS, then the host)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	// Add commands
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(libCmd)
	rootCmd.AddCommand(includeCmd)
	rootCmd.AddCommand(candidatesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
	level := verbosity
	if config.Debug && level < 2 {
		level = 2
	}
	logging.SetupLogger(level, os.Stderr)
}

// newLocator builds the locator shared by every search command
func newLocator() (*nativelocate.Locator, error) {
	logger := logging.GetLogger("search")
	return nativelocate.NewLocator(config, &nativelocate.Options{
		Target:     targetOS,
		Logger:     &logger,
		ConfigPath: configPath(),
	})
}

// configPath is the config file actually read, if any
func configPath() string {
	path := cfgFile
	if path == "" {
		path = core.DefaultConfigPath()
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
