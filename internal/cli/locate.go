// internal/cli/locate.go
package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arc-language/nativelocate/pkg/logging"
)

var (
	locateFormat      string
	locateOut         string
	locatePackage     string
	locateBindings    bool
	locateBindingsOut string
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Locate the library and emit link directives",
	Long: `Locate the native library (and its headers when bindings are requested),
then write the link directives.

Examples:
  nativelocate locate --out zz_uprof_cgo.go --package uprof
  nativelocate locate --format env
  AMD_UPROF_DIR=/opt/AMDuProf_4.2 nativelocate locate --bindings`,
	Args: cobra.NoArgs,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringVar(&locateFormat, "format", "", "output format: cgo, env or yaml")
	locateCmd.Flags().StringVarP(&locateOut, "out", "o", "", "write directives to file instead of stdout")
	locateCmd.Flags().StringVar(&locatePackage, "package", "", "package name for cgo output")
	locateCmd.Flags().BoolVar(&locateBindings, "bindings", false, "locate headers and generate bindings")
	locateCmd.Flags().StringVar(&locateBindingsOut, "bindings-out", "", "where to write generated bindings")
}

func runLocate(cmd *cobra.Command, args []string) error {
	log := logging.GetLogger("locate")

	if locateFormat != "" {
		config.Output.Format = locateFormat
	}
	if locatePackage != "" {
		config.Output.Package = locatePackage
	}
	if locateOut != "" {
		config.Output.Path = locateOut
	}
	if locateBindings {
		config.Bindings.Enabled = true
	}
	if locateBindingsOut != "" {
		config.Bindings.Output = locateBindingsOut
	}

	loc, err := newLocator()
	if err != nil {
		return err
	}
	if _, err := loc.Format(); err != nil {
		return err
	}

	res, err := loc.Run(cmd.Context())
	if err != nil {
		return err
	}
	if res.Skipped {
		log.Info().Msg("nothing to do")
		return nil
	}
	log.Info().Str("library", res.Library.Dir).Stringer("tier", res.Library.Tier).Msg("located")

	path := config.Output.Path
	if path == "" {
		return loc.Emit(cmd.OutOrStdout(), res)
	}

	// Render first so a failed emit leaves the previous file untouched.
	var buf bytes.Buffer
	if err := loc.Emit(&buf, res); err != nil {
		return err
	}
	return writeOutput(path, buf.Bytes())
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
