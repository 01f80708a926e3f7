// internal/cli/probe.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var probeVerbose bool

var libCmd = &cobra.Command{
	Use:   "lib",
	Short: "Print the resolved library directory",
	Args:  cobra.NoArgs,
	RunE:  runLib,
}

var includeCmd = &cobra.Command{
	Use:   "include",
	Short: "Print the resolved header directory",
	Args:  cobra.NoArgs,
	RunE:  runInclude,
}

func init() {
	libCmd.Flags().BoolVar(&probeVerbose, "tier", false, "also print which search tier matched")
	includeCmd.Flags().BoolVar(&probeVerbose, "tier", false, "also print which search tier matched")
}

func runLib(cmd *cobra.Command, args []string) error {
	loc, err := newLocator()
	if err != nil {
		return err
	}

	// The sibling fallback needs headers located in the same run, which
	// only happens when bindings are generated.
	var headerDir string
	if config.Bindings.Enabled {
		m, err := loc.LocateHeaders()
		if err != nil {
			return err
		}
		headerDir = m.Dir
	}

	m, err := loc.LocateLibrary(headerDir)
	if err != nil {
		return err
	}
	if probeVerbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.Dir, m.Tier)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), m.Dir)
	return nil
}

func runInclude(cmd *cobra.Command, args []string) error {
	loc, err := newLocator()
	if err != nil {
		return err
	}

	m, err := loc.LocateHeaders()
	if err != nil {
		return err
	}
	if probeVerbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.Dir, m.Tier)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), m.Dir)
	return nil
}
