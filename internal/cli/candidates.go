// internal/cli/candidates.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/nativelocate/pkg/search"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List every directory the search would probe",
	Long: `List the library and header candidate directories in probe order,
with the tier each belongs to. Nothing is tested; use this to see why a
search did or did not find an install.`,
	Args: cobra.NoArgs,
	RunE: runCandidates,
}

func runCandidates(cmd *cobra.Command, args []string) error {
	loc, err := newLocator()
	if err != nil {
		return err
	}

	libs, headers := loc.Candidates()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Platform: %s\n", loc.Platform())
	fmt.Fprintf(out, "Library files: %s\n\n", strings.Join(loc.LibraryFiles(), ", "))
	printCandidates(out, "Library", libs)
	fmt.Fprintln(out)
	printCandidates(out, "Headers", headers)
	return nil
}

func printCandidates(w io.Writer, title string, matches []search.Match) {
	fmt.Fprintf(w, "%s candidates:\n", title)
	if len(matches) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, m := range matches {
		fmt.Fprintf(w, "  %-13s %s\n", m.Tier, m.Dir)
	}
}
