// pkg/directive/types.go
package directive

import (
	"fmt"
	"strings"
)

// Format selects how directives are written
type Format string

const (
	// FormatCgo writes a Go source file carrying #cgo directives
	FormatCgo Format = "cgo"
	// FormatEnv writes shell exports of CGO_CFLAGS and CGO_LDFLAGS
	FormatEnv Format = "env"
	// FormatYAML writes a YAML report of the resolution
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCgo, FormatEnv, FormatYAML:
		return f, nil
	case "":
		return FormatCgo, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want cgo, env or yaml)", s)
	}
}

// Directives is what the build needs once the library has been found
type Directives struct {
	LinkSearch string   `yaml:"link_search"`           // Directory for -L
	LinkLib    string   `yaml:"link_lib"`              // Name for -l
	Artifact   string   `yaml:"artifact,omitempty"`    // File that confirmed LinkSearch
	Static     bool     `yaml:"static"`                // Artifact is an archive or import library
	IncludeDir string   `yaml:"include_dir,omitempty"` // Directory for -I, when headers were located
	Bindings   string   `yaml:"bindings,omitempty"`    // Generated bindings file
	Tier       string   `yaml:"tier,omitempty"`        // Search tier that found LinkSearch
	WatchEnv   []string `yaml:"watch_env,omitempty"`   // Variables whose change invalidates the result
	WatchFiles []string `yaml:"watch_files,omitempty"` // Files whose change invalidates the result
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
}

// Flags returns the compiler and linker flags for d
func (d *Directives) Flags() CompilerFlags {
	var flags CompilerFlags
	if d.IncludeDir != "" {
		flags.IncludeFlags = append(flags.IncludeFlags, "-I"+d.IncludeDir)
	}
	if d.LinkSearch != "" {
		flags.LibraryFlags = append(flags.LibraryFlags, "-L"+d.LinkSearch)
	}
	if d.LinkLib != "" {
		flags.LinkFlags = append(flags.LinkFlags, "-l"+d.LinkLib)
	}
	return flags
}

// CFlags joins the compile flags
func (f CompilerFlags) CFlags() string {
	return strings.Join(f.IncludeFlags, " ")
}

// LDFlags joins the link flags, search paths first
func (f CompilerFlags) LDFlags() string {
	all := make([]string, 0, len(f.LibraryFlags)+len(f.LinkFlags))
	all = append(all, f.LibraryFlags...)
	all = append(all, f.LinkFlags...)
	return strings.Join(all, " ")
}
