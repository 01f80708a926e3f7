// pkg/directive/emit.go
package directive

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Write emits d in format f
func Write(w io.Writer, f Format, d *Directives, pkg string) error {
	switch f {
	case FormatCgo, "":
		return WriteCgo(w, d, pkg)
	case FormatEnv:
		return WriteEnv(w, d)
	case FormatYAML:
		return WriteReport(w, d)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// WriteCgo writes a Go source file for package pkg whose preamble carries the
// #cgo flags. Dropping it next to the package that imports "C" wires the link.
func WriteCgo(w io.Writer, d *Directives, pkg string) error {
	if pkg == "" {
		return fmt.Errorf("cgo output needs a package name")
	}
	flags := d.Flags()

	var b strings.Builder
	b.WriteString("// Code generated by nativelocate. DO NOT EDIT.\n")
	for _, v := range d.WatchEnv {
		fmt.Fprintf(&b, "// rerun-if-env-changed: %s\n", v)
	}
	for _, f := range d.WatchFiles {
		fmt.Fprintf(&b, "// rerun-if-changed: %s\n", f)
	}
	fmt.Fprintf(&b, "\npackage %s\n\n/*\n", pkg)
	if cflags := flags.CFlags(); cflags != "" {
		fmt.Fprintf(&b, "#cgo CFLAGS: %s\n", cflags)
	}
	if ldflags := flags.LDFlags(); ldflags != "" {
		fmt.Fprintf(&b, "#cgo LDFLAGS: %s\n", ldflags)
	}
	b.WriteString("*/\nimport \"C\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteEnv writes POSIX shell exports for the go tool's cgo variables
func WriteEnv(w io.Writer, d *Directives) error {
	flags := d.Flags()

	var b strings.Builder
	if cflags := flags.CFlags(); cflags != "" {
		fmt.Fprintf(&b, "export CGO_CFLAGS=%s\n", shellQuote(cflags))
	}
	fmt.Fprintf(&b, "export CGO_LDFLAGS=%s\n", shellQuote(flags.LDFlags()))

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteReport writes d as a YAML document
func WriteReport(w io.Writer, d *Directives) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

// shellQuote wraps s in single quotes for POSIX shells
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
