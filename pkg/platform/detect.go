// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// OS is the target operating system family used to pick artifact names
type OS string

const (
	// Windows links against <name>.lib or <name>.dll
	Windows OS = "windows"
	// MacOS links against lib<name>.dylib
	MacOS OS = "macos"
	// Unix is the default family: lib<name>.so or lib<name>.a
	Unix OS = "unix"
)

// Platform represents the target the build is configured for
type Platform struct {
	OS     OS     // windows, macos, unix
	Target string // Raw target name as given (e.g. linux, darwin, freebsd)
	Arch   string // amd64, arm64, 386, arm
}

// Parse maps a target OS name to its artifact family.
// Unknown names fall through to Unix.
func Parse(target string) OS {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "windows":
		return Windows
	case "macos", "darwin":
		return MacOS
	default:
		return Unix
	}
}

// Detect determines the target platform from an environment lookup.
// GOOS and GOARCH name the cross-compilation target; when they are unset the
// host values are used.
func Detect(lookup func(string) (string, bool)) *Platform {
	target := lookupOr(lookup, "GOOS", runtime.GOOS)
	return &Platform{
		OS:     Parse(target),
		Target: target,
		Arch:   lookupOr(lookup, "GOARCH", runtime.GOARCH),
	}
}

// ForTarget builds a Platform for an explicit target name. The arch still
// comes from GOARCH, then the host.
func ForTarget(target string, lookup func(string) (string, bool)) *Platform {
	return &Platform{
		OS:     Parse(target),
		Target: target,
		Arch:   lookupOr(lookup, "GOARCH", runtime.GOARCH),
	}
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (%s)", p.Target, p.Arch, p.OS)
}
