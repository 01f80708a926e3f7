// pkg/artifact/constants.go
package artifact

import (
	"path/filepath"

	"github.com/arc-language/nativelocate/pkg/platform"
)

// DefaultLayout returns the subdirectories searched under an install root.
// Order matters: candidates are probed in exactly this order.
func DefaultLayout() Layout {
	return Layout{
		Libraries: []string{
			"lib",
			"lib64",
			filepath.Join("lib", "x64"),
		},
		Includes: []string{
			"include",
			"inc",
		},
	}
}

// LibraryExtensions returns file extensions that satisfy a link on the target
func LibraryExtensions(target platform.OS) []string {
	switch target {
	case platform.Windows:
		return []string{".lib", ".dll"}
	case platform.MacOS:
		return []string{".dylib"}
	default: // linux, bsd, etc.
		return []string{".so", ".a"}
	}
}

// LibraryFileNames returns the exact file names that confirm a library
// directory on the target, in the order they are checked
func LibraryFileNames(target platform.OS, name string) []string {
	exts := LibraryExtensions(target)
	names := make([]string, 0, len(exts))
	for _, ext := range exts {
		names = append(names, libraryFileName(target, name, ext))
	}
	return names
}

func libraryFileName(target platform.OS, name, ext string) string {
	if target == platform.Windows {
		return name + ext
	}
	return "lib" + name + ext
}

func isStatic(ext string) bool {
	return ext == ".a" || ext == ".lib"
}
