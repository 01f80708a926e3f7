// pkg/artifact/library.go
package artifact

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arc-language/nativelocate/pkg/platform"
)

// LibraryExists reports whether dir holds the library artifact for the target.
// On Windows either the import library or the DLL suffices.
func LibraryExists(fs afero.Fs, target platform.OS, name, dir string) bool {
	return FindLibrary(fs, target, name, dir) != nil
}

// FindLibrary returns the first artifact for name found directly in dir
func FindLibrary(fs afero.Fs, target platform.OS, name, dir string) *Library {
	for _, ext := range LibraryExtensions(target) {
		fullPath := filepath.Join(dir, libraryFileName(target, name, ext))
		if fileExists(fs, fullPath) {
			return &Library{
				Name:     name,
				Path:     fullPath,
				Type:     ext,
				IsStatic: isStatic(ext),
			}
		}
	}
	return nil
}

// HeaderExists reports whether dir holds header by exact name
func HeaderExists(fs afero.Fs, header, dir string) bool {
	return fileExists(fs, filepath.Join(dir, header))
}

func fileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
