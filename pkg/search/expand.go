// pkg/search/expand.go
package search

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Expand returns the candidate directories for root: root/<sub> for every
// subdir in declaration order, then <child>/<sub> for every immediate child
// directory of root. Children come in the order the filesystem reports them.
// A root that cannot be listed contributes only its direct candidates.
func Expand(fs afero.Fs, root string, subdirs []string) []string {
	candidates := make([]string, 0, len(subdirs))
	for _, sub := range subdirs {
		candidates = append(candidates, filepath.Join(root, sub))
	}

	for _, child := range childDirs(fs, root) {
		for _, sub := range subdirs {
			candidates = append(candidates, filepath.Join(child, sub))
		}
	}
	return candidates
}

// childDirs lists the immediate subdirectories of dir, following symlinks
func childDirs(fs afero.Fs, dir string) []string {
	f, err := fs.Open(dir)
	if err != nil {
		return nil
	}
	defer f.Close()

	// A listing cut short still yields the names read so far.
	names, _ := f.Readdirnames(-1)

	var dirs []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := fs.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, path)
	}
	return dirs
}
