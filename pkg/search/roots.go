// pkg/search/roots.go
package search

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultBases are the system-wide locations scanned for install roots
var DefaultBases = []string{"/opt", "/usr/local"}

// RootScanner produces plausible install roots in probe order
type RootScanner interface {
	Scan() []string
}

// Scanner finds install roots by name under a fixed list of base directories
type Scanner struct {
	FS        afero.Fs
	Bases     []string
	Fragments []string // Matched case-insensitively against child names
}

var _ RootScanner = (*Scanner)(nil)

// NewScanner creates a scanner over bases for children whose name contains
// any of fragments
func NewScanner(fs afero.Fs, bases, fragments []string) *Scanner {
	return &Scanner{
		FS:        fs,
		Bases:     bases,
		Fragments: fragments,
	}
}

// Scan lists every child directory of every base whose lower-cased name
// contains a fragment. Bases that are missing or unreadable are skipped.
func (s *Scanner) Scan() []string {
	var roots []string
	for _, base := range s.Bases {
		for _, child := range childDirs(s.FS, base) {
			if s.matches(filepath.Base(child)) {
				roots = append(roots, child)
			}
		}
	}
	return roots
}

func (s *Scanner) matches(name string) bool {
	name = strings.ToLower(name)
	for _, frag := range s.Fragments {
		if frag != "" && strings.Contains(name, strings.ToLower(frag)) {
			return true
		}
	}
	return false
}
