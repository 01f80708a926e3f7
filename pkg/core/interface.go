// pkg/core/interface.go
package core

import (
	"context"

	"github.com/arc-language/nativelocate/pkg/search"
)

// ArtifactLocator finds the directories of a product's library and headers
type ArtifactLocator interface {
	// Headers resolves the directory holding the primary header
	Headers(sc search.Context) (search.Match, error)

	// Library resolves the directory holding the link artifact. headerDir, if
	// non-empty, enables a last-resort probe of its sibling directories.
	Library(sc search.Context, headerDir string) (search.Match, error)
}

// Translator turns C headers into Go bindings
type Translator interface {
	// Generate translates input with includeDir on the include path and
	// writes the result to output
	Generate(ctx context.Context, input, includeDir, output string) error
}
