// pkg/locator/locator.go
package locator

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arc-language/nativelocate/pkg/core"
	"github.com/arc-language/nativelocate/pkg/search"
)

// Locator binds the layered search to one product's naming conventions
type Locator struct {
	Resolver *search.Resolver
	Product  core.Product
}

var _ core.ArtifactLocator = (*Locator)(nil)

// New creates a locator for product probing fs
func New(resolver *search.Resolver, product core.Product) *Locator {
	return &Locator{
		Resolver: resolver,
		Product:  product,
	}
}

func (l *Locator) fs() afero.Fs {
	return l.Resolver.FS
}

// siblingRoot is the install root implied by a header directory
func siblingRoot(headerDir string) string {
	return filepath.Dir(filepath.Clean(headerDir))
}
