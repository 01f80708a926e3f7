// pkg/locator/headers.go
package locator

import (
	"github.com/arc-language/nativelocate/pkg/artifact"
	"github.com/arc-language/nativelocate/pkg/search"
)

// HeaderContext returns sc bound to the header override variables
func (l *Locator) HeaderContext(sc search.Context) search.Context {
	return sc.WithVars(l.Product.IncludeDirVar(), l.Product.DirVar())
}

// HeaderPredicate accepts directories holding the primary header
func (l *Locator) HeaderPredicate() search.Predicate {
	fs, header := l.fs(), l.Product.Header
	return func(dir string) bool {
		return artifact.HeaderExists(fs, header, dir)
	}
}

// Headers resolves the directory holding the product's primary header
func (l *Locator) Headers(sc search.Context) (search.Match, error) {
	sc = l.HeaderContext(sc)

	if m, ok := l.Resolver.Resolve(sc, l.Product.IncludeSubdirs, l.HeaderPredicate()); ok {
		return m, nil
	}

	return search.Match{}, &NotFoundError{
		Product: l.Product.Name,
		What:    "headers",
		Vars:    []string{sc.DirVar, sc.RootVar},
	}
}
