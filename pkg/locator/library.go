// pkg/locator/library.go
package locator

import (
	"github.com/arc-language/nativelocate/pkg/artifact"
	"github.com/arc-language/nativelocate/pkg/search"
)

// LibraryContext returns sc bound to the library override variables
func (l *Locator) LibraryContext(sc search.Context) search.Context {
	return sc.WithVars(l.Product.LibDirVar(), l.Product.DirVar())
}

// LibraryPredicate accepts directories holding the link artifact for sc.OS
func (l *Locator) LibraryPredicate(sc search.Context) search.Predicate {
	fs, target, name := l.fs(), sc.OS, l.Product.Library
	return func(dir string) bool {
		return artifact.LibraryExists(fs, target, name, dir)
	}
}

// Library resolves the library directory. When the layered search fails and
// headerDir is known, the header directory's parent is expanded as one more
// root, for installs keeping include/ and lib/ side by side.
func (l *Locator) Library(sc search.Context, headerDir string) (search.Match, error) {
	sc = l.LibraryContext(sc)
	pred := l.LibraryPredicate(sc)

	if m, ok := l.Resolver.Resolve(sc, l.Product.LibSubdirs, pred); ok {
		return m, nil
	}

	if headerDir != "" {
		root := siblingRoot(headerDir)
		l.Resolver.Log.Debug().Str("root", root).Msg("trying header sibling directories")
		if dir, ok := l.Resolver.FirstMatch([]string{root}, l.Product.LibSubdirs, pred); ok {
			return search.Match{Dir: dir, Tier: search.TierSibling}, nil
		}
	}

	return search.Match{}, &NotFoundError{
		Product: l.Product.Name,
		What:    "libraries",
		Vars:    []string{sc.DirVar, sc.RootVar},
	}
}

// FindLibrary returns which artifact satisfied the predicate in dir
func (l *Locator) FindLibrary(sc search.Context, dir string) *artifact.Library {
	return artifact.FindLibrary(l.fs(), sc.OS, l.Product.Library, dir)
}
