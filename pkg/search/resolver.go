// pkg/search/resolver.go
package search

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Predicate reports whether a candidate directory holds the wanted artifact
type Predicate func(dir string) bool

// Tier identifies which layer of the search produced a match
type Tier int

const (
	TierNone Tier = iota
	TierDirOverride
	TierRootOverride
	TierWellKnown
	TierSibling
)

func (t Tier) String() string {
	switch t {
	case TierDirOverride:
		return "dir-override"
	case TierRootOverride:
		return "root-override"
	case TierWellKnown:
		return "well-known"
	case TierSibling:
		return "sibling"
	default:
		return "none"
	}
}

// Match is a resolved directory and the tier that found it
type Match struct {
	Dir  string
	Tier Tier
}

// Resolver runs the layered search. It holds no state between calls.
type Resolver struct {
	FS    afero.Fs
	Roots RootScanner
	Log   zerolog.Logger
}

// NewResolver creates a resolver over fs using roots for the last tier
func NewResolver(fs afero.Fs, roots RootScanner, log zerolog.Logger) *Resolver {
	return &Resolver{
		FS:    fs,
		Roots: roots,
		Log:   log,
	}
}

// Resolve returns the first directory accepted by pred, trying in order:
//  1. the direct override variable, tested as-is
//  2. the root override variable, expanded via subdirs
//  3. every well-known root, expanded via subdirs
func (r *Resolver) Resolve(sc Context, subdirs []string, pred Predicate) (Match, bool) {
	if dir, ok := sc.Env.Lookup(sc.DirVar); ok {
		r.Log.Trace().Str("var", sc.DirVar).Str("candidate", dir).Msg("probing direct override")
		if pred(dir) {
			return r.found(dir, TierDirOverride), true
		}
		r.Log.Debug().Str("var", sc.DirVar).Str("dir", dir).Msg("direct override does not contain the artifact")
	}

	if root, ok := sc.Env.Lookup(sc.RootVar); ok {
		if dir, ok := r.FirstMatch([]string{root}, subdirs, pred); ok {
			return r.found(dir, TierRootOverride), true
		}
		r.Log.Debug().Str("var", sc.RootVar).Str("root", root).Msg("root override has no matching subdirectory")
	}

	if r.Roots != nil {
		roots := r.Roots.Scan()
		r.Log.Debug().Strs("roots", roots).Msg("scanned well-known roots")
		if dir, ok := r.FirstMatch(roots, subdirs, pred); ok {
			return r.found(dir, TierWellKnown), true
		}
	}

	return Match{}, false
}

// FirstMatch expands each root in order and returns the first candidate
// accepted by pred
func (r *Resolver) FirstMatch(roots, subdirs []string, pred Predicate) (string, bool) {
	for _, root := range roots {
		for _, candidate := range Expand(r.FS, root, subdirs) {
			r.Log.Trace().Str("root", root).Str("candidate", candidate).Msg("probing")
			if pred(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// Candidates lists every directory Resolve would probe, in order, without
// testing any of them
func (r *Resolver) Candidates(sc Context, subdirs []string) []Match {
	var out []Match
	if dir, ok := sc.Env.Lookup(sc.DirVar); ok {
		out = append(out, Match{Dir: dir, Tier: TierDirOverride})
	}
	if root, ok := sc.Env.Lookup(sc.RootVar); ok {
		for _, c := range Expand(r.FS, root, subdirs) {
			out = append(out, Match{Dir: c, Tier: TierRootOverride})
		}
	}
	if r.Roots != nil {
		for _, root := range r.Roots.Scan() {
			for _, c := range Expand(r.FS, root, subdirs) {
				out = append(out, Match{Dir: c, Tier: TierWellKnown})
			}
		}
	}
	return out
}

func (r *Resolver) found(dir string, tier Tier) Match {
	r.Log.Debug().Str("dir", dir).Stringer("tier", tier).Msg("resolved")
	return Match{Dir: dir, Tier: tier}
}
