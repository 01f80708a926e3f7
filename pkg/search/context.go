// pkg/search/context.go
package search

import (
	"os"
	"strings"

	"github.com/arc-language/nativelocate/pkg/platform"
)

// Environ is a read-only snapshot of environment variables
type Environ map[string]string

// EnvironFromOS snapshots the process environment
func EnvironFromOS() Environ {
	return ParseEnviron(os.Environ())
}

// ParseEnviron builds a snapshot from KEY=VALUE pairs
func ParseEnviron(kvs []string) Environ {
	env := make(Environ, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// Lookup returns the value of key. A variable set to the empty string is
// reported as unset.
func (e Environ) Lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	v, ok := e[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Context is the immutable input of one resolution
type Context struct {
	OS      platform.OS
	Env     Environ
	DirVar  string // Direct override, tested as-is
	RootVar string // Root override, expanded via subdirectories
}

// WithVars returns a copy of c resolving against different override variables
func (c Context) WithVars(dirVar, rootVar string) Context {
	c.DirVar = dirVar
	c.RootVar = rootVar
	return c
}
