// pkg/locator/errors.go
package locator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates no candidate directory held the artifact
var ErrNotFound = errors.New("artifact not found")

// NotFoundError reports a failed search with the variables that fix it
type NotFoundError struct {
	Product string   // Human-readable product name
	What    string   // "libraries" or "headers"
	Vars    []string // Override variables the user can set
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not locate %s %s: set %s to the install path",
		e.Product, e.What, strings.Join(e.Vars, " or "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
