// errors.go
package nativelocate

import (
	"errors"
	"fmt"

	"github.com/arc-language/nativelocate/pkg/bindings"
	"github.com/arc-language/nativelocate/pkg/core"
	"github.com/arc-language/nativelocate/pkg/locator"
)

var (
	// ErrArtifactNotFound indicates no directory in the search order held the artifact
	ErrArtifactNotFound = locator.ErrNotFound

	// ErrTranslation indicates the header translator failed after headers were found
	ErrTranslation = bindings.ErrTranslation

	// ErrInvalidConfig indicates the configuration cannot drive a search
	ErrInvalidConfig = core.ErrInvalidConfig
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Product string // Product name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Product != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Product, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the product is not installed where
// the search looked
func IsNotFound(err error) bool {
	return errors.Is(err, ErrArtifactNotFound)
}
