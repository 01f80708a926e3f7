// pkg/bindings/translator.go
package bindings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arc-language/nativelocate/pkg/core"
	"github.com/arc-language/nativelocate/pkg/platform"
)

// ErrTranslation indicates the header translator failed
var ErrTranslation = errors.New("header translation failed")

// DefaultCommand translates a Go file with a C preamble into plain Go definitions
var DefaultCommand = []string{"go", "tool", "cgo", "-godefs", "--"}

// Translator runs an external header-to-Go translator
type Translator struct {
	Command []string // argv prefix; -I<include> and the input are appended
	Log     zerolog.Logger
}

var _ core.Translator = (*Translator)(nil)

// NewTranslator creates a translator running command
func NewTranslator(command []string, log zerolog.Logger) *Translator {
	if len(command) == 0 {
		command = DefaultCommand
	}
	return &Translator{
		Command: command,
		Log:     log,
	}
}

// Args returns the full argv for translating input against includeDir
func (t *Translator) Args(input, includeDir string) []string {
	args := make([]string, 0, len(t.Command)+2)
	args = append(args, t.Command...)
	args = append(args, "-I"+includeDir, input)
	return args
}

// Generate runs the translator and writes its standard output to output.
// Nothing is written when the translator fails.
func (t *Translator) Generate(ctx context.Context, input, includeDir, output string) error {
	args := t.Args(input, includeDir)
	if !platform.CommandExists(args[0]) {
		return fmt.Errorf("%w: translator %q not found in PATH", ErrTranslation, args[0])
	}

	t.Log.Debug().Strs("args", args).Msg("running header translator")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%w: %v", ErrTranslation, err)
		}
		return fmt.Errorf("%w: %v: %s", ErrTranslation, err, msg)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("creating bindings directory: %w", err)
	}
	if err := os.WriteFile(output, stdout.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing bindings: %w", err)
	}

	t.Log.Info().Str("output", output).Int("bytes", stdout.Len()).Msg("wrote bindings")
	return nil
}
