// nativelocate.go
package nativelocate

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arc-language/nativelocate/pkg/artifact"
	"github.com/arc-language/nativelocate/pkg/bindings"
	"github.com/arc-language/nativelocate/pkg/core"
	"github.com/arc-language/nativelocate/pkg/directive"
	"github.com/arc-language/nativelocate/pkg/locator"
	"github.com/arc-language/nativelocate/pkg/platform"
	"github.com/arc-language/nativelocate/pkg/search"
)

// Re-export types for convenience
type (
	Config     = core.Config
	Product    = core.Product
	Match      = search.Match
	Environ    = search.Environ
	Directives = directive.Directives
)

// DefaultConfig returns a configuration locating AMD uProf
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Options supplies the inputs of one run. Zero fields take host defaults.
type Options struct {
	FS         afero.Fs        // Defaults to the OS filesystem
	Env        search.Environ  // Defaults to a snapshot of the process environment
	Target     string          // Target OS name; defaults to GOOS from Env, then the host
	Logger     *zerolog.Logger // Defaults to a disabled logger
	Locator    core.ArtifactLocator
	Translator core.Translator
	ConfigPath string // Reported as a watched file when set
}

// Result is the outcome of a successful run
type Result struct {
	Skipped    bool // The skip variable was set; nothing was searched
	Platform   *platform.Platform
	Library    search.Match
	Headers    *search.Match // Set only when bindings are enabled
	Directives *directive.Directives
}

// Locator drives the library and header search for one build
type Locator struct {
	config     *core.Config
	env        search.Environ
	platform   *platform.Platform
	artifacts  core.ArtifactLocator
	resolver   *search.Resolver
	translator core.Translator
	configPath string
	log        zerolog.Logger
}

// NewLocator creates a locator for cfg
func NewLocator(cfg *core.Config, opts *Options) (*Locator, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Options{}
	}

	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	env := opts.Env
	if env == nil {
		env = search.EnvironFromOS()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	var plat *platform.Platform
	if opts.Target != "" {
		plat = platform.ForTarget(opts.Target, env.Lookup)
	} else {
		plat = platform.Detect(env.Lookup)
	}

	scanner := search.NewScanner(fs, cfg.Product.WellKnownBases, cfg.Product.NameFragments)
	resolver := search.NewResolver(fs, scanner, logger)

	artifacts := opts.Locator
	if artifacts == nil {
		artifacts = locator.New(resolver, cfg.Product)
	}
	translator := opts.Translator
	if translator == nil {
		translator = bindings.NewTranslator(cfg.Bindings.Command, logger)
	}

	return &Locator{
		config:     cfg,
		env:        env,
		platform:   plat,
		artifacts:  artifacts,
		resolver:   resolver,
		translator: translator,
		configPath: opts.ConfigPath,
		log:        logger,
	}, nil
}

// Platform returns the target platform of this run
func (l *Locator) Platform() *platform.Platform {
	return l.platform
}

// Context returns the search context for this run. The override variables
// are bound by the library and header searches.
func (l *Locator) Context() search.Context {
	return search.Context{
		OS:  l.platform.OS,
		Env: l.env,
	}
}

// Skipped reports whether the skip variable disables the search
func (l *Locator) Skipped() bool {
	_, ok := l.env.Lookup(l.config.SkipVar)
	return ok
}

// LocateLibrary resolves the library directory. headerDir may be empty.
func (l *Locator) LocateLibrary(headerDir string) (search.Match, error) {
	m, err := l.artifacts.Library(l.Context(), headerDir)
	if err != nil {
		return m, &Error{Op: "locate libraries", Product: l.config.Product.Name, Err: err}
	}
	return m, nil
}

// LocateHeaders resolves the header directory
func (l *Locator) LocateHeaders() (search.Match, error) {
	m, err := l.artifacts.Headers(l.Context())
	if err != nil {
		return m, &Error{Op: "locate headers", Product: l.config.Product.Name, Err: err}
	}
	return m, nil
}

// Run locates headers (when bindings are enabled) and then the library,
// generates bindings, and returns the directives for the build
func (l *Locator) Run(ctx context.Context) (*Result, error) {
	res := &Result{Platform: l.platform}
	if l.Skipped() {
		l.log.Info().Str("var", l.config.SkipVar).Msg("search disabled")
		res.Skipped = true
		return res, nil
	}

	l.log.Debug().Stringer("platform", l.platform).Msg("locating native dependencies")

	var headerDir string
	if l.config.Bindings.Enabled {
		headers, err := l.LocateHeaders()
		if err != nil {
			return nil, err
		}
		res.Headers = &headers
		headerDir = headers.Dir
	}

	lib, err := l.LocateLibrary(headerDir)
	if err != nil {
		return nil, err
	}
	res.Library = lib
	res.Directives = l.directives(lib, headerDir)

	if l.config.Bindings.Enabled {
		b := l.config.Bindings
		if err := l.translator.Generate(ctx, b.Input, headerDir, b.Output); err != nil {
			return nil, &Error{Op: "generate bindings", Product: l.config.Product.Name, Err: err}
		}
		res.Directives.Bindings = b.Output
	}

	return res, nil
}

// Emit writes the directives of res in the configured output format
func (l *Locator) Emit(w io.Writer, res *Result) error {
	if res == nil || res.Skipped || res.Directives == nil {
		return nil
	}
	format, err := l.Format()
	if err != nil {
		return err
	}
	return directive.Write(w, format, res.Directives, l.config.Output.Package)
}

// Format returns the configured output format
func (l *Locator) Format() (directive.Format, error) {
	return directive.ParseFormat(l.config.Output.Format)
}

// Candidates lists the probe order of the library and header searches
func (l *Locator) Candidates() (libs, headers []search.Match) {
	sc := l.Context()
	p := l.config.Product
	libs = l.resolver.Candidates(sc.WithVars(p.LibDirVar(), p.DirVar()), p.LibSubdirs)
	headers = l.resolver.Candidates(sc.WithVars(p.IncludeDirVar(), p.DirVar()), p.IncludeSubdirs)
	return libs, headers
}

// LibraryFiles lists the file names that confirm a library directory on the
// target platform
func (l *Locator) LibraryFiles() []string {
	return artifact.LibraryFileNames(l.platform.OS, l.config.Product.Library)
}

func (l *Locator) directives(lib search.Match, headerDir string) *directive.Directives {
	p := l.config.Product
	d := &directive.Directives{
		LinkSearch: lib.Dir,
		LinkLib:    p.Library,
		IncludeDir: headerDir,
		Tier:       lib.Tier.String(),
		WatchEnv:   p.EnvVars(),
	}
	if l.config.SkipVar != "" {
		d.WatchEnv = append(d.WatchEnv, l.config.SkipVar)
	}
	if found, ok := l.artifacts.(*locator.Locator); ok {
		if a := found.FindLibrary(l.Context(), lib.Dir); a != nil {
			d.Artifact = a.Path
			d.Static = a.IsStatic
		}
	}
	if l.configPath != "" {
		d.WatchFiles = append(d.WatchFiles, l.configPath)
	}
	if l.config.Bindings.Enabled {
		d.WatchFiles = append(d.WatchFiles, l.config.Bindings.Input)
	}
	return d
}

// String describes the run for diagnostics
func (r *Result) String() string {
	if r.Skipped {
		return "skipped"
	}
	return fmt.Sprintf("%s via %s", r.Library.Dir, r.Library.Tier)
}
