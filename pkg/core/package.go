// pkg/core/package.go
package core

import (
	"github.com/arc-language/nativelocate/pkg/artifact"
	"github.com/arc-language/nativelocate/pkg/search"
)

// Product describes the pre-built native package being located
type Product struct {
	Name           string   `yaml:"name" toml:"name"`                       // Human-readable name for messages
	EnvPrefix      string   `yaml:"env_prefix" toml:"env_prefix"`           // Prefix of the override variables
	Library        string   `yaml:"library" toml:"library"`                 // Link name, without lib prefix or extension
	Header         string   `yaml:"header" toml:"header"`                   // Primary header file name
	LibSubdirs     []string `yaml:"lib_subdirs" toml:"lib_subdirs"`         // Probed under every root, in order
	IncludeSubdirs []string `yaml:"include_subdirs" toml:"include_subdirs"` // Probed under every root, in order
	WellKnownBases []string `yaml:"well_known_bases" toml:"well_known_bases"`
	NameFragments  []string `yaml:"name_fragments" toml:"name_fragments"` // Case-insensitive install dir name match
}

// DefaultProduct returns the AMD uProf profile controller
func DefaultProduct() Product {
	layout := artifact.DefaultLayout()
	return Product{
		Name:           "AMD uProf",
		EnvPrefix:      "AMD_UPROF",
		Library:        "AMDProfileController",
		Header:         "AMDProfileController.h",
		LibSubdirs:     layout.Libraries,
		IncludeSubdirs: layout.Includes,
		WellKnownBases: append([]string(nil), search.DefaultBases...),
		NameFragments:  []string{"amduprof", "amd_uprof"},
	}
}

// DirVar names the install root override shared by library and header search
func (p Product) DirVar() string { return p.EnvPrefix + "_DIR" }

// LibDirVar names the direct library directory override
func (p Product) LibDirVar() string { return p.EnvPrefix + "_LIB_DIR" }

// IncludeDirVar names the direct header directory override
func (p Product) IncludeDirVar() string { return p.EnvPrefix + "_INCLUDE_DIR" }

// EnvVars lists every variable that influences the search
func (p Product) EnvVars() []string {
	return []string{p.DirVar(), p.IncludeDirVar(), p.LibDirVar()}
}
