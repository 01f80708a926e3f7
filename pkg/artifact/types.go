// pkg/artifact/types.go
package artifact

// Layout lists the conventional subdirectories of an install, relative to its root
type Layout struct {
	Libraries []string // Relative paths to library directories
	Includes  []string // Relative paths to include directories
}

// Library represents a found library file
type Library struct {
	Name     string // Library name (e.g., "AMDProfileController")
	Path     string // Path to library file
	Type     string // Extension: ".so", ".a", ".dylib", ".dll", ".lib"
	IsStatic bool   // True for .a and .lib files
}
