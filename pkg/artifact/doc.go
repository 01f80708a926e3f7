// pkg/artifact/doc.go
package artifact

/*
Package artifact decides whether a directory holds the files a build needs
from a pre-built native product.

It handles:
  - Platform-specific library file names (import/dynamic on Windows,
    .dylib on macOS, .so/.a everywhere else)
  - Header presence checks by exact file name
  - The conventional subdirectory layout of an install

Basic Usage:

    fs := afero.NewOsFs()

    if artifact.LibraryExists(fs, platform.Unix, "AMDProfileController", "/opt/uprof/lib") {
        // -L/opt/uprof/lib -lAMDProfileController
    }

    lib := artifact.FindLibrary(fs, platform.Unix, "AMDProfileController", "/opt/uprof/lib")
    if lib != nil {
        fmt.Printf("Found: %s (static=%v)\n", lib.Path, lib.IsStatic)
    }

Only existence is checked. File contents are never read.
*/
