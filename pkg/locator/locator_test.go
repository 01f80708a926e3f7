package locator

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/nativelocate/pkg/core"
	"github.com/arc-language/nativelocate/pkg/platform"
	"github.com/arc-language/nativelocate/pkg/search"
)

func touch(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, nil, 0644))
}

func newTestLocator(fs afero.Fs) *Locator {
	product := core.DefaultProduct()
	scanner := search.NewScanner(fs, product.WellKnownBases, product.NameFragments)
	return New(search.NewResolver(fs, scanner, zerolog.Nop()), product)
}

func unixContext(env search.Environ) search.Context {
	return search.Context{OS: platform.Unix, Env: env}
}

func TestLibraryDirectOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/opt/x/lib64/libAMDProfileController.so")

	l := newTestLocator(fs)
	m, err := l.Library(unixContext(search.Environ{"AMD_UPROF_LIB_DIR": "/opt/x/lib64"}), "")
	require.NoError(t, err)
	assert.Equal(t, "/opt/x/lib64", m.Dir)
	assert.Equal(t, search.TierDirOverride, m.Tier)
}

func TestLibraryDirectOverrideBeatsRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/direct/libAMDProfileController.so")
	touch(t, fs, "/root/lib/libAMDProfileController.so")

	l := newTestLocator(fs)
	env := search.Environ{"AMD_UPROF_LIB_DIR": "/direct", "AMD_UPROF_DIR": "/root"}
	m, err := l.Library(unixContext(env), "")
	require.NoError(t, err)
	assert.Equal(t, "/direct", m.Dir)

	delete(env, "AMD_UPROF_LIB_DIR")
	m, err = l.Library(unixContext(env), "")
	require.NoError(t, err)
	assert.Equal(t, "/root/lib", m.Dir)
}

func TestLibraryIgnoresIncludeOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/inc/libAMDProfileController.so")

	l := newTestLocator(fs)
	_, err := l.Library(unixContext(search.Environ{"AMD_UPROF_INCLUDE_DIR": "/inc"}), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLibraryWellKnownRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/opt/AMDuProf_1.2/lib/libAMDProfileController.a")

	l := newTestLocator(fs)
	m, err := l.Library(unixContext(search.Environ{}), "")
	require.NoError(t, err)
	assert.Equal(t, "/opt/AMDuProf_1.2/lib", m.Dir)
	assert.Equal(t, search.TierWellKnown, m.Tier)

	lib := l.FindLibrary(unixContext(nil), m.Dir)
	require.NotNil(t, lib)
	assert.True(t, lib.IsStatic)
}

func TestLibraryPlatformNaming(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/opt/amd_uprof/lib/x64/AMDProfileController.dll")
	touch(t, fs, "/opt/amd_uprof/lib/libAMDProfileController.dylib")

	l := newTestLocator(fs)

	m, err := l.Library(search.Context{OS: platform.Windows, Env: search.Environ{}}, "")
	require.NoError(t, err)
	assert.Equal(t, "/opt/amd_uprof/lib/x64", m.Dir)

	m, err = l.Library(search.Context{OS: platform.MacOS, Env: search.Environ{}}, "")
	require.NoError(t, err)
	assert.Equal(t, "/opt/amd_uprof/lib", m.Dir)

	_, err = l.Library(unixContext(search.Environ{}), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLibrarySiblingFallback(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/vendor/uprof/include/AMDProfileController.h")
	touch(t, fs, "/vendor/uprof/lib64/libAMDProfileController.so")

	l := newTestLocator(fs)
	sc := unixContext(search.Environ{})

	_, err := l.Library(sc, "")
	require.ErrorIs(t, err, ErrNotFound)

	m, err := l.Library(sc, "/vendor/uprof/include/")
	require.NoError(t, err)
	assert.Equal(t, search.Match{Dir: "/vendor/uprof/lib64", Tier: search.TierSibling}, m)
}

func TestLibraryNotFoundMessage(t *testing.T) {
	l := newTestLocator(afero.NewMemMapFs())
	_, err := l.Library(unixContext(search.Environ{}), "/nowhere/include")
	require.Error(t, err)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, []string{"AMD_UPROF_LIB_DIR", "AMD_UPROF_DIR"}, nf.Vars)
	assert.Equal(t,
		"could not locate AMD uProf libraries: set AMD_UPROF_LIB_DIR or AMD_UPROF_DIR to the install path",
		err.Error())
}

func TestHeaders(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/root/inc/AMDProfileController.h")
	touch(t, fs, "/direct/AMDProfileController.h")

	l := newTestLocator(fs)

	m, err := l.Headers(unixContext(search.Environ{"AMD_UPROF_DIR": "/root"}))
	require.NoError(t, err)
	assert.Equal(t, search.Match{Dir: "/root/inc", Tier: search.TierRootOverride}, m)

	m, err = l.Headers(unixContext(search.Environ{"AMD_UPROF_DIR": "/root", "AMD_UPROF_INCLUDE_DIR": "/direct"}))
	require.NoError(t, err)
	assert.Equal(t, "/direct", m.Dir)

	// The library override never applies to headers.
	_, err = l.Headers(unixContext(search.Environ{"AMD_UPROF_LIB_DIR": "/direct"}))
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "AMD_UPROF_INCLUDE_DIR or AMD_UPROF_DIR")
	assert.Contains(t, err.Error(), "headers")
}
