package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		target string
		want   OS
	}{
		{"windows", Windows},
		{"Windows", Windows},
		{"macos", MacOS},
		{"darwin", MacOS},
		{"linux", Unix},
		{"freebsd", Unix},
		{"ios", Unix},
		{"", Unix},
		{"plan9", Unix},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.target))
		})
	}
}

func TestDetect(t *testing.T) {
	env := map[string]string{"GOOS": "windows", "GOARCH": "arm64"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	p := Detect(lookup)
	assert.Equal(t, Windows, p.OS)
	assert.Equal(t, "windows", p.Target)
	assert.Equal(t, "arm64", p.Arch)
	assert.Equal(t, "windows/arm64 (windows)", p.String())
}

func TestDetectFallsBackToHost(t *testing.T) {
	p := Detect(func(string) (string, bool) { return "", false })
	assert.Equal(t, runtime.GOOS, p.Target)
	assert.Equal(t, runtime.GOARCH, p.Arch)
	assert.Equal(t, Parse(runtime.GOOS), p.OS)

	p = Detect(nil)
	assert.Equal(t, runtime.GOOS, p.Target)
}

func TestForTargetKeepsArchFromLookup(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "GOARCH" {
			return "arm64", true
		}
		return "", false
	}

	p := ForTarget("darwin", lookup)
	assert.Equal(t, MacOS, p.OS)
	assert.Equal(t, "darwin", p.Target)
	assert.Equal(t, "arm64", p.Arch)

	p = ForTarget("windows", nil)
	assert.Equal(t, Windows, p.OS)
	assert.Equal(t, runtime.GOARCH, p.Arch)
}
