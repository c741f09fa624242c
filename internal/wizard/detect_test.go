package wizard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ThomasCrouzet/simdedupe/internal/birthtime"
)

// mockDetector implements Detector for testing.
type mockDetector struct {
	binaries map[string]string
	dirs     map[string]bool
	globs    map[string][]string
	home     string
}

func (m *mockDetector) LookPath(name string) (string, error) {
	if p, ok := m.binaries[name]; ok {
		return p, nil
	}
	return "", &os.PathError{Op: "lookpath", Path: name, Err: os.ErrNotExist}
}

type fakeFileInfo struct {
	name  string
	isDir bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return 0644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.isDir }
func (f fakeFileInfo) Sys() interface{}   { return nil }

func (m *mockDetector) Stat(path string) (os.FileInfo, error) {
	if m.dirs[path] {
		return fakeFileInfo{name: path, isDir: true}, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockDetector) Glob(pattern string) ([]string, error) {
	return m.globs[pattern], nil
}

func (m *mockDetector) UserHomeDir() (string, error) {
	if m.home == "" {
		return "", errors.New("$HOME is not defined")
	}
	return m.home, nil
}

func TestDetectLauncher(t *testing.T) {
	d := &mockDetector{binaries: map[string]string{"xcrun": "/usr/bin/xcrun"}}
	result := Detect(d)
	assert.Equal(t, "/usr/bin/xcrun", result.LauncherPath)
}

func TestDetectNoLauncher(t *testing.T) {
	d := &mockDetector{}
	result := Detect(d)
	assert.Empty(t, result.LauncherPath)
}

func TestDetectDevicesDir(t *testing.T) {
	devices := filepath.Join("/Users/runner", birthtime.DevicesSubdir)
	d := &mockDetector{
		home: "/Users/runner",
		dirs: map[string]bool{devices: true},
	}
	result := Detect(d)
	assert.Equal(t, devices, result.DevicesDir)
}

func TestDetectSnapshots(t *testing.T) {
	d := &mockDetector{
		globs: map[string][]string{
			"devices.json": {"devices.json"},
			"simctl*.json": {"simctl-ci.json", "devices.json"},
		},
	}
	result := Detect(d)
	assert.Equal(t, []string{"devices.json", "simctl-ci.json"}, result.Snapshots)
}

func TestDetectNothing(t *testing.T) {
	d := &mockDetector{home: "/Users/runner"}
	result := Detect(d)
	assert.Empty(t, result.LauncherPath)
	assert.Empty(t, result.DevicesDir)
	assert.Empty(t, result.Snapshots)
}
