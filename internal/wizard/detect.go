package wizard

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ThomasCrouzet/simdedupe/internal/birthtime"
	"github.com/ThomasCrouzet/simdedupe/internal/simctl"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	LauncherPath string // resolved path of xcrun, empty if missing
	DevicesDir   string // CoreSimulator devices dir if it exists
	Snapshots    []string
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
	UserHomeDir() (string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error)  { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }
func (OSDetector) UserHomeDir() (string, error)          { return os.UserHomeDir() }

// snapshotPatterns match saved `simctl list -j devices` output.
var snapshotPatterns = []string{
	"devices.json",
	"simctl*.json",
}

// Detect scans the environment for simctl and simulator data.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	if p, err := d.LookPath(simctl.DefaultLauncher); err == nil {
		result.LauncherPath = p
	}

	if home, err := d.UserHomeDir(); err == nil {
		dir := filepath.Join(home, birthtime.DevicesSubdir)
		if info, err := d.Stat(dir); err == nil && info.IsDir() {
			result.DevicesDir = dir
		}
	}

	for _, pattern := range snapshotPatterns {
		matches, err := d.Glob(pattern)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if !contains(result.Snapshots, m) {
				result.Snapshots = append(result.Snapshots, m)
			}
		}
	}

	return result
}

func contains(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
