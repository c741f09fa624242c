//go:build !linux && !darwin

package birthtime

import (
	"io/fs"
	"os"
	"time"
)

// No portable birth or change time here; modification time is the closest.
func createdAt(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	if !info.IsDir() {
		return time.Time{}, &fs.PathError{Op: "stat", Path: path, Err: errNotDirectory}
	}
	return info.ModTime(), nil
}
