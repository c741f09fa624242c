// Package birthtime resolves when a simulator was created from its data
// directory on disk.
package birthtime

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// DevicesSubdir is where CoreSimulator keeps one directory per device,
// relative to the user's home.
const DevicesSubdir = "Library/Developer/CoreSimulator/Devices"

// DefaultBaseDir returns ~/Library/Developer/CoreSimulator/Devices.
func DefaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, DevicesSubdir), nil
}

// errNotDirectory is returned by createdAt when the path exists but is not
// a directory.
var errNotDirectory = errors.New("not a directory")

// Resolver maps a device udid to its creation time.
type Resolver struct {
	BaseDir string
	Now     func() time.Time

	log  zerolog.Logger
	stat func(path string) (time.Time, error)
}

func NewResolver(baseDir string, log zerolog.Logger) *Resolver {
	return &Resolver{
		BaseDir: baseDir,
		Now:     time.Now,
		log:     log,
		stat:    createdAt,
	}
}

// CreationTime returns the birth time of the device directory, or its
// status-change time where the filesystem does not record births.
//
// A device whose directory does not exist yet was just registered, so it
// gets the current time and sorts after any older lookalike. A path that
// exists but is not a directory counts as missing.
func (r *Resolver) CreationTime(identifier string) (time.Time, error) {
	dir := filepath.Join(r.BaseDir, identifier)

	ts, err := r.stat(dir)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, errNotDirectory) {
		now := r.Now()
		r.log.Debug().Str("udid", identifier).Time("created", now).Msg("device directory missing, treating as new")
		return now, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("resolving creation time of %s: %w", identifier, err)
	}

	r.log.Debug().Str("udid", identifier).Time("created", ts).Msg("resolved creation time")
	return ts, nil
}
