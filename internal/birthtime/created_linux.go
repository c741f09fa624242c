package birthtime

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func createdAt(path string) (time.Time, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_TYPE|unix.STATX_BTIME|unix.STATX_CTIME, &stx)
	if err != nil {
		return time.Time{}, &fs.PathError{Op: "statx", Path: path, Err: err}
	}
	if uint32(stx.Mode)&unix.S_IFMT != unix.S_IFDIR {
		return time.Time{}, &fs.PathError{Op: "statx", Path: path, Err: errNotDirectory}
	}

	if stx.Mask&unix.STATX_BTIME != 0 {
		return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
	}
	return time.Unix(stx.Ctime.Sec, int64(stx.Ctime.Nsec)), nil
}
