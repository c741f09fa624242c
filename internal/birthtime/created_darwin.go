package birthtime

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func createdAt(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	if uint32(st.Mode)&unix.S_IFMT != unix.S_IFDIR {
		return time.Time{}, &fs.PathError{Op: "stat", Path: path, Err: errNotDirectory}
	}

	if st.Btim.Sec != 0 || st.Btim.Nsec != 0 {
		return time.Unix(st.Btim.Unix()), nil
	}
	return time.Unix(st.Ctim.Unix()), nil
}
