package posix

import (
	"time"

	"golang.org/x/sys/unix"
)

// omitTime leaves a timestamp unchanged in utimensat(2).
//
//nolint:gochecknoglobals
var omitTime = unix.Timespec{Nsec: unix.UTIME_OMIT}

// Utime sets the access and modification times of path, following a final
// symbolic link. Both times are milliseconds since the epoch and are
// truncated to whole seconds.
func (h *Handler) Utime(path string, atimeMs, mtimeMs int64) error {
	atime, err := msToTimespec(atimeMs)
	if err != nil {
		return h.fail("utime", path, err)
	}

	mtime, err := msToTimespec(mtimeMs)
	if err != nil {
		return h.fail("utime", path, err)
	}

	return h.utimens("utime", path, atime, mtime)
}

// SetAccessTime sets the access time of path and keeps its modification
// time, following a final symbolic link.
func (h *Handler) SetAccessTime(path string, atimeMs int64) error {
	atime, err := msToTimespec(atimeMs)
	if err != nil {
		return h.fail("utime", path, err)
	}

	return h.utimens("utime", path, atime, omitTime)
}

// SetModifyTime sets the modification time of path and keeps its access
// time, following a final symbolic link.
func (h *Handler) SetModifyTime(path string, mtimeMs int64) error {
	mtime, err := msToTimespec(mtimeMs)
	if err != nil {
		return h.fail("utime", path, err)
	}

	return h.utimens("utime", path, omitTime, mtime)
}

func (h *Handler) utimens(op, path string, atime, mtime unix.Timespec) error {
	p, err := h.encode(op, path)
	if err != nil {
		return err
	}
	defer p.Release()

	if err := h.unixHandler.UtimesNano(p.String(), []unix.Timespec{atime, mtime}); err != nil {
		return h.fail(op, path, err)
	}

	return nil
}

// msToTimespec truncates milliseconds to whole seconds. Seconds that do not
// fit the platform time_t fail with ERANGE.
func msToTimespec(ms int64) (unix.Timespec, error) {
	return unix.TimeToTimespec(time.Unix(ms/1000, 0)) //nolint:wrapcheck
}
