package posix

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Stat is the status of a filesystem entry as reported by lstat(2).
// Timestamps are whole seconds expressed in milliseconds since the epoch.
type Stat struct {
	Exists       bool  `json:"exists"       yaml:"exists"`
	Device       int64 `json:"device"       yaml:"device"`
	Inode        int64 `json:"inode"        yaml:"inode"`
	Mode         int64 `json:"mode"         yaml:"mode"`
	LinkCount    int32 `json:"linkCount"    yaml:"linkCount"`
	UID          int32 `json:"uid"          yaml:"uid"`
	GID          int32 `json:"gid"          yaml:"gid"`
	DeviceID     int64 `json:"deviceId"     yaml:"deviceId"`
	Size         int64 `json:"size"         yaml:"size"`
	BlockSize    int32 `json:"blockSize"    yaml:"blockSize"`
	BlockCount   int64 `json:"blockCount"   yaml:"blockCount"`
	AccessTimeMs int64 `json:"accessTimeMs" yaml:"accessTimeMs"`
	ModifyTimeMs int64 `json:"modifyTimeMs" yaml:"modifyTimeMs"`
	ChangeTimeMs int64 `json:"changeTimeMs" yaml:"changeTimeMs"`
}

// NotExists is the [Stat] of a path that does not exist.
//
//nolint:gochecknoglobals
var NotExists = Stat{}

func newStat(st *unix.Stat_t) Stat {
	atime, _ := st.Atim.Unix()
	mtime, _ := st.Mtim.Unix()
	ctime, _ := st.Ctim.Unix()

	return Stat{
		Exists:       true,
		Device:       int64(st.Dev),
		Inode:        int64(st.Ino),
		Mode:         int64(st.Mode),
		LinkCount:    int32(st.Nlink),
		UID:          int32(st.Uid),
		GID:          int32(st.Gid),
		DeviceID:     int64(st.Rdev),
		Size:         st.Size,
		BlockSize:    int32(st.Blksize),
		BlockCount:   st.Blocks,
		AccessTimeMs: atime * 1000,
		ModifyTimeMs: mtime * 1000,
		ChangeTimeMs: ctime * 1000,
	}
}

// Stat reads the status of path without following a final symbolic link.
// A missing path, or one below something that is not a directory, is not an
// error: the result is [NotExists].
func (h *Handler) Stat(path string) (Stat, error) {
	p, err := h.encode("lstat", path)
	if err != nil {
		return NotExists, err
	}
	defer p.Release()

	var st unix.Stat_t
	if err := h.unixHandler.Lstat(p.String(), &st); err != nil {
		if errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ENOTDIR) {
			return NotExists, nil
		}

		return NotExists, h.fail("lstat", path, err)
	}

	return newStat(&st), nil
}

// Permissions returns the permission bits, including set-id and sticky bits.
func (s Stat) Permissions() uint32 {
	return uint32(s.Mode) & PermissionMask //nolint:gosec
}

// Type returns the file type bits.
func (s Stat) Type() uint32 {
	return uint32(s.Mode) & TypeMask //nolint:gosec
}

// ModeString renders the mode the way ls(1) does.
func (s Stat) ModeString() (string, error) {
	return ModeString(uint32(s.Mode)) //nolint:gosec
}

func (s Stat) IsFifo() bool            { return s.Exists && IsFifo(s.Type()) }
func (s Stat) IsCharacterDevice() bool { return s.Exists && IsCharacterDevice(s.Type()) }
func (s Stat) IsDirectory() bool       { return s.Exists && IsDirectory(s.Type()) }
func (s Stat) IsBlockDevice() bool     { return s.Exists && IsBlockDevice(s.Type()) }
func (s Stat) IsRegularFile() bool     { return s.Exists && IsRegularFile(s.Type()) }
func (s Stat) IsSymlink() bool         { return s.Exists && IsSymlink(s.Type()) }
func (s Stat) IsSocket() bool          { return s.Exists && IsSocket(s.Type()) }
