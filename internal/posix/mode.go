package posix

import (
	"fmt"
	"strings"
)

const (
	RootUID = 0
	RootGID = 0
)

// Permission bits.
const (
	PermissionMask uint32 = 0o7777

	OtherExecute  uint32 = 0o1
	OtherWrite    uint32 = 0o2
	OtherRead     uint32 = 0o4
	GroupExecute  uint32 = 0o10
	GroupWrite    uint32 = 0o20
	GroupRead     uint32 = 0o40
	UserExecute   uint32 = 0o100
	UserWrite     uint32 = 0o200
	UserRead      uint32 = 0o400
	SaveTextImage uint32 = 0o1000
	SetGID        uint32 = 0o2000
	SetUID        uint32 = 0o4000
)

// File type bits.
const (
	TypeMask            uint32 = 0o170000
	TypeFifo            uint32 = 0o010000
	TypeCharacterDevice uint32 = 0o020000
	TypeDirectory       uint32 = 0o040000
	TypeBlockDevice     uint32 = 0o060000
	TypeRegularFile     uint32 = 0o100000
	TypeSymlink         uint32 = 0o120000
	TypeSocket          uint32 = 0o140000
)

func IsFifo(mode uint32) bool            { return mode&TypeMask == TypeFifo }
func IsCharacterDevice(mode uint32) bool { return mode&TypeMask == TypeCharacterDevice }
func IsDirectory(mode uint32) bool       { return mode&TypeMask == TypeDirectory }
func IsBlockDevice(mode uint32) bool     { return mode&TypeMask == TypeBlockDevice }
func IsRegularFile(mode uint32) bool     { return mode&TypeMask == TypeRegularFile }
func IsSymlink(mode uint32) bool         { return mode&TypeMask == TypeSymlink }
func IsSocket(mode uint32) bool          { return mode&TypeMask == TypeSocket }

// ModeString renders mode the way ls(1) does, e.g. "drwxr-sr-t".
func ModeString(mode uint32) (string, error) {
	var sb strings.Builder
	sb.Grow(10)

	switch mode & TypeMask {
	case TypeFifo:
		sb.WriteByte('p')
	case TypeCharacterDevice:
		sb.WriteByte('c')
	case TypeDirectory:
		sb.WriteByte('d')
	case TypeBlockDevice:
		sb.WriteByte('b')
	case TypeRegularFile:
		sb.WriteByte('-')
	case TypeSymlink:
		sb.WriteByte('l')
	case TypeSocket:
		sb.WriteByte('s')
	default:
		return "", fmt.Errorf("(posix-modestring) %w: %o", ErrUnknownModeType, mode)
	}

	sb.WriteByte(bit(mode, UserRead, 'r'))
	sb.WriteByte(bit(mode, UserWrite, 'w'))
	sb.WriteByte(special(mode, UserExecute, SetUID, 's'))
	sb.WriteByte(bit(mode, GroupRead, 'r'))
	sb.WriteByte(bit(mode, GroupWrite, 'w'))
	sb.WriteByte(special(mode, GroupExecute, SetGID, 's'))
	sb.WriteByte(bit(mode, OtherRead, 'r'))
	sb.WriteByte(bit(mode, OtherWrite, 'w'))
	sb.WriteByte(special(mode, OtherExecute, SaveTextImage, 't'))

	return sb.String(), nil
}

func bit(mode, mask uint32, c byte) byte {
	if mode&mask != 0 {
		return c
	}

	return '-'
}

// special renders an execute bit that shares its column with a set-id or
// sticky bit: lower case when both are set, upper case for the special bit
// alone.
func special(mode, exec, extra uint32, c byte) byte {
	switch {
	case mode&exec != 0 && mode&extra != 0:
		return c
	case mode&exec != 0:
		return 'x'
	case mode&extra != 0:
		return c - 'a' + 'A'
	}

	return '-'
}
