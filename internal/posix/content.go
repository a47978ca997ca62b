package posix

import (
	"bytes"
	"fmt"
	"io"

	"github.com/edsrzf/mmap-go"
	"github.com/natefinch/atomic"
	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

// ContentEquals reports whether the regular files a and b have the same
// content. Symbolic links are not followed.
func (h *Handler) ContentEquals(a, b string) (bool, error) {
	aStat, err := h.regularStat(a)
	if err != nil {
		return false, err
	}

	bStat, err := h.regularStat(b)
	if err != nil {
		return false, err
	}

	if aStat.Size != bStat.Size {
		return false, nil
	}

	aSum, err := h.checksum(a)
	if err != nil {
		return false, err
	}

	bSum, err := h.checksum(b)
	if err != nil {
		return false, err
	}

	return bytes.Equal(aSum, bSum), nil
}

// ContentEqualsBytes reports whether the regular file at path holds exactly
// data. Symbolic links are not followed.
func (h *Handler) ContentEqualsBytes(path string, data []byte) (bool, error) {
	st, err := h.regularStat(path)
	if err != nil {
		return false, err
	}

	if st.Size != int64(len(data)) {
		return false, nil
	}

	sum, err := h.checksum(path)
	if err != nil {
		return false, err
	}
	want := blake3.Sum256(data)

	return bytes.Equal(sum, want[:]), nil
}

// CopyTo recreates src at dst: devices, FIFOs and symbolic links are created
// anew, directories are created if missing (not recursively), and regular
// files are copied. Permission bits and ownership follow src. An existing
// dst is only replaced when overwrite is set.
func (h *Handler) CopyTo(src, dst string, overwrite bool) error {
	st, err := h.Stat(src)
	if err != nil {
		return err
	}
	if !st.Exists {
		return h.fail("copy", src, unix.ENOENT)
	}

	dstStat, err := h.Stat(dst)
	if err != nil {
		return err
	}
	if dstStat.Exists && !overwrite {
		return fmt.Errorf("(posix-copy) %w: %s", ErrAlreadyExists, dst)
	}

	mode := uint32(st.Mode) //nolint:gosec
	uid, gid := int(st.UID), int(st.GID)

	switch {
	case IsBlockDevice(mode), IsCharacterDevice(mode):
		if err := h.removeExisting(dst, dstStat); err != nil {
			return err
		}
		if err := h.Mknod(dst, mode, uint64(st.DeviceID)); err != nil { //nolint:gosec
			return err
		}

	case IsDirectory(mode):
		if !dstStat.Exists {
			if err := h.Mkdir(dst, 0o700); err != nil {
				return err
			}
		}
		if err := h.SetMode(dst, mode); err != nil {
			return err
		}

	case IsFifo(mode):
		if err := h.removeExisting(dst, dstStat); err != nil {
			return err
		}
		if err := h.Mkfifo(dst, mode); err != nil {
			return err
		}

	case IsRegularFile(mode):
		if err := h.copyFile(src, dst); err != nil {
			return err
		}
		if err := h.SetMode(dst, mode); err != nil {
			return err
		}

	case IsSymlink(mode):
		target, err := h.Readlink(src)
		if err != nil {
			return err
		}
		if err := h.removeExisting(dst, dstStat); err != nil {
			return err
		}
		if err := h.Symlink(dst, target); err != nil {
			return err
		}

	case IsSocket(mode):
		return fmt.Errorf("(posix-copy) %w: socket %s", ErrUnsupportedType, src)

	default:
		return fmt.Errorf("(posix-copy) %w: %o", ErrUnknownModeType, mode)
	}

	return h.Chown(dst, uid, gid)
}

func (h *Handler) regularStat(path string) (Stat, error) {
	st, err := h.Stat(path)
	if err != nil {
		return st, err
	}
	if !st.IsRegularFile() {
		return st, fmt.Errorf("(posix-compare) %w: %s", ErrNotRegularFile, path)
	}

	return st, nil
}

func (h *Handler) removeExisting(path string, st Stat) error {
	if !st.Exists {
		return nil
	}

	p, err := h.encode("remove", path)
	if err != nil {
		return err
	}
	defer p.Release()

	if err := h.osHandler.Remove(p.String()); err != nil {
		return h.fail("remove", path, err)
	}

	return nil
}

// checksum hashes the file at path through a read-only memory mapping.
func (h *Handler) checksum(path string) ([]byte, error) {
	p, err := h.encode("open", path)
	if err != nil {
		return nil, err
	}
	defer p.Release()

	f, err := h.osHandler.Open(p.String())
	if err != nil {
		return nil, h.fail("open", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, h.fail("fstat", path, err)
	}

	hasher := blake3.New()
	if fi.Size() == 0 {
		return hasher.Sum(nil), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, h.fail("mmap", path, err)
	}
	defer m.Unmap() //nolint:errcheck

	_, _ = hasher.Write(m)

	return hasher.Sum(nil), nil
}

func (h *Handler) copyFile(src, dst string) error {
	sp, err := h.encode("open", src)
	if err != nil {
		return err
	}
	defer sp.Release()

	dp, err := h.encode("write", dst)
	if err != nil {
		return err
	}
	defer dp.Release()

	in, err := h.osHandler.Open(sp.String())
	if err != nil {
		return h.fail("open", src, err)
	}
	defer in.Close()

	srcHasher := blake3.New()

	if err := atomic.WriteFile(dp.String(), io.TeeReader(in, srcHasher)); err != nil {
		return h.fail("write", dst, err)
	}

	dstSum, err := h.checksum(dst)
	if err != nil {
		return err
	}

	if srcSum := srcHasher.Sum(nil); !bytes.Equal(srcSum, dstSum) {
		return fmt.Errorf("(posix-copy) %w: %x (src) != %x (dst)", ErrHashMismatch, srcSum, dstSum)
	}

	return nil
}
