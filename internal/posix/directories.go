package posix

import (
	"errors"
	"path/filepath"

	"github.com/desertwitch/posixfs/internal/latin1"
	"golang.org/x/sys/unix"
)

// Mkdir creates the directory path.
func (h *Handler) Mkdir(path string, mode uint32) error {
	p, err := h.encode("mkdir", path)
	if err != nil {
		return err
	}
	defer p.Release()

	if err := h.unixHandler.Mkdir(p.String(), mode&PermissionMask); err != nil {
		return h.fail("mkdir", path, err)
	}

	return nil
}

// MkdirAll creates the directory path along with any missing parents. Every
// directory it creates gets the permission bits of mode, unaffected by the
// umask, and is owned by uid and gid. It fails if path itself already exists.
func (h *Handler) MkdirAll(path string, mode uint32, uid, gid int) error {
	path = filepath.Clean(path)

	var missing []string
	for dir := filepath.Dir(path); dir != "/" && dir != "."; dir = filepath.Dir(dir) {
		st, err := h.Stat(dir)
		if err != nil {
			return err
		}
		if st.Exists {
			break
		}
		missing = append(missing, dir)
	}

	for i := len(missing) - 1; i >= 0; i-- {
		if err := h.makeDir(missing[i], mode, uid, gid); err != nil {
			return err
		}
	}

	return h.makeDir(path, mode, uid, gid)
}

func (h *Handler) makeDir(path string, mode uint32, uid, gid int) error {
	if err := h.Mkdir(path, mode); err != nil {
		return err
	}

	if err := h.SetMode(path, mode); err != nil {
		return err
	}

	return h.Chown(path, uid, gid)
}

// DeleteRecursive removes path and, for a directory, everything below it.
// Symbolic links are removed, not followed. Entries that disappear during
// the walk are skipped and a missing path is not an error.
func (h *Handler) DeleteRecursive(path string) error {
	st, err := h.Stat(path)
	if err != nil {
		return err
	}
	if !st.Exists {
		return nil
	}

	if !st.IsDirectory() {
		return h.remove("unlink", path, h.unixHandler.Unlink)
	}

	names, err := h.readDir(path)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := h.DeleteRecursive(filepath.Join(path, name)); err != nil {
			return err
		}
	}

	return h.remove("rmdir", path, h.unixHandler.Rmdir)
}

// RenameTo moves path to target, replacing an existing target where
// rename(2) allows it.
func (h *Handler) RenameTo(path, target string) error {
	p, err := h.encode("rename", path)
	if err != nil {
		return err
	}
	defer p.Release()

	t, err := h.encode("rename", target)
	if err != nil {
		return err
	}
	defer t.Release()

	if err := h.unixHandler.Rename(p.String(), t.String()); err != nil {
		return h.fail("rename", path, err)
	}

	return nil
}

// readDir returns the decoded entry names of the directory path. A
// directory that vanished has no entries.
func (h *Handler) readDir(path string) ([]string, error) {
	p, err := h.encode("readdir", path)
	if err != nil {
		return nil, err
	}
	defer p.Release()

	entries, err := h.osHandler.ReadDir(p.String())
	if errors.Is(err, unix.ENOENT) {
		return nil, nil
	}
	if err != nil {
		return nil, h.fail("readdir", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, latin1.Decode([]byte(e.Name())))
	}

	return names, nil
}

// remove deletes path with the given syscall, ignoring ENOENT.
func (h *Handler) remove(op, path string, syscall func(string) error) error {
	p, err := h.encode(op, path)
	if err != nil {
		return err
	}
	defer p.Release()

	if err := syscall(p.String()); err != nil && !errors.Is(err, unix.ENOENT) {
		return h.fail(op, path, err)
	}

	return nil
}
