package posix

// Chown changes the owner and group of path. A final symbolic link is
// changed itself, not its target.
func (h *Handler) Chown(path string, uid, gid int) error {
	p, err := h.encode("lchown", path)
	if err != nil {
		return err
	}
	defer p.Release()

	if err := h.unixHandler.Lchown(p.String(), uid, gid); err != nil {
		return h.fail("lchown", path, err)
	}

	return nil
}

// SetMode sets the permission bits of path. Bits outside [PermissionMask]
// are ignored.
func (h *Handler) SetMode(path string, mode uint32) error {
	p, err := h.encode("chmod", path)
	if err != nil {
		return err
	}
	defer p.Release()

	if err := h.unixHandler.Chmod(p.String(), mode&PermissionMask); err != nil {
		return h.fail("chmod", path, err)
	}

	return nil
}
