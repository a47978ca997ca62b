package posix

// Mknod creates a special file at path. The device identifier is only used
// for character and block devices.
func (h *Handler) Mknod(path string, mode uint32, dev uint64) error {
	p, err := h.encode("mknod", path)
	if err != nil {
		return err
	}
	defer p.Release()

	if err := h.unixHandler.Mknod(p.String(), mode, int(dev)); err != nil { //nolint:gosec
		return h.fail("mknod", path, err)
	}

	return nil
}

// Mkfifo creates a named pipe at path with the permission bits of mode.
func (h *Handler) Mkfifo(path string, mode uint32) error {
	p, err := h.encode("mkfifo", path)
	if err != nil {
		return err
	}
	defer p.Release()

	if err := h.unixHandler.Mknod(p.String(), TypeFifo|(mode&PermissionMask), 0); err != nil {
		return h.fail("mkfifo", path, err)
	}

	return nil
}
