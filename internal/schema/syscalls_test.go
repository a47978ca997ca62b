package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// TestUnix_IoctlAddEntropy_Empty tests that an empty pool info is rejected
// before reaching the kernel.
func TestUnix_IoctlAddEntropy_Empty(t *testing.T) {
	t.Parallel()

	u := &Unix{}

	require.ErrorIs(t, u.IoctlAddEntropy(-1, nil), unix.EINVAL)
}

// TestUnix_IoctlAddEntropy_NotRandom tests that the request is refused on a
// descriptor that is not the random device.
func TestUnix_IoctlAddEntropy_NotRandom(t *testing.T) {
	t.Parallel()

	u := &Unix{}
	path := filepath.Join(t.TempDir(), "file")

	fd, err := u.Open(path, unix.O_RDWR|unix.O_CREAT|unix.O_CLOEXEC, 0o600)
	require.NoError(t, err)
	defer u.Close(fd) //nolint:errcheck

	err = u.IoctlAddEntropy(fd, make([]byte, 8))
	require.Error(t, err)
	assert.ErrorIs(t, err, unix.ENOTTY)
}

// TestUnix_Readlink tests the buffer based readlink wrapper.
func TestUnix_Readlink(t *testing.T) {
	t.Parallel()

	u := &Unix{}
	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, u.Symlink("target", link))

	buf := make([]byte, 16)
	n, err := u.Readlink(link, buf)
	require.NoError(t, err)
	assert.Equal(t, "target", string(buf[:n]))
}
