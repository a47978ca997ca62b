package errno

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// TestClassify tests the full errno table of [Classify].
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     unix.Errno
		expected Category
	}{
		{unix.EACCES, SecurityViolation},
		{unix.EPERM, SecurityViolation},
		{unix.EBADF, IOFailure},
		{unix.EIO, IOFailure},
		{unix.EMLINK, IOFailure},
		{unix.ENOSPC, IOFailure},
		{unix.ENOTDIR, IOFailure},
		{unix.EROFS, IOFailure},
		{unix.EXDEV, IOFailure},
		{unix.EEXIST, IOFailure},
		{unix.EFAULT, GenericRuntimeFailure},
		{unix.EINTR, InterruptedIO},
		{unix.EINVAL, InvalidArgument},
		{unix.ENAMETOOLONG, InvalidArgument},
		{unix.ELOOP, PathNotFound},
		{unix.ENOENT, PathNotFound},
		{unix.ENOMEM, OutOfMemory},
		{unix.ENOSYS, MethodUnsupported},
		{unix.EBUSY, GenericRuntimeFailure},
		{unix.ENOTEMPTY, GenericRuntimeFailure},
		{unix.Errno(9999), GenericRuntimeFailure},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.code.Error(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Classify(tt.code))
		})
	}
}

// TestCategory_Err tests that every category has its own sentinel.
func TestCategory_Err(t *testing.T) {
	t.Parallel()

	all := []Category{
		GenericRuntimeFailure, SecurityViolation, IOFailure, InvalidArgument,
		InterruptedIO, MethodUnsupported, OutOfMemory, PathNotFound,
	}

	seen := make(map[error]Category)
	for _, c := range all {
		err := c.Err()
		require.Error(t, err)

		prev, dup := seen[err]
		assert.False(t, dup, "%s shares a sentinel with %s", c, prev)
		seen[err] = c

		assert.NotEmpty(t, c.String())
	}
}

// TestWrap tests construction of [Error] from syscall and non-syscall errors.
func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("Success_Nil", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Wrap("chmod", "/x", nil))
	})

	t.Run("Success_BareErrno", func(t *testing.T) {
		t.Parallel()

		err := Wrap("chmod", "/x", unix.EACCES)

		require.ErrorIs(t, err, ErrSecurityViolation)
		require.ErrorIs(t, err, unix.EACCES)
		assert.NotErrorIs(t, err, ErrIOFailure)

		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "chmod", e.Op)
		assert.Equal(t, "/x", e.Path)
		assert.Equal(t, unix.EACCES, e.Errno)
		assert.Equal(t, unix.EACCES.Error(), e.Message)
		assert.Equal(t, "chmod /x: "+unix.EACCES.Error(), e.Error())
	})

	t.Run("Success_PathError", func(t *testing.T) {
		t.Parallel()

		_, serr := os.Stat("/nonexistent/path/for/errno/test")
		err := Wrap("stat", "/nonexistent", serr)

		require.ErrorIs(t, err, ErrPathNotFound)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("Success_Wrapped", func(t *testing.T) {
		t.Parallel()

		err := Wrap("link", "/a", fmt.Errorf("inner: %w", unix.EXDEV))

		require.ErrorIs(t, err, ErrIOFailure)
		c, ok := CategoryOf(fmt.Errorf("outer: %w", err))
		require.True(t, ok)
		assert.Equal(t, IOFailure, c)
	})

	t.Run("Success_NotSyscall", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("broken marshaling")
		err := Wrap("readlink", "", cause)

		require.ErrorIs(t, err, ErrRuntimeFailure)
		require.ErrorIs(t, err, cause)
		assert.Equal(t, "readlink: broken marshaling", err.Error())
	})

	t.Run("Fail_CategoryOfPlain", func(t *testing.T) {
		t.Parallel()

		c, ok := CategoryOf(errors.New("plain"))
		assert.False(t, ok)
		assert.Equal(t, GenericRuntimeFailure, c)
	})
}
