package posix

import (
	os "os"

	mock "github.com/stretchr/testify/mock"
	unix "golang.org/x/sys/unix"
)

// mockUnixProvider is a mock type for the unixProvider type
type mockUnixProvider struct {
	mock.Mock
}

// Chmod provides a mock function with given fields: path, mode
func (_m *mockUnixProvider) Chmod(path string, mode uint32) error {
	ret := _m.Called(path, mode)

	return ret.Error(0)
}

// Close provides a mock function with given fields: fd
func (_m *mockUnixProvider) Close(fd int) error {
	ret := _m.Called(fd)

	return ret.Error(0)
}

// Lchown provides a mock function with given fields: path, uid, gid
func (_m *mockUnixProvider) Lchown(path string, uid int, gid int) error {
	ret := _m.Called(path, uid, gid)

	return ret.Error(0)
}

// Link provides a mock function with given fields: oldpath, newpath
func (_m *mockUnixProvider) Link(oldpath string, newpath string) error {
	ret := _m.Called(oldpath, newpath)

	return ret.Error(0)
}

// Lstat provides a mock function with given fields: path, stat
func (_m *mockUnixProvider) Lstat(path string, stat *unix.Stat_t) error {
	ret := _m.Called(path, stat)

	return ret.Error(0)
}

// Mkdir provides a mock function with given fields: path, mode
func (_m *mockUnixProvider) Mkdir(path string, mode uint32) error {
	ret := _m.Called(path, mode)

	return ret.Error(0)
}

// Mknod provides a mock function with given fields: path, mode, dev
func (_m *mockUnixProvider) Mknod(path string, mode uint32, dev int) error {
	ret := _m.Called(path, mode, dev)

	return ret.Error(0)
}

// Open provides a mock function with given fields: path, mode, perm
func (_m *mockUnixProvider) Open(path string, mode int, perm uint32) (int, error) {
	ret := _m.Called(path, mode, perm)

	return ret.Int(0), ret.Error(1)
}

// Readlink provides a mock function with given fields: path, buf
func (_m *mockUnixProvider) Readlink(path string, buf []byte) (int, error) {
	ret := _m.Called(path, buf)

	return ret.Int(0), ret.Error(1)
}

// Rename provides a mock function with given fields: oldpath, newpath
func (_m *mockUnixProvider) Rename(oldpath string, newpath string) error {
	ret := _m.Called(oldpath, newpath)

	return ret.Error(0)
}

// Rmdir provides a mock function with given fields: path
func (_m *mockUnixProvider) Rmdir(path string) error {
	ret := _m.Called(path)

	return ret.Error(0)
}

// Symlink provides a mock function with given fields: oldpath, newpath
func (_m *mockUnixProvider) Symlink(oldpath string, newpath string) error {
	ret := _m.Called(oldpath, newpath)

	return ret.Error(0)
}

// Unlink provides a mock function with given fields: path
func (_m *mockUnixProvider) Unlink(path string) error {
	ret := _m.Called(path)

	return ret.Error(0)
}

// UtimesNano provides a mock function with given fields: path, times
func (_m *mockUnixProvider) UtimesNano(path string, times []unix.Timespec) error {
	ret := _m.Called(path, times)

	return ret.Error(0)
}

// newMockUnixProvider creates a new instance of mockUnixProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func newMockUnixProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockUnixProvider {
	m := &mockUnixProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// mockOsProvider is a mock type for the osProvider type
type mockOsProvider struct {
	mock.Mock
}

// Open provides a mock function with given fields: name
func (_m *mockOsProvider) Open(name string) (*os.File, error) {
	ret := _m.Called(name)

	var r0 *os.File
	if rf, ok := ret.Get(0).(*os.File); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// ReadDir provides a mock function with given fields: name
func (_m *mockOsProvider) ReadDir(name string) ([]os.DirEntry, error) {
	ret := _m.Called(name)

	var r0 []os.DirEntry
	if rf, ok := ret.Get(0).([]os.DirEntry); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// Remove provides a mock function with given fields: name
func (_m *mockOsProvider) Remove(name string) error {
	ret := _m.Called(name)

	return ret.Error(0)
}

// newMockOsProvider creates a new instance of mockOsProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func newMockOsProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockOsProvider {
	m := &mockOsProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
