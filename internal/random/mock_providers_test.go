package random

import (
	os "os"

	mock "github.com/stretchr/testify/mock"
)

// mockUnixProvider is a mock type for the unixProvider type
type mockUnixProvider struct {
	mock.Mock
}

// Close provides a mock function with given fields: fd
func (_m *mockUnixProvider) Close(fd int) error {
	ret := _m.Called(fd)

	return ret.Error(0)
}

// IoctlAddEntropy provides a mock function with given fields: fd, info
func (_m *mockUnixProvider) IoctlAddEntropy(fd int, info []byte) error {
	ret := _m.Called(fd, info)

	return ret.Error(0)
}

// Open provides a mock function with given fields: path, mode, perm
func (_m *mockUnixProvider) Open(path string, mode int, perm uint32) (int, error) {
	ret := _m.Called(path, mode, perm)

	return ret.Int(0), ret.Error(1)
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

// OpenFile provides a mock function with given fields: name, flag, perm
func (_m *mockOsProvider) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	ret := _m.Called(name, flag, perm)

	var r0 *os.File
	if rf, ok := ret.Get(0).(*os.File); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// ReadFile provides a mock function with given fields: name
func (_m *mockOsProvider) ReadFile(name string) ([]byte, error) {
	ret := _m.Called(name)

	var r0 []byte
	if rf, ok := ret.Get(0).([]byte); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
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
