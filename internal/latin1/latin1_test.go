package latin1

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

type countingAllocator struct {
	allocs int
	frees  int
	fail   error
	short  bool
}

func (a *countingAllocator) Alloc(n int) ([]byte, error) {
	if a.fail != nil {
		return nil, a.fail
	}
	a.allocs++
	if a.short {
		return make([]byte, n-1), nil
	}

	return make([]byte, n), nil
}

func (a *countingAllocator) Free([]byte) {
	a.frees++
}

func latin1Printable() string {
	var sb strings.Builder
	for r := rune(0x20); r <= 0xFF; r++ {
		if r >= 0x7F && r < 0xA0 {
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// TestEncodeDecode_RoundTrip tests that printable Latin-1 text survives
// [Encode] followed by [Decode].
func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"/tmp/plain/path",
		"café über ÿ ",
		latin1Printable(),
		strings.Repeat("é", StackThreshold),
		strings.Repeat("é", StackThreshold+1),
		strings.Repeat("x/ø", 2000),
	}

	for _, s := range inputs {
		buf, err := Encode(s, nil)
		require.NoError(t, err)

		assert.Equal(t, []rune(s), []rune(Decode(buf.Bytes())))
		assert.Equal(t, s, Decode(buf.Terminated()))
		buf.Release()
	}
}

// TestEncode_Layout tests the exact byte layout produced by [Encode].
func TestEncode_Layout(t *testing.T) {
	t.Parallel()

	t.Run("Success_OneBytePerRune", func(t *testing.T) {
		t.Parallel()

		buf, err := Encode("aéb", nil)
		require.NoError(t, err)
		defer buf.Release()

		assert.Equal(t, []byte{'a', 0xE9, 'b', 0}, buf.Terminated())
		assert.Equal(t, []byte{'a', 0xE9, 'b'}, buf.Bytes())
		assert.Equal(t, "a\xe9b", buf.String())
		assert.Equal(t, 3, buf.Len())
	})

	t.Run("Success_ReplacesWideRunes", func(t *testing.T) {
		t.Parallel()

		buf, err := Encode("€/世\U0001F600", nil)
		require.NoError(t, err)
		defer buf.Release()

		assert.Equal(t, "?/??", buf.String())
	})

	t.Run("Success_ReplacesInvalidUTF8", func(t *testing.T) {
		t.Parallel()

		buf, err := Encode("a\xffb", nil)
		require.NoError(t, err)
		defer buf.Release()

		assert.Equal(t, "a?b", buf.String())
	})

	t.Run("Success_Empty", func(t *testing.T) {
		t.Parallel()

		buf, err := Encode("", nil)
		require.NoError(t, err)
		defer buf.Release()

		assert.Equal(t, []byte{0}, buf.Terminated())
		assert.Empty(t, buf.String())
	})
}

// TestEncode_Allocation tests buffer ownership through the [Allocator].
func TestEncode_Allocation(t *testing.T) {
	t.Parallel()

	t.Run("Success_ReleasedOnce", func(t *testing.T) {
		t.Parallel()

		alloc := &countingAllocator{}

		buf, err := Encode("/tmp/file", alloc)
		require.NoError(t, err)

		buf.Release()
		buf.Release()

		assert.Equal(t, 1, alloc.allocs)
		assert.Equal(t, 1, alloc.frees)
	})

	t.Run("Fail_AllocatorError", func(t *testing.T) {
		t.Parallel()

		alloc := &countingAllocator{fail: errors.New("arena exhausted")}

		buf, err := Encode("/tmp/file", alloc)
		require.Error(t, err)
		require.ErrorIs(t, err, unix.ENOMEM)
		assert.Nil(t, buf)
		assert.Zero(t, alloc.frees)
	})

	t.Run("Fail_ShortAllocation", func(t *testing.T) {
		t.Parallel()

		alloc := &countingAllocator{short: true}

		buf, err := Encode("/tmp/file", alloc)
		require.ErrorIs(t, err, unix.ENOMEM)
		assert.Nil(t, buf)
		assert.Equal(t, 1, alloc.frees)
	})

	t.Run("Success_NilRelease", func(t *testing.T) {
		t.Parallel()

		var buf *Buffer
		assert.NotPanics(t, buf.Release)
	})
}

// TestDecode tests [Decode] on both sides of the stack threshold.
func TestDecode(t *testing.T) {
	t.Parallel()

	all := make([]byte, 255)
	for i := range all {
		all[i] = byte(i + 1)
	}

	decoded := []rune(Decode(all))
	require.Len(t, decoded, 255)
	for i, r := range decoded {
		assert.Equal(t, rune(i+1), r)
	}

	short := []byte(strings.Repeat("\xe9", StackThreshold))
	long := []byte(strings.Repeat("\xe9", StackThreshold*3))

	assert.Equal(t, strings.Repeat("é", StackThreshold), Decode(short))
	assert.Equal(t, strings.Repeat("é", StackThreshold*3), Decode(long))
	assert.Equal(t, Decode(long)[:len(Decode(short))], Decode(short))

	assert.Equal(t, "ab", Decode([]byte{'a', 'b', 0, 'c'}))
}
