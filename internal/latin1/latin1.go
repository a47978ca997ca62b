// Package latin1 marshals strings into the single-byte, zero-terminated form
// expected by the syscalls and back.
package latin1

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/sys/unix"
	"golang.org/x/text/encoding/charmap"
)

const (
	// StackThreshold is the longest input [Decode] converts without a heap
	// allocation for its intermediate buffer.
	StackThreshold = 512

	// Replacement is written for every rune without a single-byte form.
	Replacement = '?'
)

// Allocator hands out the buffers used by [Encode].
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(buf []byte)
}

// HeapAllocator allocates from the Go heap.
type HeapAllocator struct{}

// Alloc returns a zeroed buffer of n bytes.
func (HeapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("(latin1-alloc) negative size %d: %w", n, unix.ENOMEM)
	}

	return make([]byte, n), nil
}

// Free is a no-op, the garbage collector reclaims the buffer.
func (HeapAllocator) Free([]byte) {}

// Buffer is a zero-terminated single-byte string owned by the operation that
// encoded it.
type Buffer struct {
	buf      []byte
	alloc    Allocator
	released bool
}

// Encode converts s into a new [Buffer] of exactly one byte per rune plus the
// terminating zero byte. Runes above 0xFF, including invalid UTF-8, become
// [Replacement]. If the allocator fails, no buffer is returned and the error
// wraps [unix.ENOMEM].
func Encode(s string, alloc Allocator) (*Buffer, error) {
	if alloc == nil {
		alloc = HeapAllocator{}
	}

	n := utf8.RuneCountInString(s)

	buf, err := alloc.Alloc(n + 1)
	if err != nil {
		return nil, fmt.Errorf("(latin1-encode) %w", withENOMEM(err))
	}

	if len(buf) != n+1 {
		alloc.Free(buf)

		return nil, fmt.Errorf("(latin1-encode) short allocation %d/%d: %w", len(buf), n+1, unix.ENOMEM)
	}

	i := 0
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = Replacement
		}
		buf[i] = b
		i++
	}
	buf[n] = 0

	return &Buffer{buf: buf, alloc: alloc}, nil
}

// NewBuffer allocates a zeroed [Buffer] with room for n bytes plus the
// terminator, used to receive syscall output.
func NewBuffer(n int, alloc Allocator) (*Buffer, error) {
	if alloc == nil {
		alloc = HeapAllocator{}
	}

	buf, err := alloc.Alloc(n + 1)
	if err != nil {
		return nil, fmt.Errorf("(latin1-buffer) %w", withENOMEM(err))
	}

	if len(buf) != n+1 {
		alloc.Free(buf)

		return nil, fmt.Errorf("(latin1-buffer) short allocation %d/%d: %w", len(buf), n+1, unix.ENOMEM)
	}

	return &Buffer{buf: buf, alloc: alloc}, nil
}

// Bytes returns the encoded bytes without the terminator.
func (b *Buffer) Bytes() []byte {
	return b.buf[:len(b.buf)-1]
}

// Terminated returns the encoded bytes including the terminator.
func (b *Buffer) Terminated() []byte {
	return b.buf
}

// String returns the encoded bytes as a byte string, the form accepted by
// the x/sys wrappers.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Len returns the number of encoded bytes, not counting the terminator.
func (b *Buffer) Len() int {
	return len(b.buf) - 1
}

// Release returns the memory to the allocator. Only the first call has an
// effect.
func (b *Buffer) Release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	b.alloc.Free(b.buf)
	b.buf = nil
}

// Decode converts single-byte text into a string, each byte becoming the
// code point of the same value. A zero byte ends the text.
func Decode(b []byte) string {
	for i, c := range b {
		if c == 0 {
			b = b[:i]

			break
		}
	}

	if len(b) <= StackThreshold {
		var stack [StackThreshold]rune

		return decodeInto(stack[:0], b)
	}

	return decodeInto(make([]rune, 0, len(b)), b)
}

func decodeInto(runes []rune, b []byte) string {
	for _, c := range b {
		runes = append(runes, charmap.ISO8859_1.DecodeByte(c))
	}

	return string(runes)
}

func withENOMEM(err error) error {
	var code unix.Errno
	if errors.As(err, &code) {
		return err
	}

	return fmt.Errorf("%w: %w", err, unix.ENOMEM)
}
