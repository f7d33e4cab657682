package secrandom

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"
)

// Buffer couples the generator with a persistent byte buffer and typed views
// over the most recent fill. It owns a descriptor cache, so repeated reads
// reuse the same device descriptor. A Buffer is safe for concurrent use.
//
// Buffers left to the garbage collector release their descriptor through a
// finalizer, but callers should Close explicitly.
type Buffer struct {
	lock   sync.Mutex
	cache  *DeviceCache
	data   []byte
	filled int
	closed bool
}

// NewBuffer returns an empty Buffer ready for use.
func NewBuffer() *Buffer {
	b := &Buffer{
		cache: NewDeviceCache(),
	}
	runtime.SetFinalizer(b, func(b *Buffer) {
		_ = b.Close()
	})
	return b
}

// Read fills the internal buffer with n fresh random bytes, replacing any
// previous contents. It returns the number of bytes now available. On error
// nothing is available until the next successful Read.
func (b *Buffer) Read(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative byte count %d", ErrInvalidArgument, n)
	}

	b.lock.Lock()
	defer b.lock.Unlock()
	if b.closed {
		return 0, ErrClosed
	}

	if cap(b.data) < n {
		b.data = make([]byte, n)
	} else {
		b.data = b.data[:n]
	}
	b.filled = 0
	if err := Fill(b.data, b.cache); err != nil {
		return 0, err
	}
	b.filled = n
	return n, nil
}

// Len returns the number of bytes available from the last successful Read.
func (b *Buffer) Len() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.filled
}

// Bytes returns a copy of up to n bytes starting at the given byte offset.
// A negative n means all remaining bytes. An offset at or beyond the
// available data yields nil; a count reaching beyond it is clamped.
func (b *Buffer) Bytes(n, offset int) ([]byte, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrInvalidArgument, offset)
	}

	b.lock.Lock()
	defer b.lock.Unlock()
	if b.closed {
		return nil, ErrClosed
	}
	if offset >= b.filled {
		return nil, nil
	}

	avail := b.filled - offset
	if n < 0 || n > avail {
		n = avail
	}
	out := make([]byte, n)
	copy(out, b.data[offset:offset+n])
	return out, nil
}

// Uint8s returns count 8-bit elements starting at the given element offset.
// A negative count means all remaining elements.
func (b *Buffer) Uint8s(count, offset int) ([]uint8, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	raw, count, err := b.view(1, count, offset)
	if err != nil {
		return nil, err
	}
	out := make([]uint8, count)
	copy(out, raw)
	return out, nil
}

// Uint16s returns count 16-bit elements starting at the given element
// offset, in native byte order. A negative count means all remaining
// elements.
func (b *Buffer) Uint16s(count, offset int) ([]uint16, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	raw, count, err := b.view(2, count, offset)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, count)
	for i := range out {
		out[i] = binary.NativeEndian.Uint16(raw[i*2:])
	}
	return out, nil
}

// Uint32s returns count 32-bit elements starting at the given element
// offset, in native byte order. A negative count means all remaining
// elements.
func (b *Buffer) Uint32s(count, offset int) ([]uint32, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	raw, count, err := b.view(4, count, offset)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.NativeEndian.Uint32(raw[i*4:])
	}
	return out, nil
}

// view validates an element access against the last filled length and
// returns the backing bytes from the element offset on, plus the resolved
// element count. Callers must hold the lock.
func (b *Buffer) view(width, count, offset int) ([]byte, int, error) {
	if b.closed {
		return nil, 0, ErrClosed
	}
	if offset < 0 {
		return nil, 0, fmt.Errorf("%w: negative offset %d", ErrInvalidArgument, offset)
	}

	maxCount := b.filled / width
	if offset >= maxCount {
		return nil, 0, fmt.Errorf("failed to get elements (%d-bit width) at element offset %d: %w", width*8, offset, ErrOutOfRange)
	}
	maxCount -= offset

	if count < 0 {
		count = maxCount
	}
	if count > maxCount {
		return nil, 0, fmt.Errorf("failed to get %d elements (%d-bit width) at element offset %d: %w", count, width*8, offset, ErrInsufficientData)
	}
	return b.data[offset*width:], count, nil
}

// Close releases the buffer and its cached descriptor. Closing a closed
// Buffer is a no-op.
func (b *Buffer) Close() error {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	b.data = nil
	b.filled = 0
	runtime.SetFinalizer(b, nil)
	return b.cache.Close()
}
