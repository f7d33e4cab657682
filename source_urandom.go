//go:build unix

package secrandom

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

// urandomPath is a variable so tests can point the source at a broken or
// EOF-ing file.
var urandomPath = "/dev/urandom"

// fillURandom reads random bytes from the urandom device. If cache already
// holds a descriptor it is reused, otherwise the device is opened read-only
// with close-on-exec. When caching is requested the fresh descriptor is
// stored in the cache on success; on a fatal error the descriptor is closed
// and the cache emptied so the next call reopens the device.
func fillURandom(b []byte, cache *DeviceCache) (outcome, error) {
	var fd int
	if cache.IsCached() {
		fd = cache.descriptor()
	} else {
		var err error
		fd, err = unix.Open(urandomPath, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		if err != nil {
			return outcomeFailure, err
		}
	}

	left := b
	for len(left) > 0 {
		n, err := unix.Read(fd, left)
		switch {
		case err != nil && errors.Is(err, unix.EINTR):
			// Interrupted reads are always retryable.
			continue
		case err != nil:
			dropDescriptor(fd, cache)
			return outcomeFailure, err
		case n == 0:
			// The device must never run dry. Treat end of stream as a
			// hard failure instead of spinning.
			dropDescriptor(fd, cache)
			return outcomeFailure, io.ErrUnexpectedEOF
		}
		left = left[n:]
	}

	if cache != nil {
		cache.store(fd)
	} else {
		_ = unix.Close(fd)
	}
	return outcomeSuccess, nil
}

func dropDescriptor(fd int, cache *DeviceCache) {
	_ = unix.Close(fd)
	if cache != nil {
		cache.clear()
	}
}

func closeDescriptor(fd int) error {
	return unix.Close(fd)
}
