//go:build linux || freebsd

package secrandom

import (
	"io"

	"golang.org/x/sys/unix"
)

// getrandomChunkSize caps a single getrandom call. Up to 256 bytes the
// kernel guarantees a complete result in one call; larger requests are
// split.
const getrandomChunkSize = 256

func fillGetrandom(b []byte, _ *DeviceCache) (outcome, error) {
	err := fillInChunks(b, getrandomChunkSize, func(chunk []byte) error {
		for len(chunk) > 0 {
			n, err := unix.Getrandom(chunk, 0)
			if err != nil {
				return err
			}
			if n <= 0 {
				return io.ErrUnexpectedEOF
			}
			chunk = chunk[n:]
		}
		return nil
	})
	if err != nil {
		return outcomeFailure, err
	}
	return outcomeSuccess, nil
}
