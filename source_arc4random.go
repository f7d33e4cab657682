//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package secrandom

import (
	"crypto/rand"
)

// fillArc4Random uses the runtime's random reader, which is backed by
// arc4random_buf(3) on these platforms. The primitive has no documented
// failure mode and needs no chunking; the error branch is kept defensively.
func fillArc4Random(b []byte, _ *DeviceCache) (outcome, error) {
	if _, err := rand.Read(b); err != nil {
		return outcomeFailure, err
	}
	return outcomeSuccess, nil
}
