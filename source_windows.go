//go:build windows

package secrandom

import (
	"math"

	"golang.org/x/sys/windows"
)

// nativeOnly makes the selection engine attempt the OS-native API
// exclusively.
const nativeOnly = true

// fillOSNative uses RtlGenRandom (the system preferred RNG). The call takes
// a 32 bit length, so larger requests are split.
func fillOSNative(b []byte, _ *DeviceCache) (outcome, error) {
	err := fillInChunks(b, math.MaxInt32, func(chunk []byte) error {
		return windows.RtlGenRandom(&chunk[0], uint32(len(chunk)))
	})
	if err != nil {
		return outcomeFailure, err
	}
	return outcomeSuccess, nil
}
