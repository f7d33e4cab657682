//go:build !windows

package secrandom

const nativeOnly = false

func fillOSNative(b []byte, _ *DeviceCache) (outcome, error) {
	return outcomeUnsupported, nil
}
