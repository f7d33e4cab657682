//go:build !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package secrandom

func fillArc4Random(b []byte, _ *DeviceCache) (outcome, error) {
	return outcomeUnsupported, nil
}
