//go:build !unix

package secrandom

func fillURandom(b []byte, cache *DeviceCache) (outcome, error) {
	return outcomeUnsupported, nil
}

func closeDescriptor(fd int) error {
	return nil
}
