package secrandom

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"sync"

	"github.com/aead/serpent"
	"github.com/seehuhn/fortuna"
	"github.com/tevino/abool"
)

var (
	rng       *fortuna.Generator
	rngLock   sync.Mutex
	rngReady  = abool.New()
	rngSeeded = abool.New()
)

// maxFortunaRequest bounds a single generator request. Fortuna output is
// only specified up to 2^20 bytes per call, so larger requests are split.
const maxFortunaRequest = 1 << 20

func newCipher(key []byte) (cipher.Block, error) {
	c := "aes"
	if rngCipherOption != nil {
		c = rngCipherOption()
	}
	switch c {
	case "aes":
		return aes.NewCipher(key)
	case "serpent":
		return serpent.NewCipher(key)
	default:
		return nil, fmt.Errorf("unknown or unsupported cipher: %s", c)
	}
}

// fillFortuna fills b from the Fortuna generator. The source reports
// unsupported until the module has started and the generator received its
// first seed, mirroring a library that is not compiled in.
func fillFortuna(b []byte, _ *DeviceCache) (outcome, error) {
	if rngReady.IsNotSet() || rngSeeded.IsNotSet() {
		return outcomeUnsupported, nil
	}
	err := fillInChunks(b, maxFortunaRequest, func(chunk []byte) error {
		rngLock.Lock()
		defer rngLock.Unlock()
		copy(chunk, rng.PseudoRandomData(uint(len(chunk))))
		return nil
	})
	if err != nil {
		return outcomeFailure, err
	}
	return outcomeSuccess, nil
}

func reseedRng(seed []byte) {
	rngLock.Lock()
	defer rngLock.Unlock()
	rng.Reseed(seed)
	rngSeeded.Set()
}
