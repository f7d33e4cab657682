package secrandom

import (
	"bytes"
	"testing"

	"github.com/safing/portbase/config"
)

func TestNewCipher(t *testing.T) {
	key := make([]byte, 16)

	err := config.SetConfigOption("secrandom/rng_cipher", "aes")
	if err != nil {
		t.Errorf("failed to set secrandom/rng_cipher config: %s", err)
	}
	_, err = newCipher(key)
	if err != nil {
		t.Errorf("failed to create aes cipher: %s", err)
	}
	reseedRng(key)

	err = config.SetConfigOption("secrandom/rng_cipher", "serpent")
	if err != nil {
		t.Errorf("failed to set secrandom/rng_cipher config: %s", err)
	}
	_, err = newCipher(key)
	if err != nil {
		t.Errorf("failed to create serpent cipher: %s", err)
	}
	reseedRng(key)
}

func TestFortunaSource(t *testing.T) {
	// start() seeded the generator, so the source must be available.
	a := make([]byte, 64)
	oc, err := fillFortuna(a, nil)
	if oc != outcomeSuccess {
		t.Fatalf("fortuna fill failed: %v", err)
	}

	b := make([]byte, 64)
	oc, err = fillFortuna(b, nil)
	if oc != outcomeSuccess {
		t.Fatalf("fortuna fill failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("consecutive fortuna fills returned identical data")
	}
}

func TestFortunaUnavailableWhenNotReady(t *testing.T) {
	// With the ready flag cleared, the source must step aside instead of
	// blocking or producing weak data.
	rngReady.UnSet()
	defer rngReady.Set()

	oc, err := fillFortuna(make([]byte, 8), nil)
	if oc != outcomeUnsupported {
		t.Errorf("expected unsupported before seeding, got outcome %d (err: %v)", oc, err)
	}
}
