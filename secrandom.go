// Package secrandom fills buffers with cryptographically secure random
// bytes. It selects, per call, among several entropy sources - the system
// sources of the running platform and a Fortuna generator fed by OS and
// scheduler entropy - and falls back gracefully when a preferred source is
// unavailable or fails.
package secrandom

import (
	"crypto/rand"

	"github.com/seehuhn/fortuna"

	"github.com/safing/portbase/config"
	"github.com/safing/portbase/log"
	"github.com/safing/portbase/modules"
)

var (
	rngCipherOption   config.StringOption
	minFeedEntropy    config.IntOption
	fortunaOnlyOption config.BoolOption

	shutdownSignal = make(chan struct{})
)

func init() {
	modules.Register("secrandom", prep, start, stop, "base")
}

func prep() error {
	err := config.Register(&config.Option{
		Name:            "RNG Cipher",
		Key:             "secrandom/rng_cipher",
		Description:     "Cipher to use for the Fortuna RNG. Requires restart to take effect.",
		OptType:         config.OptTypeString,
		ExpertiseLevel:  config.ExpertiseLevelDeveloper,
		ReleaseLevel:    config.ReleaseLevelExperimental,
		DefaultValue:    "aes",
		ValidationRegex: "^(aes|serpent)$",
	})
	if err != nil {
		return err
	}
	rngCipherOption = config.GetAsString("secrandom/rng_cipher", "aes")

	err = config.Register(&config.Option{
		Name:            "Minimum Feed Entropy",
		Key:             "secrandom/min_feed_entropy",
		Description:     "The minimum amount of entropy before an entropy source is fed to the RNG, in bits.",
		OptType:         config.OptTypeInt,
		ExpertiseLevel:  config.ExpertiseLevelDeveloper,
		ReleaseLevel:    config.ReleaseLevelExperimental,
		DefaultValue:    256,
		ValidationRegex: "^[0-9]{3,5}$",
	})
	if err != nil {
		return err
	}
	minFeedEntropy = config.Concurrent.GetAsInt("secrandom/min_feed_entropy", 256)

	// The compliance switch must be settable in any deployment, so it is
	// registered at the stable release level.
	err = config.Register(&config.Option{
		Name:           "Fortuna Only",
		Key:            "secrandom/fortuna_only",
		Description:    "Only serve random bytes from the Fortuna RNG, without falling back to system sources. Evaluated on every request.",
		OptType:        config.OptTypeBool,
		ExpertiseLevel: config.ExpertiseLevelExpert,
		ReleaseLevel:   config.ReleaseLevelStable,
		DefaultValue:   false,
	})
	if err != nil {
		return err
	}
	fortunaOnlyOption = config.Concurrent.GetAsBool("secrandom/fortuna_only", false)

	return nil
}

func start() error {
	rngLock.Lock()
	rng = fortuna.NewGenerator(newCipher)
	rngLock.Unlock()
	rngReady.Set()

	// Seed immediately so the Fortuna source is available right away. The
	// feeders take over from here.
	seed := make([]byte, 64)
	if _, err := rand.Read(seed); err == nil {
		reseedRng(seed)
	} else {
		log.Warningf("secrandom: could not gather initial seed: %s", err)
	}

	// random source: OS
	go osFeeder()

	// random source: goroutine ticks
	go tickFeeder()

	// full feeder
	go fullFeeder()

	return nil
}

func stop() error {
	close(shutdownSignal)
	return nil
}
