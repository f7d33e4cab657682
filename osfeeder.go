package secrandom

import (
	"crypto/rand"
	"time"

	"github.com/safing/portbase/log"
)

func osFeeder() {
	feeder := NewFeeder()
	for {
		select {
		case <-shutdownSignal:
			return
		default:
		}

		// get feed entropy
		minEntropyBytes := feedThreshold() / 8
		if minEntropyBytes < 32 {
			minEntropyBytes = 64
		}

		// get entropy
		osEntropy := make([]byte, minEntropyBytes)
		n, err := rand.Read(osEntropy)
		if err != nil || n != minEntropyBytes {
			if err != nil {
				log.Errorf("secrandom: could not read entropy from os: %s", err)
			} else {
				log.Errorf("secrandom: could not read enough entropy from os: got only %d bytes instead of %d", n, minEntropyBytes)
			}
			select {
			case <-time.After(10 * time.Second):
			case <-shutdownSignal:
				return
			}
			continue
		}

		// feed
		feeder.SupplyEntropy(osEntropy, minEntropyBytes*8)
	}
}
