package secrandom

import (
	"time"
)

const tickDuration = 10 * time.Millisecond

// tickFeeder is a simple entropy feeder that adds the least significant bit
// of the current nanosecond unixtime to its pool every time it 'ticks'. The
// more work the program does, the better the quality, as the internal
// scheduler cannot immediately run the goroutine when it's ready.
func tickFeeder() {
	var value int64
	var pushes int
	feeder := NewFeeder()

	for {
		select {
		case <-time.After(tickDuration):
			value = (value << 1) | (time.Now().UnixNano() % 2)

			pushes++
			if pushes >= 64 {
				// 64 ticks of scheduler jitter carry roughly 8 bits.
				feeder.SupplyEntropyAsInt(value, 8)
				pushes = 0
			}
		case <-shutdownSignal:
			return
		}
	}
}
