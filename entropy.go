package secrandom

import (
	"encoding/binary"

	"github.com/tevino/abool"

	"github.com/safing/portbase/container"
)

// rngFeeder carries gathered entropy batches to the full feeder.
var rngFeeder = make(chan []byte)

type entropyData struct {
	data    []byte
	entropy int
}

// Feeder collects entropy from one source and hands it to the RNG in
// batches of at least the configured minimum feed entropy.
type Feeder struct {
	input        chan *entropyData
	needsEntropy *abool.AtomicBool
	buffer       *container.Container
	bufferedBits int
}

// NewFeeder returns a new entropy feeder and starts its gathering loop.
func NewFeeder() *Feeder {
	f := &Feeder{
		input:        make(chan *entropyData),
		needsEntropy: abool.NewBool(true),
		buffer:       container.New(),
	}
	go f.run()
	return f
}

// NeedsEntropy reports whether the feeder is still gathering for the next
// batch.
func (f *Feeder) NeedsEntropy() bool {
	return f.needsEntropy.IsSet()
}

// SupplyEntropy hands data with the given estimated entropy (in bits) to the
// feeder. It blocks until the feeder accepts the data or the module shuts
// down.
func (f *Feeder) SupplyEntropy(data []byte, entropy int) {
	select {
	case f.input <- &entropyData{
		data:    data,
		entropy: entropy,
	}:
	case <-shutdownSignal:
	}
}

// SupplyEntropyIfNeeded supplies entropy only if the feeder is currently
// gathering.
func (f *Feeder) SupplyEntropyIfNeeded(data []byte, entropy int) {
	if f.needsEntropy.IsSet() {
		f.SupplyEntropy(data, entropy)
	}
}

// SupplyEntropyAsInt supplies the given value with the given estimated
// entropy (in bits).
func (f *Feeder) SupplyEntropyAsInt(value int64, entropy int) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(value))
	f.SupplyEntropy(b, entropy)
}

func (f *Feeder) run() {
	for {
		// gather until the configured threshold is reached
		for f.bufferedBits < feedThreshold() {
			select {
			case data := <-f.input:
				f.buffer.Append(data.data)
				f.bufferedBits += data.entropy
			case <-shutdownSignal:
				return
			}
		}
		f.needsEntropy.UnSet()

		// deliver
		select {
		case rngFeeder <- f.buffer.CompileData():
			f.buffer = container.New()
			f.bufferedBits = 0
			f.needsEntropy.Set()
		case <-shutdownSignal:
			return
		}
	}
}

// feedThreshold returns the configured minimum feed entropy in bits, with a
// hard floor of 128.
func feedThreshold() int {
	if minFeedEntropy != nil {
		if v := int(minFeedEntropy()); v >= 128 {
			return v
		}
	}
	return 256
}
