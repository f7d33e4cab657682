package secrandom

import (
	"testing"
)

func TestFeeder(t *testing.T) {
	feeder := NewFeeder()
	if !feeder.NeedsEntropy() {
		t.Error("fresh feeder does not want entropy")
	}

	// Supply a full batch; the full feeder drains the delivery, so this
	// must not block.
	data := make([]byte, 8)
	for i := 0; i < 4; i++ {
		feeder.SupplyEntropy(data, 64)
	}

	// The feeder accepts input for the next batch afterwards.
	feeder.SupplyEntropyAsInt(0x0123456789abcdef, 8)
	if !feeder.NeedsEntropy() {
		t.Error("feeder does not gather for the next batch")
	}

	feeder.SupplyEntropyIfNeeded(data, 64)
}

func TestFeedThreshold(t *testing.T) {
	if ft := feedThreshold(); ft < 128 {
		t.Errorf("feed threshold below floor: %d", ft)
	}
}
