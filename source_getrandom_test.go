//go:build linux || freebsd

package secrandom

import (
	"bytes"
	"testing"
)

func TestGetrandomFillsWholeBuffer(t *testing.T) {
	// Spans several syscall chunks; every byte of the pattern must be
	// overwritten even when the kernel returns short counts.
	b := bytes.Repeat([]byte{0xAA}, getrandomChunkSize*4+37)
	oc, err := fillGetrandom(b, nil)
	if oc != outcomeSuccess {
		t.Fatalf("fill failed: %v", err)
	}

	for start := 0; start < len(b); start += getrandomChunkSize {
		end := start + getrandomChunkSize
		if end > len(b) {
			end = len(b)
		}
		if bytes.Equal(b[start:end], bytes.Repeat([]byte{0xAA}, end-start)) {
			t.Errorf("bytes %d-%d left untouched", start, end)
		}
	}
}
