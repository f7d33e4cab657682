package secrandom

import (
	"fmt"
	"io"
)

// Reader provides a global instance to read random bytes from.
var Reader io.Reader = reader{}

type reader struct{}

func (reader) Read(b []byte) (int, error) {
	return Read(b)
}

// Read fills b with random bytes. It either fills b completely or returns an
// error, never a short read.
func Read(b []byte) (int, error) {
	if err := Fill(b, nil); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Bytes returns n fresh random bytes.
func Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", ErrInvalidArgument, n)
	}
	b := make([]byte, n)
	if err := Fill(b, nil); err != nil {
		return nil, err
	}
	return b, nil
}
