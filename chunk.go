package secrandom

// fillInChunks satisfies an arbitrarily large request through repeated calls
// to fill, which accepts at most max bytes per call. The first failed chunk
// aborts the whole request; bytes already written are not rolled back, so
// callers must treat the buffer contents as undefined after an error.
func fillInChunks(b []byte, max int, fill func([]byte) error) error {
	for len(b) > 0 {
		chunk := len(b)
		if chunk > max {
			chunk = max
		}
		if err := fill(b[:chunk]); err != nil {
			return err
		}
		b = b[chunk:]
	}
	return nil
}
