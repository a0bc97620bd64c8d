package gf

import "io"

// Rng is the minimal randomness source field sampling needs. Callers
// retain ownership of the underlying source; Random borrows it for the
// duration of a single call. Implementations backed by a
// crypto/rand.Reader, math/rand.Rand, or a deterministic test source
// (see pkg/randsrc) all satisfy this interface via io.Reader.
type Rng interface {
	io.Reader
}

// Random samples an element uniformly from [0, 2^W). Because the field's
// order is always a power of two, masking the bytes covering W bits down
// to W bits is already uniform; no rejection loop is needed.
func (f *Field) Random(rng Rng) (Element, error) {
	numBytes := f.NumBytes()
	buf := make([]byte, numBytes)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return 0, err
	}
	v := uint32(0)
	for i := 0; i < numBytes; i++ {
		v |= uint32(buf[i]) << (8 * i)
	}
	return Element(v & (f.order - 1)), nil
}
