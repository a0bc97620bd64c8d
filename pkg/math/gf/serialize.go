package gf

// Serialize writes e as NumBytes() little-endian bytes.
func (f *Field) Serialize(e Element) []byte {
	n := f.NumBytes()
	out := make([]byte, n)
	v := uint32(e)
	for i := 0; i < n; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}

// Deserialize reads exactly NumBytes() bytes from b, zero-extends them,
// and returns the resulting element. It performs no range check: a
// caller that hands it bytes from outside [0, 2^W) gets back a value
// that is not normalized, matching the wire contract described in
// spec.md section 6.
func (f *Field) Deserialize(b []byte) Element {
	n := f.NumBytes()
	var v uint32
	for i := 0; i < n && i < len(b); i++ {
		v |= uint32(b[i]) << (8 * i)
	}
	return Element(v)
}
