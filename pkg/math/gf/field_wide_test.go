package gf

import "testing"

// TestMulDivCorrectAtWideWidths guards against log/antilog table entries
// silently truncating for W > 16, where order-1 exceeds what a uint16
// can hold. The reference values are computed independently via the
// uint64-based GF(2)[x] polynomial arithmetic in primitive.go rather
// than through the tables under test.
func TestMulDivCorrectAtWideWidths(t *testing.T) {
	for _, w := range []uint8{17, 20, 29} {
		f, err := Init(w)
		if err != nil {
			t.Fatalf("width %d: Init: %v", w, err)
		}

		order := f.order
		degMod := int(w)

		samples := []uint32{1, 2, order / 2, order - 1}
		if w == 29 {
			// order-1 for w=29 already exceeds any uint16, so a single pair
			// away from the table boundary is enough; keep the loop cheap.
			samples = []uint32{1, order / 3, order - 1}
		}

		for _, a := range samples {
			for _, b := range samples {
				gotMul := f.Mul(Element(a), Element(b))
				wantMul := Element(polyMulMod(uint64(a), uint64(b), f.poly, degMod))
				if gotMul != wantMul {
					t.Fatalf("width %d: Mul(%d, %d) = %d, want %d (table truncation?)", w, a, b, gotMul, wantMul)
				}

				if b == 0 {
					continue
				}
				gotDiv, err := f.Div(Element(a), Element(b))
				if err != nil {
					t.Fatalf("width %d: Div(%d, %d): %v", w, a, b, err)
				}
				// b^-1 = b^(order-2) by Fermat's little theorem for the
				// multiplicative group of order (order-1).
				bInv := polyPowMod(uint64(b), uint64(order-2), f.poly, degMod)
				wantDiv := Element(polyMulMod(uint64(a), bInv, f.poly, degMod))
				if gotDiv != wantDiv {
					t.Fatalf("width %d: Div(%d, %d) = %d, want %d (table truncation?)", w, a, b, gotDiv, wantDiv)
				}
			}
		}
	}
}
