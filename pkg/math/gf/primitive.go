package gf

import "fmt"

// This file finds a primitive polynomial of degree w over GF(2) so that
// Init can build log/antilog tables with x as the generator of the
// multiplicative group. Rather than trust a hand-transcribed constant
// table, the search applies the standard irreducibility test (Rabin /
// Ben-Or) followed by a primitivity check against the prime factors of
// 2^w - 1, both expressed as GF(2)[x] arithmetic over a uint64 bit
// vector (bit i holds the coefficient of x^i). Candidates are walked in
// increasing order so the result is deterministic for a given w.

// polyDeg returns the degree of a, or -1 for the zero polynomial.
func polyDeg(a uint64) int {
	if a == 0 {
		return -1
	}
	d := -1
	for a != 0 {
		d++
		a >>= 1
	}
	return d
}

// polyMulNoMod carry-lessly multiplies two GF(2)[x] polynomials.
func polyMulNoMod(a, b uint64) uint64 {
	var res uint64
	for i := 0; i < 64 && b != 0; i++ {
		if b&1 != 0 {
			res ^= a << i
		}
		b >>= 1
	}
	return res
}

// polyModFull reduces a modulo the (not-necessarily-normalized) divisor b.
func polyModFull(a, b uint64) uint64 {
	db := polyDeg(b)
	for {
		da := polyDeg(a)
		if da < 0 || da < db {
			return a
		}
		a ^= b << (da - db)
	}
}

// polyMod reduces a modulo mod, a degree-degMod polynomial.
func polyMod(a, mod uint64, degMod int) uint64 {
	for {
		da := polyDeg(a)
		if da < 0 || da < degMod {
			return a
		}
		a ^= mod << (da - degMod)
	}
}

// polyMulMod computes a*b mod (mod), the latter of degree degMod.
func polyMulMod(a, b, mod uint64, degMod int) uint64 {
	return polyMod(polyMulNoMod(a, b), mod, degMod)
}

// polyGCD computes the GCD of two GF(2)[x] polynomials.
func polyGCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, polyModFull(a, b)
	}
	return a
}

// polyPowMod computes base^exp mod (mod) via square-and-multiply.
func polyPowMod(base, exp, mod uint64, degMod int) uint64 {
	result := uint64(1)
	b := polyMod(base, mod, degMod)
	for exp > 0 {
		if exp&1 == 1 {
			result = polyMulMod(result, b, mod, degMod)
		}
		b = polyMulMod(b, b, mod, degMod)
		exp >>= 1
	}
	return result
}

// primeFactors returns the distinct prime factors of n via trial division.
func primeFactors(n uint64) []uint64 {
	var factors []uint64
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			factors = append(factors, d)
			for n%d == 0 {
				n /= d
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

const xPoly = uint64(2) // the polynomial "x"

// isIrreducible applies the Ben-Or test: mod (degree w) is irreducible
// over GF(2) iff, for every prime q dividing w, gcd(x^(2^(w/q)) - x, mod)
// has degree 0, and x^(2^w) === x (mod mod).
func isIrreducible(w uint8, mod uint64) bool {
	degMod := int(w)
	xReduced := polyMod(xPoly, mod, degMod)
	for _, q := range primeFactors(uint64(w)) {
		exp := uint64(1) << (uint64(w) / q)
		t := polyPowMod(xPoly, exp, mod, degMod)
		g := polyGCD(mod, t^xReduced)
		if polyDeg(g) != 0 {
			return false
		}
	}
	full := polyPowMod(xPoly, uint64(1)<<w, mod, degMod)
	return full == xReduced
}

// isPrimitive assumes mod is already known irreducible, and checks that x
// generates the full multiplicative group of order 2^w - 1: for every
// prime q dividing that order, x^((2^w-1)/q) must not be 1.
func isPrimitive(w uint8, mod uint64) bool {
	order := (uint64(1) << w) - 1
	for _, q := range primeFactors(order) {
		t := polyPowMod(xPoly, order/q, mod, int(w))
		if t == 1 {
			return false
		}
	}
	return true
}

// findPrimitivePolynomial returns the smallest (by its low-order "tap"
// bits) primitive polynomial of degree w over GF(2), represented with
// the implicit leading x^w term included.
func findPrimitivePolynomial(w uint8) (uint64, error) {
	if w < 1 || w > MaxWidth {
		return 0, fmt.Errorf("width %d out of range", w)
	}
	top := uint64(1) << w
	for low := uint64(1); low < top; low += 2 { // constant term must be 1
		mod := top | low
		if isIrreducible(w, mod) && isPrimitive(w, mod) {
			return mod, nil
		}
	}
	return 0, fmt.Errorf("no primitive polynomial found for width %d", w)
}
