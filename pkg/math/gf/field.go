// Package gf implements arithmetic over GF(2^W) for W in [1, 29].
//
// Elements are represented as the integers [0, 2^W) with addition as
// bitwise XOR and multiplication/division backed by log/antilog tables
// built over a primitive polynomial found at Init time. The tables are
// process-wide and keyed by width: Init is safe to call repeatedly and
// concurrently, and always returns the same *Field for a given width.
package gf

import (
	"fmt"
	"sync"
)

// MaxWidth is the largest field width this package supports.
const MaxWidth = 29

// Element is a member of GF(2^W). Its zero value is the additive
// identity of every field.
type Element uint32

// Field holds the precomputed log/antilog tables for one width W.
// A *Field is immutable once returned by Init and may be shared freely
// across goroutines.
type Field struct {
	width    uint8
	order    uint32 // 2^width
	poly     uint64 // the primitive polynomial used to build the tables, degree == width
	logTable []uint32
	expTable []uint32 // length 2*(order-1), so indices can be taken mod (order-1) without branching
}

// Width returns W.
func (f *Field) Width() uint8 { return f.width }

// Order returns 2^W.
func (f *Field) Order() uint32 { return f.order }

// NumBytes is the serialized width of an element: ceil(W/8).
func (f *Field) NumBytes() int { return int((f.width + 7) / 8) }

// Zero is the additive identity.
func (f *Field) Zero() Element { return Element(0) }

// One is the multiplicative identity.
func (f *Field) One() Element { return Element(1) }

// Add is bitwise XOR; it doubles as subtraction since the field has
// characteristic 2.
func (f *Field) Add(a, b Element) Element { return a ^ b }

// Sub is an alias of Add.
func (f *Field) Sub(a, b Element) Element { return f.Add(a, b) }

// Neg is the identity: every element is its own additive inverse.
func (f *Field) Neg(a Element) Element { return a }

// Equal reports whether a and b are the same field element.
func (f *Field) Equal(a, b Element) bool { return a == b }

// Mul multiplies two elements via the log/antilog tables.
func (f *Field) Mul(a, b Element) Element {
	if a == 0 || b == 0 {
		return 0
	}
	sum := int(f.logTable[a]) + int(f.logTable[b])
	return Element(f.expTable[sum])
}

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = fmt.Errorf("gf: division by zero")

// Div divides a by b, failing with ErrDivisionByZero when b is zero.
func (f *Field) Div(a, b Element) (Element, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == 0 {
		return 0, nil
	}
	diff := int(f.logTable[a]) - int(f.logTable[b])
	if diff < 0 {
		diff += int(f.order) - 1
	}
	return Element(f.expTable[diff]), nil
}

// Normalize reduces an arbitrary uint32 into the field. Values already
// in [0, 2^W) pass through unchanged; wider values are treated as a
// GF(2)[x] polynomial and reduced modulo the field's defining
// polynomial, the same reduction Init uses to build the log/antilog
// tables, so the result is always a valid element and construction
// never indexes a table out of range.
func (f *Field) Normalize(v uint32) Element {
	if v < f.order {
		return Element(v)
	}
	return Element(polyMod(uint64(v), f.poly, int(f.width)))
}

// FromUint32 constructs a field element from an arbitrary integer,
// normalizing it if it falls outside [0, 2^W).
func (f *Field) FromUint32(v uint32) Element { return f.Normalize(v) }

// ToUint32 returns the element's underlying integer value.
func (f *Field) ToUint32(e Element) uint32 { return uint32(e) }

var (
	registryMu sync.Mutex
	registry   = map[uint8]*fieldSlot{}
)

type fieldSlot struct {
	once  sync.Once
	field *Field
	err   error
}

// Init builds (or returns the already-built) log/antilog tables for
// width w, exactly once per width for the lifetime of the process. It is
// safe to call concurrently from multiple goroutines; the first caller
// to win the race performs the (possibly slow) table construction while
// the rest block on the same result.
func Init(w uint8) (*Field, error) {
	if w < 1 || w > MaxWidth {
		return nil, fmt.Errorf("gf: unsupported width %d (must be 1..%d)", w, MaxWidth)
	}

	registryMu.Lock()
	slot, ok := registry[w]
	if !ok {
		slot = &fieldSlot{}
		registry[w] = slot
	}
	registryMu.Unlock()

	slot.once.Do(func() {
		slot.field, slot.err = buildField(w)
	})
	return slot.field, slot.err
}

func buildField(w uint8) (*Field, error) {
	poly, err := findPrimitivePolynomial(w)
	if err != nil {
		return nil, fmt.Errorf("gf: could not initialize field of width %d: %w", w, err)
	}

	order := uint32(1) << w
	f := &Field{
		width:    w,
		order:    order,
		poly:     poly,
		logTable: make([]uint32, order),
		expTable: make([]uint32, 2*(order-1)),
	}

	// x generates the full multiplicative group since poly is primitive.
	x := uint64(1)
	for i := uint32(0); i < order-1; i++ {
		f.expTable[i] = uint32(x)
		f.expTable[i+order-1] = uint32(x)
		f.logTable[x] = i
		x = polyMulMod(x, 2, poly, int(w))
	}

	return f, nil
}
