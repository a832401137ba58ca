// Package crc computes cyclic redundancy checks over byte streams for any
// polynomial, register width and bit order.
//
// Two engines share the same configuration model. Direct divides each byte
// bit by bit and keeps no precomputed state. Lookup builds a 256 entry table at
// construction by running the same division on every byte value, then consumes
// one byte per table lookup.
//
// Polynomials are always given in natural (MSB-first) notation. Initial values
// and final XOR masks are the caller's business: pass the initial value as the
// seed and XOR the result yourself.
package crc

import (
	"fmt"
	"math/bits"
	"strings"
)

// Register is the set of unsigned integer types usable as a CRC register.
type Register interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Engine computes a CRC over data starting from seed. Feeding the result of
// one call as the seed of the next yields the CRC of the concatenated input.
type Engine[T Register] interface {
	Compute(data []byte, seed T) T
}

// Direction selects the order in which register bits are consumed.
type Direction int

const (
	// Left shifts the register towards the MSB, consuming bits MSB-first.
	Left Direction = iota
	// Right shifts the register towards the LSB, consuming bits LSB-first.
	// The polynomial is reflected to match.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts "left" or "right" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "left", "l", "msb":
		return Left, nil
	case "right", "r", "lsb":
		return Right, nil
	}
	return Left, fmt.Errorf("invalid shift direction: %q", s)
}

// Width returns the width of T in bits.
func Width[T Register]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Reverse returns v with the order of all Width[T]() bits reversed.
func Reverse[T Register](v T) (r T) {
	w := Width[T]()
	for bit := uint(0); bit < w; bit++ {
		if v&(T(1)<<bit) != 0 {
			r |= T(1) << (w - bit - 1)
		}
	}
	return r
}

// A Shifter moves register bits in a fixed direction. Shifts are logical,
// bits shifted out are lost.
type Shifter[T Register] interface {
	Shift(v T, n uint) T
}

type leftShifter[T Register] struct{}

func (leftShifter[T]) Shift(v T, n uint) T { return v << n }

type rightShifter[T Register] struct{}

func (rightShifter[T]) Shift(v T, n uint) T { return v >> n }

// NewShifter returns the Shifter for dir. Anything other than Left shifts
// right.
func NewShifter[T Register](dir Direction) Shifter[T] {
	if dir == Left {
		return leftShifter[T]{}
	}
	return rightShifter[T]{}
}

// divider holds the fixed state shared by both engines.
type divider[T Register] struct {
	dir     Direction
	shifter Shifter[T]

	poly T // natural notation, as given
	div  T // poly as applied to the register, reflected for Right
	mask T // next bit to test: MSB for Left, LSB for Right
	pack uint
}

func newDivider[T Register](poly T, dir Direction) (d divider[T]) {
	w := Width[T]()

	d.dir = dir
	d.shifter = NewShifter[T](dir)
	d.poly = poly

	if dir == Left {
		d.div = poly
		d.mask = T(1) << (w - 1)
		d.pack = w - 8
	} else {
		d.div = Reverse(poly)
		d.mask = 1
		d.pack = 0
	}

	return d
}

// Poly returns the polynomial in natural notation.
func (d divider[T]) Poly() T { return d.poly }

// Direction returns the shift direction.
func (d divider[T]) Direction() Direction { return d.dir }

// divide runs eight rounds of shift-and-XOR on the register, one per bit of
// the byte most recently packed into it.
func (d divider[T]) divide(r T) T {
	for bit := 0; bit < 8; bit++ {
		if r&d.mask != 0 {
			r = d.shifter.Shift(r, 1) ^ d.div
		} else {
			r = d.shifter.Shift(r, 1)
		}
	}
	return r
}

func (d divider[T]) String() string {
	digits := int(Width[T]() / 4)
	return fmt.Sprintf("{Width:%d Shift:%s Poly:0x%0*X}", Width[T](), d.dir, digits, uint64(d.poly))
}
