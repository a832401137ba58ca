package crc

import "hash"

// Digest adapts an Engine to hash.Hash. The running register starts at the
// initial value given to NewDigest and is restored by Reset.
type Digest[T Register] struct {
	engine Engine[T]
	init   T
	crc    T
}

var _ hash.Hash = (*Digest[uint32])(nil)

// NewDigest returns a Digest computing CRCs with e from init.
func NewDigest[T Register](e Engine[T], init T) *Digest[T] {
	return &Digest[T]{engine: e, init: init, crc: init}
}

// Write folds p into the running CRC. It never returns an error.
func (d *Digest[T]) Write(p []byte) (int, error) {
	d.crc = d.engine.Compute(p, d.crc)
	return len(p), nil
}

// Value returns the running CRC.
func (d *Digest[T]) Value() T { return d.crc }

// Sum appends the running CRC to b, most significant byte first.
func (d *Digest[T]) Sum(b []byte) []byte {
	return Append(b, d.crc, Left)
}

func (d *Digest[T]) Reset() { d.crc = d.init }

func (d *Digest[T]) Size() int { return int(Width[T]() / 8) }

func (d *Digest[T]) BlockSize() int { return 1 }

// Append appends crc to dst in the byte order an engine shifting in dir
// consumes it: big-endian for Left, little-endian for Right. Running the
// engine over data followed by its appended CRC leaves a zero register.
func Append[T Register](dst []byte, crc T, dir Direction) []byte {
	n := Width[T]() / 8
	for i := uint(0); i < n; i++ {
		shift := 8 * i
		if dir == Left {
			shift = 8 * (n - 1 - i)
		}
		dst = append(dst, byte(crc>>shift))
	}
	return dst
}
