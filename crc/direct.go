package crc

// Direct computes CRCs bit by bit. It holds no table, trading speed for a
// few words of state.
type Direct[T Register] struct {
	divider[T]
}

// NewDirect returns a bitwise engine for poly, given in natural notation.
func NewDirect[T Register](poly T, dir Direction) Direct[T] {
	return Direct[T]{newDivider(poly, dir)}
}

// Compute returns the CRC of data starting from seed. Empty data returns seed.
func (d Direct[T]) Compute(data []byte, seed T) T {
	crc := seed
	for _, v := range data {
		crc ^= T(v) << d.pack
		crc = d.divide(crc)
	}
	return crc
}
