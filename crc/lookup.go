package crc

// Table holds the register state for each byte value after eight rounds of
// division, starting from the byte packed into an otherwise empty register.
type Table[T Register] [256]T

// Lookup computes CRCs a byte at a time from a precomputed Table.
type Lookup[T Register] struct {
	divider[T]

	tbl Table[T]
}

// NewLookup builds the table for poly, given in natural notation.
func NewLookup[T Register](poly T, dir Direction) *Lookup[T] {
	l := &Lookup[T]{}
	l.divider = newDivider(poly, dir)

	for tIdx := range l.tbl {
		l.tbl[tIdx] = l.divide(T(tIdx) << l.pack)
	}

	return l
}

// Table returns a copy of the lookup table, indexed by byte value.
func (l *Lookup[T]) Table() Table[T] {
	return l.tbl
}

// Compute returns the CRC of data starting from seed. Empty data returns seed.
func (l *Lookup[T]) Compute(data []byte, seed T) T {
	crc := seed
	for _, v := range data {
		crc = l.shifter.Shift(crc, 8) ^ l.tbl[byte(crc>>l.pack)^v]
	}
	return crc
}
