package hwy

// Mask is a per-lane predicate produced by comparisons such as IsNaN.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes covered by the mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// GetBit reports whether lane i is set.
func (m Mask[T]) GetBit(i int) bool {
	return m.bits[i]
}

// CountTrue returns the number of set lanes.
func CountTrue[T Lanes](m Mask[T]) int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// AllFalse reports whether no lane is set.
func AllFalse[T Lanes](m Mask[T]) bool {
	return CountTrue(m) == 0
}
