package game

const (
	HashWidth = 30
	HashMask  = 1<<HashWidth - 1
)

// Vector accumulates, per cell position, the values of every terminal board
// reachable from a position. Components wrap like 32-bit unsigned integers;
// only the low HashWidth bits of the final fold are meaningful, so the wrap
// does not change the hash.
type Vector [Cells]uint32

func (v Vector) Add(other Vector) Vector {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

// Hash folds the components left to right as decimal digits and keeps the low
// HashWidth bits.
func (v Vector) Hash() uint32 {
	var h uint32
	for _, c := range v {
		h = h*10 + c
	}
	return h & HashMask
}
