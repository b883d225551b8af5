package game

// Transformation is one of the 8 symmetries of the square, expressed as a set
// of three self-inverse operations applied in the order H, V, T.
type Transformation uint8

const (
	flipRows    Transformation = 1 << iota // H: row 0 <-> row 2
	flipColumns                            // V: column 0 <-> column 2
	transpose                              // T: rows <-> columns
)

const (
	Identity       Transformation = 0
	HorizontalFlip                = flipRows
	VerticalFlip                  = flipColumns
	Transpose                     = transpose
	Rotate180                     = flipRows | flipColumns
	Rotate270                     = flipRows | transpose
	Rotate90                      = flipColumns | transpose
	AntiTranspose                 = flipRows | flipColumns | transpose
)

var Transformations = [...]Transformation{
	Identity, HorizontalFlip, VerticalFlip, Rotate90,
	Rotate180, Rotate270, AntiTranspose, Transpose,
}

func (t Transformation) String() string {
	switch t {
	case Identity:
		return "identity"
	case HorizontalFlip:
		return "horizontal-flip"
	case VerticalFlip:
		return "vertical-flip"
	case Transpose:
		return "transpose"
	case Rotate180:
		return "rotate-180"
	case Rotate270:
		return "rotate-270"
	case Rotate90:
		return "rotate-90"
	case AntiTranspose:
		return "anti-transpose"
	}
	return "unknown"
}

// Inverse undoes t. Every transformation is its own inverse except the two
// quarter rotations, which undo each other.
func (t Transformation) Inverse() Transformation {
	switch t {
	case Rotate90:
		return Rotate270
	case Rotate270:
		return Rotate90
	}
	return t
}

const (
	slot0 Board = slotMask << (cellBits * iota)
	slot1
	slot2
	slot3
	slot4
	slot5
	slot6
	slot7
	slot8
)

// Transform permutes the cells of b. The depth is preserved.
func (b Board) Transform(t Transformation) Board {
	depth := b &^ gridMask
	g := b & gridMask
	if t&flipRows != 0 {
		g = (g&(slot6|slot7|slot8))>>(6*cellBits) |
			g&(slot3|slot4|slot5) |
			(g&(slot0|slot1|slot2))<<(6*cellBits)
	}
	if t&flipColumns != 0 {
		g = (g&(slot2|slot5|slot8))>>(2*cellBits) |
			g&(slot1|slot4|slot7) |
			(g&(slot0|slot3|slot6))<<(2*cellBits)
	}
	if t&transpose != 0 {
		g = g&(slot0|slot4|slot8) |
			(g&(slot3|slot7))>>(2*cellBits) |
			(g&(slot1|slot5))<<(2*cellBits) |
			(g&slot6)>>(4*cellBits) |
			(g&slot2)<<(4*cellBits)
	}
	return g | depth
}

// Canonical returns the smallest key among the 8 symmetric variants of b and
// the transformation that produces it from b.
//
// Cell 8 holds the most significant bits, so the canonical board has the
// smallest corner in cell 8. When exactly one corner holds the minimum, only
// the flip bringing it to cell 8 and that flip followed by the transpose are
// candidates. Ties fall back to scanning all 8 transformations.
func (b Board) Canonical() (Board, Transformation) {
	corners := [...]struct {
		value uint8
		t     Transformation
	}{
		{b.Cell(8), Identity},
		{b.Cell(6), VerticalFlip},
		{b.Cell(2), HorizontalFlip},
		{b.Cell(0), Rotate180},
	}
	lowest := corners[0].value
	for _, c := range corners[1:] {
		lowest = min(lowest, c.value)
	}
	found := 0
	t := Identity
	for _, c := range corners {
		if c.value == lowest {
			found++
			t = c.t
		}
	}

	if found == 1 {
		key := b.Transform(t)
		transposed := key.Transform(Transpose)
		if transposed < key {
			return transposed, t | transpose
		}
		return key, t
	}

	canonical, ct := b, Identity
	for _, candidate := range Transformations {
		if key := b.Transform(candidate); key < canonical {
			canonical, ct = key, candidate
		}
	}
	return canonical, ct
}

// cellSources[t][i] is the cell whose value lands in cell i under t.
var cellSources [len(Transformations)][Cells]int

func init() {
	for t := Transformation(0); t < Transformation(len(cellSources)); t++ {
		for i := 0; i < Cells; i++ {
			src := i
			if t&transpose != 0 {
				src = (src%Side)*Side + src/Side
			}
			if t&flipColumns != 0 {
				src = (src/Side)*Side + (Side - 1 - src%Side)
			}
			if t&flipRows != 0 {
				src = (Side-1-src/Side)*Side + src%Side
			}
			cellSources[t][i] = src
		}
	}
}

// Transform permutes v the same way Board.Transform permutes cells.
func (v Vector) Transform(t Transformation) Vector {
	var out Vector
	for i, src := range cellSources[t] {
		out[i] = v[src]
	}
	return out
}

// ReverseTransform undoes Transform(t).
func (v Vector) ReverseTransform(t Transformation) Vector {
	return v.Transform(t.Inverse())
}
