package game

// Scenario is a reference position with its known hash.
type Scenario struct {
	Name     string
	Depth    int
	Cells    [Cells]uint8
	Expected uint32
	Long     bool // takes seconds rather than milliseconds
}

func (s Scenario) Board() Board {
	return NewBoard(s.Depth, s.Cells)
}

var Scenarios = []Scenario{
	{Name: "empty-depth-1", Depth: 1, Cells: [Cells]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0}, Expected: 111111111},
	{Name: "no-capture", Depth: 1, Cells: [Cells]uint8{6, 6, 6, 6, 6, 6, 6, 6, 0}, Expected: 666666661},
	{Name: "single-capture", Depth: 1, Cells: [Cells]uint8{6, 6, 6, 6, 6, 6, 1, 0, 1}, Expected: 666666020},
	{Name: "two-placements", Depth: 1, Cells: [Cells]uint8{5, 5, 5, 0, 0, 5, 5, 5, 5}, Expected: 36379286},
	{Name: "eleven-captures", Depth: 1, Cells: [Cells]uint8{6, 1, 6, 1, 0, 1, 6, 1, 6}, Expected: 264239762},
	{Name: "two-end-states", Depth: 20, Cells: [Cells]uint8{0, 6, 0, 2, 2, 2, 1, 6, 1}, Expected: 322444322},
	{Name: "deep", Depth: 36, Cells: [Cells]uint8{6, 0, 4, 2, 0, 2, 4, 0, 0}, Expected: 350917228, Long: true},
}
