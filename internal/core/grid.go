package core

// Grid stores a toroidal field of 0/1 cell values in row-major order.
type Grid struct {
	Torus
	data []uint8
}

// NewGrid allocates a dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	t, err := NewTorus(w, h)
	if err != nil {
		return nil, err
	}
	return &Grid{Torus: t, data: make([]uint8, t.Len())}, nil
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Alive reports the state at packed index i.
func (g *Grid) Alive(i int) bool { return g.data[i] != 0 }

// Get returns the state at (x, y).
func (g *Grid) Get(x, y int) bool { return g.data[g.Index(x, y)] != 0 }

// Set writes the state at (x, y).
func (g *Grid) Set(x, y int, alive bool) {
	g.data[g.Index(x, y)] = bit(alive)
}

// LiveNeighbors sums the 8 toroidal neighbours of i.
func (g *Grid) LiveNeighbors(i int, scratch *[8]int) int {
	g.Neighbors(i, scratch)
	n := 0
	for _, j := range scratch {
		n += int(g.data[j])
	}
	return n
}

// Live returns the packed indices of every live cell in row-major order.
func (g *Grid) Live() []int {
	var live []int
	for i, c := range g.data {
		if c != 0 {
			live = append(live, i)
		}
	}
	return live
}

// Fill samples every cell with s, scanning rows top to bottom.
func (g *Grid) Fill(s Sampler) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.data[y*g.W+x] = bit(s(x, y))
		}
	}
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
