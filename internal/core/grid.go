package core

// Grid stores a 2D occupancy map in row-major order. Cells outside the grid
// read as occupied.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Occupied reports whether the cell is marked. Out-of-bounds cells are occupied.
func (g *Grid) Occupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.data[g.Index(x, y)]
}

// Set marks or clears a single cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, v bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = v
}

// FillRect marks every cell with x0 <= x < x1 and y0 <= y < y1, clipped to the grid.
func (g *Grid) FillRect(x0, y0, x1, y1 int) {
	x0, x1 = clampSpan(x0, x1, g.W)
	y0, y1 = clampSpan(y0, y1, g.H)
	for y := y0; y < y1; y++ {
		row := y * g.W
		for x := x0; x < x1; x++ {
			g.data[row+x] = true
		}
	}
}

// FillBorder marks the outermost ring of cells.
func (g *Grid) FillBorder() {
	for x := 0; x < g.W; x++ {
		g.data[g.Index(x, 0)] = true
		g.data[g.Index(x, g.H-1)] = true
	}
	for y := 0; y < g.H; y++ {
		g.data[g.Index(0, y)] = true
		g.data[g.Index(g.W-1, y)] = true
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Clear empties the grid.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

func clampSpan(lo, hi, limit int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
