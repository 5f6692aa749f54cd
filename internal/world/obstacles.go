package world

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"braitenberg/internal/core"
)

// referenceGridSize is the resolution DefaultObstacles is laid out for.
const referenceGridSize = 1000

// Rect is an axis-aligned obstacle region in cell-index space covering
// X0 <= ix < X1 and Y0 <= iy < Y1.
type Rect struct {
	X0 int `yaml:"x0"`
	X1 int `yaml:"x1"`
	Y0 int `yaml:"y0"`
	Y1 int `yaml:"y1"`
}

func (r Rect) String() string {
	return fmt.Sprintf("%d:%d:%d:%d", r.X0, r.X1, r.Y0, r.Y1)
}

// DefaultObstacles returns the three interior walls of the reference layout
// scaled to an n×n grid.
func DefaultObstacles(n int) []Rect {
	walls := []Rect{
		{X0: 0, X1: 300, Y0: 397, Y1: 400},
		{X0: 700, X1: 1000, Y0: 597, Y1: 600},
		{X0: 500, X1: 503, Y0: 0, Y1: 800},
	}
	if n == referenceGridSize {
		return walls
	}
	scale := func(v int) int { return v * n / referenceGridSize }
	for i, w := range walls {
		walls[i] = Rect{X0: scale(w.X0), X1: scale(w.X1), Y0: scale(w.Y0), Y1: scale(w.Y1)}
		// Keep thin walls at least one cell thick.
		if walls[i].X1 <= walls[i].X0 {
			walls[i].X1 = walls[i].X0 + 1
		}
		if walls[i].Y1 <= walls[i].Y0 {
			walls[i].Y1 = walls[i].Y0 + 1
		}
	}
	return walls
}

// ParseRects decodes a "x0:x1:y0:y1;..." list. An empty string or "none"
// yields no rects.
func ParseRects(s string) ([]Rect, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return nil, nil
	}
	var rects []Rect
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.Split(item, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("rect %q: want x0:x1:y0:y1", item)
		}
		var vals [4]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("rect %q: %w", item, err)
			}
			vals[i] = v
		}
		rects = append(rects, Rect{X0: vals[0], X1: vals[1], Y0: vals[2], Y1: vals[3]})
	}
	return rects, nil
}

// FormatRects is the inverse of ParseRects.
func FormatRects(rects []Rect) string {
	if len(rects) == 0 {
		return "none"
	}
	parts := make([]string, len(rects))
	for i, r := range rects {
		parts[i] = r.String()
	}
	return strings.Join(parts, ";")
}

// ObstacleMap is a bounded occupancy grid over [0,1)². Its border cells and
// configured rects are occupied; anything outside the unit square counts as
// an obstacle. The map is not modified after construction.
type ObstacleMap struct {
	n    int
	grid *core.Grid
}

// NewObstacleMap builds an n×n map with occupied borders and the given rects.
func NewObstacleMap(n int, rects []Rect) *ObstacleMap {
	if n <= 0 {
		n = 1
	}
	g := core.NewGrid(n, n)
	g.FillBorder()
	for _, r := range rects {
		g.FillRect(r.X0, r.Y0, r.X1, r.Y1)
	}
	return &ObstacleMap{n: n, grid: g}
}

// Size returns the grid resolution.
func (m *ObstacleMap) Size() int { return m.n }

// Occupied reports whether the cell (ix, iy) is blocked.
func (m *ObstacleMap) Occupied(ix, iy int) bool { return m.grid.Occupied(ix, iy) }

// OccupiedCount returns the number of blocked cells.
func (m *ObstacleMap) OccupiedCount() int { return m.grid.Count() }

// Cell quantises p to cell indices. ok is false when p lies outside [0,1)².
func (m *ObstacleMap) Cell(p r2.Vec) (ix, iy int, ok bool) {
	if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
		return 0, 0, false
	}
	ix = int(math.Floor(p.X * float64(m.n)))
	iy = int(math.Floor(p.Y * float64(m.n)))
	if ix >= m.n || iy >= m.n {
		return 0, 0, false
	}
	return ix, iy, true
}

// IsBlocked reports whether p is out of range or inside an occupied cell.
func (m *ObstacleMap) IsBlocked(p r2.Vec) bool {
	ix, iy, ok := m.Cell(p)
	if !ok {
		return true
	}
	return m.grid.Occupied(ix, iy)
}

// Raycast marches from origin along direction in increments of step and
// returns the distance covered before the first blocked sample. A clear ray
// returns exactly maxDist, so a hit at the very end of the range reads the
// same as no hit at all.
func (m *ObstacleMap) Raycast(origin r2.Vec, direction, maxDist, step float64) float64 {
	if step <= 0 || maxDist <= 0 {
		return math.Max(maxDist, 0)
	}
	dir := r2.Vec{X: math.Cos(direction), Y: math.Sin(direction)}
	for i := 0; float64(i)*step <= maxDist; i++ {
		sample := r2.Add(origin, r2.Scale(float64(i+1)*step, dir))
		if m.IsBlocked(sample) {
			return float64(i) * step
		}
	}
	return maxDist
}

// Admit returns p unchanged when it is free, or false when the move must be
// rejected.
func (m *ObstacleMap) Admit(p r2.Vec) (r2.Vec, bool) {
	if m.IsBlocked(p) {
		return r2.Vec{}, false
	}
	return p, true
}
