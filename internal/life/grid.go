package life

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Grid stores the alive/dead state of a rectangular cell matrix in row-major
// order. Dimensions are fixed at construction; all access is bounds checked.
type Grid struct {
	width  int
	height int
	cells  []uint8
}

// NewGrid allocates a grid of the given dimensions with every cell dead.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	return &Grid{width: width, height: height, cells: make([]uint8, width*height)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// index returns the linear slice index for coordinates (x, y).
func (g *Grid) index(x, y int) int { return y*g.width + x }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) boundsErr(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
}

// Get reports whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, g.boundsErr(x, y)
	}
	return g.cells[g.index(x, y)] != 0, nil
}

// Set writes the cell at (x, y) to the given state.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return g.boundsErr(x, y)
	}
	var v uint8
	if alive {
		v = 1
	}
	g.cells[g.index(x, y)] = v
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Randomize sets each cell independently alive with probability p, drawing
// from the provided source. p=0 leaves every cell dead, p=1 every cell alive.
func (g *Grid) Randomize(rng *rand.Rand, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}
	for i := range g.cells {
		g.cells[i] = 0
		if rng.Float64() < p {
			g.cells[i] = 1
		}
	}
	return nil
}

// LiveNeighborCount counts alive cells among the eight Moore neighbors of
// (x, y). The board does not wrap: neighbors past the edge count as dead.
func (g *Grid) LiveNeighborCount(x, y int) (int, error) {
	if !g.inBounds(x, y) {
		return 0, g.boundsErr(x, y)
	}
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.inBounds(nx, ny) {
				continue
			}
			count += int(g.cells[g.index(nx, ny)])
		}
	}
	return count, nil
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}
