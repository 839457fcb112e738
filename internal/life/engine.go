package life

import "math/rand/v2"

// DefaultProbability is the fill probability used for random resets when the
// caller does not pick one.
const DefaultProbability = 0.5

// EventKind identifies which engine operation produced an Event.
type EventKind uint8

const (
	// EventReset fires after ResetByClear and ResetByRandom.
	EventReset EventKind = iota
	// EventSet fires after a single cell is written through the engine.
	EventSet
	// EventEvolution fires after each completed generation step.
	EventEvolution
)

// CellChange describes the cell written by a Set event.
type CellChange struct {
	X, Y  int
	Alive bool
}

// Event is the payload delivered to the engine observer.
type Event struct {
	Kind       EventKind
	Generation int
	Width      int
	Height     int
	Population int
	Cell       *CellChange
}

// Engine owns a Grid exclusively and advances it one whole generation at a
// time. Callers only ever observe fully computed generations: Evolve works on
// a frozen copy of the current state and swaps the result in at the end.
type Engine struct {
	grid     *Grid
	scratch  []uint8
	gen      int
	rng      *rand.Rand
	observer func(Event)
}

// New constructs an engine whose grid starts all dead, with random resets
// seeded from the wall clock.
func New(width, height int) (*Engine, error) {
	return NewWithRand(width, height, NewTimeRNG())
}

// NewWithRand is New with a caller-supplied random source, so tests can pin
// the patterns produced by ResetByRandom. A nil source falls back to the
// clock-seeded default.
func NewWithRand(width, height int, rng *rand.Rand) (*Engine, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewTimeRNG()
	}
	return &Engine{grid: grid, scratch: make([]uint8, width*height), rng: rng}, nil
}

// SetObserver registers a callback invoked after resets, cell writes and
// evolution steps. Pass nil to remove it.
func (e *Engine) SetObserver(fn func(Event)) { e.observer = fn }

func (e *Engine) emit(kind EventKind, cell *CellChange) {
	if e.observer == nil {
		return
	}
	e.observer(Event{
		Kind:       kind,
		Generation: e.gen,
		Width:      e.grid.width,
		Height:     e.grid.height,
		Population: e.grid.Population(),
		Cell:       cell,
	})
}

// ResetByClear kills every cell and rewinds the generation counter.
func (e *Engine) ResetByClear() {
	e.grid.Clear()
	e.gen = 0
	e.emit(EventReset, nil)
}

// ResetByRandom fills the grid with cells alive at probability p and rewinds
// the generation counter. Each call draws a fresh pattern from the engine's
// random source.
func (e *Engine) ResetByRandom(p float64) error {
	if err := e.grid.Randomize(e.rng, p); err != nil {
		return err
	}
	e.gen = 0
	e.emit(EventReset, nil)
	return nil
}

// Evolve advances the board by one generation. Every next-generation cell is
// computed from the untouched current generation; the buffers swap only after
// the whole board is done, so no neighborhood ever sees a half-updated state.
//
// Rule per cell, with n live neighbors: a live cell survives on n==2 or n==3,
// a dead cell is born on n==3, everything else is dead.
func (e *Engine) Evolve() {
	g := e.grid
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			n, _ := g.LiveNeighborCount(x, y)
			idx := g.index(x, y)
			alive := g.cells[idx] != 0
			e.scratch[idx] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				e.scratch[idx] = 1
			}
		}
	}
	g.cells, e.scratch = e.scratch, g.cells
	e.gen++
	e.emit(EventEvolution, nil)
}

// CellState reports whether the cell at (x, y) is alive.
func (e *Engine) CellState(x, y int) (bool, error) {
	return e.grid.Get(x, y)
}

// SetCell writes one cell. The presentation layer mutates cells only through
// this path, never via the grid directly.
func (e *Engine) SetCell(x, y int, alive bool) error {
	if err := e.grid.Set(x, y, alive); err != nil {
		return err
	}
	e.emit(EventSet, &CellChange{X: x, Y: y, Alive: alive})
	return nil
}

// ToggleCell flips one cell and returns its new state.
func (e *Engine) ToggleCell(x, y int) (bool, error) {
	alive, err := e.grid.Get(x, y)
	if err != nil {
		return false, err
	}
	if err := e.SetCell(x, y, !alive); err != nil {
		return false, err
	}
	return !alive, nil
}

// Dimensions returns the grid width and height.
func (e *Engine) Dimensions() (int, int) {
	return e.grid.width, e.grid.height
}

// Generation returns how many evolution steps have run since the last reset.
func (e *Engine) Generation() int { return e.gen }

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.grid.Population() }

// ForEachLive calls fn for every live cell in row-major order.
func (e *Engine) ForEachLive(fn func(x, y int)) {
	for y := 0; y < e.grid.height; y++ {
		for x := 0; x < e.grid.width; x++ {
			if e.grid.cells[e.grid.index(x, y)] != 0 {
				fn(x, y)
			}
		}
	}
}

const (
	glyphAlive = 'o'
	glyphDead  = '.'
)

// Dump renders the board as one line per row, 'o' for live cells and '.' for
// dead ones. Meant for logs and the headless dumper; the interactive terminal
// layer draws its own richer view.
func (e *Engine) Dump() []string {
	g := e.grid
	lines := make([]string, g.height)
	row := make([]byte, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			row[x] = glyphDead
			if g.cells[g.index(x, y)] != 0 {
				row[x] = glyphAlive
			}
		}
		lines[y] = string(row)
	}
	return lines
}
