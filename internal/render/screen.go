package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"lifegame/internal/life"
)

// CellColumns is how many screen columns one grid cell occupies. Terminal
// glyphs are roughly twice as tall as wide, so two columns keep cells square.
const CellColumns = 2

// Painter blits engine state onto a tcell screen.
type Painter struct {
	alive tcell.Style
	dead  tcell.Style
	info  tcell.Style
}

// NewPainter returns a Painter with the default white-on-black palette.
func NewPainter() *Painter {
	return &Painter{
		alive: tcell.StyleDefault.Background(tcell.ColorWhite),
		dead:  tcell.StyleDefault.Background(tcell.ColorBlack),
		info:  tcell.StyleDefault,
	}
}

// Blit redraws every cell of the engine onto the screen, anchored at (0, 0).
func (p *Painter) Blit(screen tcell.Screen, eng *life.Engine) {
	w, h := eng.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alive, err := eng.CellState(x, y)
			if err != nil {
				return
			}
			style := p.dead
			if alive {
				style = p.alive
			}
			for i := 0; i < CellColumns; i++ {
				screen.SetContent(x*CellColumns+i, y, ' ', nil, style)
			}
		}
	}
}

// Status writes the session status line on the row below the grid.
func (p *Painter) Status(screen tcell.Screen, eng *life.Engine, running bool, tps int) {
	w, h := eng.Dimensions()
	state := "paused"
	if running {
		state = "running"
	}
	text := fmt.Sprintf("gen %d | pop %d | %s @ %d tps | [c]lear [r]andom [e]volve [space]run [+/-]speed [q]uit",
		eng.Generation(), eng.Population(), state, tps)
	cols, _ := screen.Size()
	if grid := w * CellColumns; grid > cols {
		cols = grid
	}
	for i := 0; i < cols; i++ {
		r := ' '
		if i < len(text) {
			r = rune(text[i])
		}
		screen.SetContent(i, h, r, nil, p.info)
	}
}

// CellAt maps a screen position to the grid cell under it. The result may be
// out of range; the engine's bounds check is the authority on that.
func CellAt(px, py int) (int, int) {
	x := px / CellColumns
	if px < 0 {
		x = -1
	}
	return x, py
}
