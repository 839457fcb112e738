package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegame/internal/life"
	"lifegame/internal/render"
)

// pollInterval is how often the ticker wakes the event loop so autorun can
// check the pacer. Finer than the fastest supported TPS.
const pollInterval = 5 * time.Millisecond

// tpsStep is the speed change applied per +/- key press.
const tpsStep = 5

// App drives one interactive session: it owns the engine and translates
// terminal events into engine operations. The engine is only ever touched
// from the event loop goroutine.
type App struct {
	eng     *life.Engine
	painter *render.Painter
	pacer   *FixedStep
	prob    float64
	running bool

	// last cell toggled while button 1 is held, so a drag paints each cell
	// once instead of flickering it.
	lastToggle [2]int
	dragging   bool
}

// New constructs an App around the provided engine.
func New(eng *life.Engine, cfg *Config) *App {
	return &App{
		eng:     eng,
		painter: render.NewPainter(),
		pacer:   NewFixedStep(cfg.TPS),
		prob:    cfg.Probability,
	}
}

// Run executes the event loop until the user quits. The screen must already
// be initialized; Fini is left to the caller.
func (a *App) Run(screen tcell.Screen) {
	screen.EnableMouse()
	screen.Clear()
	a.draw(screen)

	quit := make(chan struct{})
	defer close(quit)
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-quit:
				return
			}
		}
	}()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return
			}
			a.draw(screen)
		case *tcell.EventMouse:
			if a.handleMouse(ev) {
				a.draw(screen)
			}
		case *tcell.EventInterrupt:
			if a.running && a.pacer.ShouldStep() {
				a.eng.Evolve()
				a.draw(screen)
			}
		case *tcell.EventResize:
			screen.Sync()
			a.draw(screen)
		}
	}
}

// handleKey dispatches one key event. It returns false when the session ends.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'c':
		a.eng.ResetByClear()
	case 'r':
		// prob was validated at startup, so this cannot fail.
		_ = a.eng.ResetByRandom(a.prob)
	case 'e', 'n':
		a.eng.Evolve()
	case ' ':
		a.running = !a.running
	case '+', '=':
		a.pacer.SetTPS(a.pacer.TPS() + tpsStep)
	case '-', '_':
		a.pacer.SetTPS(a.pacer.TPS() - tpsStep)
	}
	return true
}

// handleMouse toggles the cell under button-1 presses and drags, reporting
// whether the board changed. Clicks outside the grid surface ErrOutOfBounds
// from the engine; the session drops them instead of crashing.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		a.dragging = false
		return false
	}
	x, y := render.CellAt(ev.Position())
	cell := [2]int{x, y}
	if a.dragging && cell == a.lastToggle {
		return false
	}
	if _, err := a.eng.ToggleCell(x, y); err != nil {
		return false
	}
	a.dragging = true
	a.lastToggle = cell
	return true
}

func (a *App) draw(screen tcell.Screen) {
	a.painter.Blit(screen, a.eng)
	a.painter.Status(screen, a.eng, a.running, a.pacer.TPS())
	screen.Show()
}
