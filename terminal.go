package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/olivierh59500/bounce-go/sim"
)

const particleRune = '●'

var (
	particleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// terminalHost renders the arena into a tcell screen. The last row is
// kept for the status line.
type terminalHost struct {
	screen tcell.Screen
	engine *sim.Engine
	period time.Duration
	paused bool
}

func runTerminal(e *sim.Engine, tickRate float64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	newTerminalHost(screen, e, tickRate).run()
	return nil
}

func newTerminalHost(screen tcell.Screen, e *sim.Engine, tickRate float64) *terminalHost {
	return &terminalHost{
		screen: screen,
		engine: e,
		period: time.Duration(float64(time.Second) / tickRate),
	}
}

// run ticks the engine until the user quits. Only this goroutine touches
// the engine; the event goroutine just forwards input.
func (h *terminalHost) run() {
	ticker := time.NewTicker(h.period)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	h.draw()
	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !h.paused {
				h.engine.Tick()
			}
			h.draw()
		}
	}
}

func (h *terminalHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// handleKey returns false when the user asked to quit.
func (h *terminalHost) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case ' ':
			h.paused = !h.paused
		}
	}
	return true
}

func (h *terminalHost) draw() {
	h.screen.Clear()
	w, rows := h.screen.Size()
	for _, p := range h.engine.Positions() {
		if x, y, ok := h.cell(p, w, rows-1); ok {
			h.screen.SetContent(x, y, particleRune, nil, particleStyle)
		}
	}

	status := fmt.Sprintf("tick %d  particles %d  [space] pause  [q] quit",
		h.engine.Ticks(), h.engine.Len())
	if h.paused {
		status += "  PAUSED"
	}
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		h.screen.SetContent(i, rows-1, r, nil, statusStyle)
	}
	h.screen.Show()
}

// cell maps an arena position onto a w x rows grid, y growing upwards.
// Positions outside the arena are not drawn.
func (h *terminalHost) cell(p sim.Position, w, rows int) (int, int, bool) {
	a := h.engine.Arena()
	side := a.Max - a.Min
	if w <= 0 || rows <= 0 || p.X < a.Min || p.X >= a.Max || p.Y < a.Min || p.Y >= a.Max {
		return 0, 0, false
	}
	x := int((p.X - a.Min) / side * float64(w))
	y := rows - 1 - int((p.Y-a.Min)/side*float64(rows))
	if x >= w || y < 0 {
		return 0, 0, false
	}
	return x, y, true
}
