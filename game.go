package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivierh59500/bounce-go/sim"
)

const ParticleSize = 20.0

// Game drives a sim.Engine from the Ebitengine loop. Ebitengine calls
// Update at the configured TPS and never runs Draw concurrently with it.
type Game struct {
	engine *sim.Engine
	Paused bool
}

// NewGame wraps an engine.
func NewGame(e *sim.Engine) *Game {
	return &Game{engine: e}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.step()
	return nil
}

func (g *Game) step() {
	if g.Paused {
		return
	}
	g.engine.Tick()
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	for _, p := range g.engine.Positions() {
		sx, sy := g.worldToScreen(p)
		vector.DrawFilledRect(screen,
			float32(sx-ParticleSize/2), float32(sy-ParticleSize/2),
			ParticleSize, ParticleSize, color.Black, false)
	}

	status := fmt.Sprintf("tick %d", g.engine.Ticks())
	if g.Paused {
		status += " (paused)"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the arena size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	a := g.engine.Arena()
	side := int(a.Max - a.Min)
	return side, side
}

// handleInput processes keyboard input
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// worldToScreen maps arena coordinates to pixels, with y growing upwards.
func (g *Game) worldToScreen(p sim.Position) (float64, float64) {
	a := g.engine.Arena()
	return p.X - a.Min, a.Max - p.Y
}
