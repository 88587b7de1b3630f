package sim

import (
	"fmt"
	"log"
	"math"
	"math/rand"
)

// Arena is the square [Min, Max] x [Min, Max].
type Arena struct {
	Min, Max float64
}

// Crossing reports whether v sits on or beyond a wall while the
// direction d still points away from the arena.
func (a Arena) Crossing(v, d float64) bool {
	return (v >= a.Max && d > 0) || (v <= a.Min && d < 0)
}

// Position is a particle location handed to the renderer.
type Position struct {
	X, Y float64
}

// Engine owns the particles and advances them tick by tick.
type Engine struct {
	particles []*Particle
	arena     Arena
	dt        float64
	ticks     uint64
	trace     *log.Logger
}

// NewEngine creates cfg.Particles particles at random positions inside
// the arena, each with a random speed in [MinSpeed, MaxSpeed) and a
// random heading in [0, 360) degrees.
func NewEngine(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.CheckInit(); err != nil {
		return nil, err
	}

	e := &Engine{
		particles: make([]*Particle, cfg.Particles),
		arena:     cfg.Arena(),
		dt:        cfg.DT(),
	}

	pl := newPlacer(cfg.Placement, rng)
	for i := range e.particles {
		x, y := pl.place(cfg.ArenaSide)
		p := NewParticle(x, y, cfg.Mass)
		speed := cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)
		if err := p.SetVelocity(speed, rng.Float64()*360); err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		e.particles[i] = p
	}

	return e, nil
}

// NewEngineWithParticles builds an engine around copies of ps, keeping
// their order.
func NewEngineWithParticles(arena Arena, dt float64, ps []*Particle) *Engine {
	e := &Engine{
		particles: make([]*Particle, len(ps)),
		arena:     arena,
		dt:        dt,
	}
	for i, p := range ps {
		cp := *p
		e.particles[i] = &cp
	}
	return e
}

// SetTrace makes the engine log every reflection to l. A nil logger
// disables tracing.
func (e *Engine) SetTrace(l *log.Logger) {
	e.trace = l
}

// ReflectX mirrors a heading off a wall perpendicular to the x axis.
func ReflectX(heading float64) float64 {
	return 2*math.Pi - heading
}

// ReflectY mirrors a heading off a wall perpendicular to the y axis.
// Headings up to pi use pi - h, the rest 2pi - h.
func ReflectY(heading float64) float64 {
	if heading <= math.Pi {
		return math.Pi - heading
	}
	return 2*math.Pi - heading
}

// Step advances every particle by dt and reflects the ones crossing a
// wall, that is on or past it and still heading outwards. A particle
// already turned back is left alone while it re-enters. Both axes are
// checked, so a corner hit applies both reflections.
//
// The y check runs first: for headings past pi ReflectY also flips the
// x component, and the x check has to see that.
func (e *Engine) Step(dt float64) {
	for i, p := range e.particles {
		p.Advance(dt)

		if e.arena.Crossing(p.Y, math.Cos(p.Heading)) {
			p.Heading = ReflectY(p.Heading)
			e.logReflection(i, "y", p)
		}
		if e.arena.Crossing(p.X, math.Sin(p.Heading)) {
			p.Heading = ReflectX(p.Heading)
			e.logReflection(i, "x", p)
		}
	}
	e.ticks++
}

// Tick is Step with the engine's own time increment.
func (e *Engine) Tick() {
	e.Step(e.dt)
}

func (e *Engine) logReflection(i int, axis string, p *Particle) {
	if e.trace == nil {
		return
	}
	e.trace.Printf("tick %d: particle %d reflected on %s at (%.3f, %.3f), heading %.2f deg",
		e.ticks, i, axis, p.X, p.Y, p.HeadingDegrees())
}

// Positions returns the current positions in creation order. The slice
// is a fresh copy.
func (e *Engine) Positions() []Position {
	out := make([]Position, len(e.particles))
	for i, p := range e.particles {
		out[i] = Position{X: p.X, Y: p.Y}
	}
	return out
}

// Particle returns a copy of the i-th particle.
func (e *Engine) Particle(i int) Particle {
	return *e.particles[i]
}

// Len returns the number of particles.
func (e *Engine) Len() int { return len(e.particles) }

// Arena returns the walls the particles bounce between.
func (e *Engine) Arena() Arena { return e.arena }

// DT returns the time increment used by Tick.
func (e *Engine) DT() float64 { return e.dt }

// Ticks returns how many steps have run.
func (e *Engine) Ticks() uint64 { return e.ticks }
