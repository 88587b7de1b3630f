package sim

import "math"

// Particle is a point mass moving at constant speed along a heading.
// Heading is stored in radians and measured from the +y axis towards +x.
type Particle struct {
	X, Y    float64 // Position
	Speed   float64
	Heading float64 // Radians
	Mass    float64 // Carried but unused by motion
}

// NewParticle returns a particle at rest at (x, y).
func NewParticle(x, y, mass float64) *Particle {
	return &Particle{
		X:    x,
		Y:    y,
		Mass: mass,
	}
}

// SetVelocity replaces the particle's speed and heading. The heading is
// given in degrees and must lie in [0, 360]. On error the particle is
// left untouched.
func (p *Particle) SetVelocity(speed, degrees float64) error {
	if !(degrees >= 0 && degrees <= 360) {
		return &HeadingError{Degrees: degrees}
	}
	if !(speed >= 0) || math.IsInf(speed, 1) {
		return &SpeedError{Speed: speed}
	}
	p.Speed = speed
	p.Heading = degrees * math.Pi / 180
	return nil
}

// HeadingDegrees returns the heading converted back to degrees.
func (p *Particle) HeadingDegrees() float64 {
	return p.Heading * 180 / math.Pi
}

// Advance integrates the position over dt.
func (p *Particle) Advance(dt float64) {
	dx := math.Sin(p.Heading) * p.Speed
	dy := math.Cos(p.Heading) * p.Speed
	p.X += dx * dt
	p.Y += dy * dt
}
