package sim

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

const (
	perlinAlpha    = 2.0
	perlinBeta     = 2.0
	perlinOctaves  = 3
	perlinCells    = 4.0 // Noise periods across the arena
	perlinAttempts = 32
)

// placer picks starting positions inside [0, side) x [0, side).
type placer interface {
	place(side float64) (x, y float64)
}

func newPlacer(name string, rng *rand.Rand) placer {
	if name == PlacementPerlin {
		return &perlinPlacer{
			rng:   rng,
			noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, rng.Int63()),
		}
	}
	return uniformPlacer{rng: rng}
}

type uniformPlacer struct {
	rng *rand.Rand
}

func (u uniformPlacer) place(side float64) (float64, float64) {
	return u.rng.Float64() * side, u.rng.Float64() * side
}

// perlinPlacer rejection-samples uniform candidates, keeping each with a
// probability given by the noise field at that point.
type perlinPlacer struct {
	rng   *rand.Rand
	noise *perlin.Perlin
}

func (p *perlinPlacer) place(side float64) (float64, float64) {
	var x, y float64
	for i := 0; i < perlinAttempts; i++ {
		x = p.rng.Float64() * side
		y = p.rng.Float64() * side
		if p.rng.Float64() < p.density(x/side, y/side) {
			break
		}
	}
	return x, y
}

// density maps noise at unit coordinates (u, v) into [0, 1].
func (p *perlinPlacer) density(u, v float64) float64 {
	d := (p.noise.Noise2D(u*perlinCells, v*perlinCells) + 1) / 2
	if d < 0 {
		return 0
	} else if d > 1 {
		return 1
	}
	return d
}
