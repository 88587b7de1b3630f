package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerlinPlacerFollowsNoise(t *testing.T) {
	const side, n = 1000.0, 5000

	pp, ok := newPlacer(PlacementPerlin, rand.New(rand.NewSource(21))).(*perlinPlacer)
	require.True(t, ok)
	up := newPlacer(PlacementUniform, rand.New(rand.NewSource(22)))

	var clustered, spread float64
	for i := 0; i < n; i++ {
		x, y := pp.place(side)
		require.True(t, x >= 0 && x < side && y >= 0 && y < side)
		clustered += pp.density(x/side, y/side)

		x, y = up.place(side)
		spread += pp.density(x/side, y/side)
	}

	// Accepted points should sit where the noise field is dense.
	assert.Greater(t, clustered/n, spread/n)
}

func TestPerlinDensityRange(t *testing.T) {
	pp := newPlacer(PlacementPerlin, rand.New(rand.NewSource(4))).(*perlinPlacer)
	for u := 0.0; u <= 1; u += 0.05 {
		for v := 0.0; v <= 1; v += 0.05 {
			d := pp.density(u, v)
			assert.True(t, d >= 0 && d <= 1, "density(%g, %g) = %g", u, v, d)
		}
	}
	// Lattice points of the noise carry no gradient contribution.
	assert.InDelta(t, 0.5, pp.density(0, 0), 1e-9)
}

func TestNewPlacerDefaultsToUniform(t *testing.T) {
	_, ok := newPlacer(PlacementUniform, rand.New(rand.NewSource(1))).(uniformPlacer)
	assert.True(t, ok)
}
