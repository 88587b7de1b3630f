package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParticleAtRest(t *testing.T) {
	p := NewParticle(12, 34, 10)
	assert.Equal(t, 12.0, p.X)
	assert.Equal(t, 34.0, p.Y)
	assert.Equal(t, 10.0, p.Mass)
	assert.Zero(t, p.Speed)
	assert.Zero(t, p.Heading)
}

func TestSetVelocityConvertsDegrees(t *testing.T) {
	for _, deg := range []float64{0, 1, 45, 90, 135.5, 180, 270, 359.999, 360} {
		p := NewParticle(0, 0, 1)
		require.NoError(t, p.SetVelocity(250, deg), "degrees = %g", deg)
		assert.Equal(t, 250.0, p.Speed)
		assert.InDelta(t, deg*math.Pi/180, p.Heading, 1e-12, "degrees = %g", deg)
		assert.InDelta(t, deg, p.HeadingDegrees(), 1e-9, "degrees = %g", deg)
	}
}

func TestSetVelocityRejectsHeading(t *testing.T) {
	bad := []float64{-1e-9, -90, 360.0001, 720, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, deg := range bad {
		p := NewParticle(0, 0, 1)
		require.NoError(t, p.SetVelocity(100, 30))

		err := p.SetVelocity(300, deg)
		require.Error(t, err, "degrees = %g", deg)
		assert.True(t, errors.Is(err, ErrInvalidHeading))

		var he *HeadingError
		if assert.True(t, errors.As(err, &he)) && !math.IsNaN(deg) {
			assert.Equal(t, deg, he.Degrees)
		}

		assert.Equal(t, 100.0, p.Speed, "speed changed for degrees = %g", deg)
		assert.InDelta(t, math.Pi/6, p.Heading, 1e-12, "heading changed for degrees = %g", deg)
	}
}

func TestSetVelocityRejectsSpeed(t *testing.T) {
	for _, speed := range []float64{-1, math.NaN(), math.Inf(1)} {
		p := NewParticle(0, 0, 1)
		require.NoError(t, p.SetVelocity(100, 30))

		err := p.SetVelocity(speed, 90)
		assert.True(t, errors.Is(err, ErrInvalidSpeed), "speed = %g", speed)
		assert.Equal(t, 100.0, p.Speed)
		assert.InDelta(t, math.Pi/6, p.Heading, 1e-12)
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name   string
		deg    float64
		dx, dy float64
	}{
		{"north", 0, 0, 2},
		{"east", 90, 2, 0},
		{"south", 180, 0, -2},
		{"west", 270, -2, 0},
		{"northeast", 45, math.Sqrt2, math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParticle(100, 200, 1)
			require.NoError(t, p.SetVelocity(200, tt.deg))
			p.Advance(0.01)
			assert.InDelta(t, 100+tt.dx, p.X, 1e-9)
			assert.InDelta(t, 200+tt.dy, p.Y, 1e-9)
		})
	}
}

func TestAdvanceAtRestStaysPut(t *testing.T) {
	p := NewParticle(5, 6, 1)
	p.Advance(10)
	assert.Equal(t, 5.0, p.X)
	assert.Equal(t, 6.0, p.Y)
}
