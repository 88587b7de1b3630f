package sim

import (
	"fmt"
	"math"

	"gopkg.in/gcfg.v1"
)

// Placement strategies.
const (
	PlacementUniform = "uniform"
	PlacementPerlin  = "perlin"
)

// Limits the hosts can render and pace: the window needs at least one
// pixel and ebiten at least one tick per second, the terminal ticker a
// non-zero period.
const (
	MinArenaSide = 1.0
	MinTickRate  = 1.0
	MaxTickRate  = 1e9
)

// Host surfaces.
const (
	HostWindow   = "window"
	HostTerminal = "terminal"
)

// ExampleConfigFile documents every option understood by ReadConfig.
const ExampleConfigFile = `[Simulation]

# Number of particles created at startup.
Particles = 10

# Side length of the square arena, in arena units. Particles live in
# [0, ArenaSide] x [0, ArenaSide]. At least 1.
ArenaSide = 1000

# Ticks per second, in [1, 1e9]. Every tick advances the simulation by
# 1 / TickRate.
TickRate = 100

# Initial speeds are drawn uniformly from [MinSpeed, MaxSpeed).
MinSpeed = 150
MaxSpeed = 400

# Mass given to every particle. It has no effect on motion.
# Mass = 10

# uniform | perlin. perlin clusters the starting positions.
# Placement = uniform

# Random seed. 0 seeds from the clock.
# Seed = 0

# window | terminal
# Host = window

# Log every wall reflection.
# Trace = false`

// Config holds the recognised simulation options.
type Config struct {
	Particles          int
	ArenaSide          float64
	TickRate           float64
	MinSpeed, MaxSpeed float64
	Mass               float64
	Placement          string
	Seed               int64
	Host               string
	Trace              bool
}

type configFile struct {
	Simulation Config
}

// DefaultConfig returns the built in defaults.
func DefaultConfig() Config {
	return Config{
		Particles: 10,
		ArenaSide: 1000,
		TickRate:  100,
		MinSpeed:  150,
		MaxSpeed:  400,
		Mass:      10,
		Placement: PlacementUniform,
		Host:      HostWindow,
	}
}

// ReadConfig reads a gcfg file on top of DefaultConfig.
func ReadConfig(fname string) (Config, error) {
	wrap := configFile{Simulation: DefaultConfig()}
	if err := gcfg.ReadFileInto(&wrap, fname); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, fname, err)
	}
	if err := wrap.Simulation.CheckInit(); err != nil {
		return Config{}, err
	}
	return wrap.Simulation, nil
}

// ParseConfig is ReadConfig for an in-memory file.
func ParseConfig(text string) (Config, error) {
	wrap := configFile{Simulation: DefaultConfig()}
	if err := gcfg.ReadStringInto(&wrap, text); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := wrap.Simulation.CheckInit(); err != nil {
		return Config{}, err
	}
	return wrap.Simulation, nil
}

// CheckInit validates the options.
func (c *Config) CheckInit() error {
	switch {
	case c.Particles < 1:
		return fmt.Errorf("%w: Particles = %d, must be positive", ErrInvalidConfig, c.Particles)
	case !(c.ArenaSide >= MinArenaSide) || math.IsInf(c.ArenaSide, 1):
		return fmt.Errorf("%w: ArenaSide = %g, must be at least %g",
			ErrInvalidConfig, c.ArenaSide, MinArenaSide)
	case !(c.TickRate >= MinTickRate && c.TickRate <= MaxTickRate):
		return fmt.Errorf("%w: TickRate = %g, must be in [%g, %g]",
			ErrInvalidConfig, c.TickRate, MinTickRate, MaxTickRate)
	case !(c.MinSpeed >= 0):
		return fmt.Errorf("%w: MinSpeed = %g, must not be negative", ErrInvalidConfig, c.MinSpeed)
	case !(c.MaxSpeed >= c.MinSpeed) || math.IsInf(c.MaxSpeed, 1):
		return fmt.Errorf("%w: MaxSpeed = %g, must be at least MinSpeed = %g",
			ErrInvalidConfig, c.MaxSpeed, c.MinSpeed)
	}

	switch c.Placement {
	case PlacementUniform, PlacementPerlin:
	default:
		return fmt.Errorf("%w: Placement = %q, must be %q or %q",
			ErrInvalidConfig, c.Placement, PlacementUniform, PlacementPerlin)
	}

	switch c.Host {
	case HostWindow, HostTerminal:
	default:
		return fmt.Errorf("%w: Host = %q, must be %q or %q",
			ErrInvalidConfig, c.Host, HostWindow, HostTerminal)
	}

	return nil
}

// DT is the simulated time covered by one tick.
func (c *Config) DT() float64 { return 1 / c.TickRate }

// Arena is the square described by ArenaSide.
func (c *Config) Arena() Arena { return Arena{Min: 0, Max: c.ArenaSide} }
