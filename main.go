package main

import (
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/olivierh59500/bounce-go/sim"
)

func main() {
	cfg := sim.DefaultConfig()
	if len(os.Args) > 1 {
		var err error
		if cfg, err = sim.ReadConfig(os.Args[1]); err != nil {
			log.Fatal(err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine, err := sim.NewEngine(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Trace {
		engine.SetTrace(log.New(os.Stderr, "trace: ", log.Lmicroseconds))
	}
	log.Printf("%d particles in a %g arena at %g ticks/s (seed %d)",
		cfg.Particles, cfg.ArenaSide, cfg.TickRate, seed)

	switch cfg.Host {
	case sim.HostTerminal:
		if err := runTerminal(engine, cfg.TickRate); err != nil {
			log.Fatal(err)
		}
	default:
		side := int(cfg.ArenaSide)
		ebiten.SetWindowSize(side, side)
		ebiten.SetWindowTitle("Particle Bounce")
		ebiten.SetTPS(int(math.Round(cfg.TickRate)))

		if err := ebiten.RunGame(NewGame(engine)); err != nil {
			log.Fatal(err)
		}
	}
}
