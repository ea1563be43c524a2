package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/gocasinns/core"
	"github.com/katalvlaran/gocasinns/isingmodel"
	"github.com/katalvlaran/gocasinns/metropolis"
	"github.com/katalvlaran/gocasinns/observable"
	"github.com/katalvlaran/gocasinns/rng"
	"github.com/katalvlaran/gocasinns/simulation"
	"github.com/katalvlaran/gocasinns/wanglandau"
)

func run(c *cli.Context) error {
	algorithm := c.String("algorithm")
	size := c.Int("size")
	seed := c.Uint64("seed")
	logger := simulation.NewLogger(c.String("log-level"), "gocasinns")

	if size <= 0 {
		return cli.Exit("--size must be positive", 1)
	}

	config := isingmodel.NewLattice(size, rng.NewPCG32(seed))

	switch algorithm {
	case "metropolis":
		return runMetropolis(c, config, seed, logger)
	case "wanglandau":
		return runWangLandau(c, config, seed, logger)
	default:
		return cli.Exit(fmt.Sprintf("unknown --algorithm %q, want metropolis or wanglandau", algorithm), 1)
	}
}

func runMetropolis(c *cli.Context, config *isingmodel.Lattice, seed uint64, logger interface{ Infof(string, ...any) }) error {
	params := metropolis.Parameters{
		RelaxationSteps:         c.Uint64("relaxation-steps"),
		MeasurementNumber:       c.Uint64("measurements"),
		StepsBetweenMeasurement: c.Uint64("steps-between-measurement"),
	}

	engine, err := metropolis.New[*isingmodel.Lattice](params, config, seed)
	if err != nil {
		return err
	}

	acc := observable.NewMeanVarianceAccumulator()
	logger.Infof("running metropolis: size=%d beta=%.4f measurements=%d", config.SystemSize(), c.Float64("beta"), params.MeasurementNumber)
	metropolis.DoSimulation[*isingmodel.Lattice, float64](engine, c.Float64("beta"), acc, isingmodel.EnergyObservable{})

	fmt.Printf("measurements: %d\n", acc.Count())
	fmt.Printf("mean energy:  %.6f\n", acc.Mean())
	fmt.Printf("variance:     %.6f\n", acc.Variance())
	return nil
}

func runWangLandau(c *cli.Context, config *isingmodel.Lattice, seed uint64, logger interface{ Infof(string, ...any) }) error {
	params := wanglandau.Parameters{
		ModificationFactorInitial:    1.0,
		ModificationFactorFinal:      c.Float64("modification-factor-final"),
		ModificationFactorMultiplier: c.Float64("modification-factor-multiplier"),
		Flatness:                     c.Float64("flatness"),
	}

	engine, err := wanglandau.New[*isingmodel.Lattice, core.Int64Energy](params, config, seed)
	if err != nil {
		return err
	}

	logger.Infof("running wang-landau: size=%d flatness=%.2f ln_f_final=%g", config.SystemSize(), params.Flatness, params.ModificationFactorFinal)
	engine.DoSimulation()

	dos := engine.GetDensityOfStates()
	fmt.Println("energy  ln(g(E))")
	for _, e := range dos.Keys() {
		s, _ := dos.Lookup(e)
		fmt.Printf("%6d  %10.4f\n", int64(e), s)
	}
	return nil
}
