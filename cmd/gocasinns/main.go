// Command gocasinns drives either sampling engine against the reference
// Ising chain model from command-line flags, for manual and exploratory
// use.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:     "gocasinns",
		HelpName: "gocasinns",
		Usage:    "run Metropolis or Wang-Landau sampling against a periodic Ising chain",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "algorithm",
				Usage: "sampling algorithm: metropolis or wanglandau",
				Value: "metropolis",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "number of lattice sites",
				Value: 8,
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "RNG seed",
				Value: 0,
			},
			&cli.Float64Flag{
				Name:  "beta",
				Usage: "inverse temperature (metropolis only)",
				Value: 1.0,
			},
			&cli.Uint64Flag{
				Name:  "relaxation-steps",
				Usage: "metropolis relaxation steps before measuring",
				Value: 10000,
			},
			&cli.Uint64Flag{
				Name:  "measurements",
				Usage: "metropolis number of measurements to collect",
				Value: 1000,
			},
			&cli.Uint64Flag{
				Name:  "steps-between-measurement",
				Usage: "metropolis steps between measurements",
				Value: 50,
			},
			&cli.Float64Flag{
				Name:  "flatness",
				Usage: "wang-landau flatness threshold",
				Value: 0.8,
			},
			&cli.Float64Flag{
				Name:  "modification-factor-final",
				Usage: "wang-landau refinement stop threshold for ln_f",
				Value: 1e-4,
			},
			&cli.Float64Flag{
				Name:  "modification-factor-multiplier",
				Usage: "wang-landau ln_f shrink factor per refinement stage",
				Value: 0.5,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "logging level: DEBUG, INFO, WARNING, ERROR",
				Value: "INFO",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
