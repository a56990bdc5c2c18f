// Command intarnago is a thin CLI driver over the predict package: it
// wires a FASTA query/target pair and a handful of constraint flags into
// a Predictor call and prints every reported interaction's dot-bar
// rendering. No prediction logic lives here; it is the same kind of
// wrapper poly/main.go is over poly's packages.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	run(os.Args)
}

// run is separated from main for testability.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application builds the intarnago urfave/cli app, a single "predict"
// command in the shape of poly/main.go's top-level commands.
func application() *cli.App {
	return &cli.App{
		Name:  "intarnago",
		Usage: "predict the minimum-free-energy hybridization between two RNAs",
		Commands: []*cli.Command{
			{
				Name:  "predict",
				Usage: "predict interactions between a query and a target FASTA sequence",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Required: true, Usage: "query FASTA file (S1)"},
					&cli.StringFlag{Name: "target", Aliases: []string{"t"}, Required: true, Usage: "target FASTA file (S2)"},
					&cli.StringFlag{Name: "mode", Value: "heuristic", Usage: "predictor: heuristic, exact, maxprob, heuristic-seed, exact-seed"},
					&cli.IntFlag{Name: "max-loop1", Value: 16, Usage: "max unpaired bases per internal loop on the query"},
					&cli.IntFlag{Name: "max-loop2", Value: 16, Usage: "max unpaired bases per internal loop on the target"},
					&cli.Float64Flag{Name: "temperature", Value: 37.0, Usage: "folding temperature in Celsius"},
					&cli.IntFlag{Name: "n", Value: 1, Usage: "number of interactions to report (overlapping ones allowed)"},
					&cli.Float64Flag{Name: "max-e", Value: 0.0, Usage: "maximum energy (kcal/mol) for a reported interaction"},
					&cli.Float64Flag{Name: "delta-e", Value: 100.0, Usage: "maximum energy (kcal/mol) above the best found interaction for a suboptimal to still be reported"},
					&cli.StringFlag{Name: "energy", Value: "basepair", Usage: "energy model: basepair or nn (nearest-neighbor)"},
					&cli.StringFlag{Name: "accessibility1", Usage: "optional RNAplfold-format accessibility stream for the query"},
					&cli.StringFlag{Name: "accessibility2", Usage: "optional RNAplfold-format accessibility stream for the target"},
				},
				Action: func(c *cli.Context) error {
					return predictCommand(c)
				},
			},
		},
	}
}
