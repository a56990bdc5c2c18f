package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/BackofenLab/intarnago/accessibility"
	"github.com/BackofenLab/intarnago/energyparams"
	"github.com/BackofenLab/intarnago/interaction"
	"github.com/BackofenLab/intarnago/output"
	"github.com/BackofenLab/intarnago/predict"
	"github.com/BackofenLab/intarnago/rnasequence"
	"github.com/BackofenLab/intarnago/seed"
)

/*
predictCommand wires the "predict" subcommand's flags into a Predictor
call: read query/target FASTA, build each strand's Accessibility (Disabled
unless an accessibility stream flag was given), pick an EnergyProvider,
compose interaction.Energy, construct the requested predict.Predictor
variant, run it over the full pair, and print each reported interaction's
dot-bar line to stdout — the same read-build-run-print shape
poly/commands.go's convertCommand follows for its own file-in/file-out
command.
*/
func predictCommand(c *cli.Context) error {
	seq1, err := readFastaFlag(c, "query")
	if err != nil {
		return err
	}
	seq2, err := readFastaFlag(c, "target")
	if err != nil {
		return err
	}

	acc1, err := buildAccessibility(c, "accessibility1", seq1)
	if err != nil {
		return err
	}
	acc2, err := buildAccessibility(c, "accessibility2", seq2)
	if err != nil {
		return err
	}

	config := buildConfig(c)
	provider, err := buildProvider(c, config)
	if err != nil {
		return err
	}

	energy := interaction.NewEnergy(acc1, acc2, provider, 0)

	predictor, err := buildPredictor(c, energy, config)
	if err != nil {
		return err
	}

	out := &output.Passthrough{}
	r1 := rnasequence.IndexRange{From: 0, To: seq1.Len() - 1}
	r2 := rnasequence.IndexRange{From: 0, To: seq2.Len() - 1}
	predictor.Predict(r1, r2, out, config.Output)

	fmt.Fprintf(c.App.Writer, "query fingerprint: %x\n", seq1.Fingerprint())
	fmt.Fprintf(c.App.Writer, "target fingerprint: %x\n", seq2.Fingerprint())

	printed := false
	for _, ia := range out.Interactions {
		if ia.IsEmpty() {
			continue
		}
		fmt.Fprintln(c.App.Writer, ia.DotBar())
		printed = true
	}
	if !printed {
		fmt.Fprintln(c.App.Writer, "no interaction found")
	}
	return nil
}

func readFastaFlag(c *cli.Context, flag string) (rnasequence.Sequence, error) {
	path := c.String(flag)
	f, err := os.Open(path)
	if err != nil {
		return rnasequence.Sequence{}, fmt.Errorf("opening --%s: %w", flag, err)
	}
	defer f.Close()
	seq, err := rnasequence.ReadFasta(f)
	if err != nil {
		return rnasequence.Sequence{}, fmt.Errorf("parsing --%s: %w", flag, err)
	}
	return seq, nil
}

func buildAccessibility(c *cli.Context, flag string, seq rnasequence.Sequence) (accessibility.Accessibility, error) {
	path := c.String(flag)
	if path == "" {
		return accessibility.NewDisabled(seq), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening --%s: %w", flag, err)
	}
	defer f.Close()
	table, err := accessibility.FromStream(f, seq, seq.Len(), accessibility.FormatUnpairedProbabilities, 0.61632)
	if err != nil {
		return nil, fmt.Errorf("parsing --%s: %w", flag, err)
	}
	return table, nil
}

func buildProvider(c *cli.Context, config predict.Config) (energyparams.EnergyProvider, error) {
	switch c.String("energy") {
	case "basepair":
		return energyparams.NewBasePairCounting(), nil
	case "nn":
		return energyparams.NewNearestNeighbor(config.Temperature), nil
	default:
		return nil, fmt.Errorf("unknown --energy %q (want basepair or nn)", c.String("energy"))
	}
}

// buildConfig fills a predict.Config from flags, starting from
// predict.DefaultConfig so unset flags fall back to IntaRNA's own
// defaults rather than Go's zero values.
func buildConfig(c *cli.Context) predict.Config {
	config := predict.DefaultConfig()
	config.MaxLoopSize1 = c.Int("max-loop1")
	config.MaxLoopSize2 = c.Int("max-loop2")
	config.Temperature = c.Float64("temperature")
	config.Output = predict.OutputConstraint{
		ReportMax:     c.Int("n"),
		ReportOverlap: predict.OverlapBoth,
		MaxE:          int(c.Float64("max-e") * 100.0),
		DeltaE:        int(c.Float64("delta-e") * 100.0),
	}
	return config
}

func buildPredictor(c *cli.Context, energy *interaction.Energy, config predict.Config) (predict.Predictor, error) {
	mode := c.String("mode")
	switch mode {
	case "heuristic":
		return predict.NewMfe2dHeuristic(energy, config.MaxLoopSize1, config.MaxLoopSize2, nil), nil
	case "exact":
		return predict.NewMfe2d(energy, config.MaxLoopSize1, config.MaxLoopSize2, nil), nil
	case "maxprob":
		return predict.NewMaxProb(energy, config.MaxLoopSize1, config.MaxLoopSize2, nil), nil
	case "heuristic-seed":
		return predict.NewMfe2dHeuristicSeed(energy, config.MaxLoopSize1, config.MaxLoopSize2, defaultSeedHandler(energy), nil), nil
	case "exact-seed":
		return predict.NewMfe2dSeed(energy, config.MaxLoopSize1, config.MaxLoopSize2, defaultSeedHandler(energy), nil), nil
	default:
		return nil, fmt.Errorf("unknown --mode %q", mode)
	}
}

// defaultSeedHandler builds a seed.Handler with IntaRNA's own default seed
// constraint (2-7bp, up to 2 unpaired bases per strand, seed energy at
// most 0). Its own Predict call fills it over the exact window
// searched, so it is left empty here.
func defaultSeedHandler(energy *interaction.Energy) *seed.Handler {
	return seed.NewHandler(energy, seed.Constraint{
		BpMin:         2,
		BpMax:         7,
		MaxUnpaired1:  2,
		MaxUnpaired2:  2,
		SeedMaxEnergy: 0,
	})
}
