package predict

// Config bundles the constructor arguments every predictor variant needs,
// generalizing the teacher's plain-constructor-argument style (fold.Fold
// takes temperature/energy-set directly, no config-file layer) into one
// struct a CLI driver can fill in from flags.
type Config struct {
	MaxLoopSize1 int
	MaxLoopSize2 int
	Temperature  float64
	Output       OutputConstraint
}

// DefaultConfig mirrors IntaRNA's own defaults: a loop size of 16 on each
// strand, 37C, and a generous 100 kcal/mol suboptimal window (IntaRNA's own
// --outDeltaEkcal default is similarly loose, since most callers bound the
// result count with --outNumber/-n instead).
func DefaultConfig() Config {
	return Config{
		MaxLoopSize1: 16,
		MaxLoopSize2: 16,
		Temperature:  37.0,
		Output: OutputConstraint{
			ReportMax:     1,
			ReportOverlap: OverlapBoth,
			MaxE:          0,
			DeltaE:        10000,
		},
	}
}
