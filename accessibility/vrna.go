package accessibility

import "github.com/BackofenLab/intarnago/rnasequence"

// PartitionModel computes a banded table of accessibility energies for a
// sequence. energyparams.NearestNeighbor implements it with a local
// Boltzmann estimate over the intramolecular pairs that enclose each range,
// not with a full constrained/unconstrained partition-function ratio as
// ViennaRNA's plfold does. Keeping the interface here (rather than importing
// energyparams) lets accessibility stay independent of the concrete energy
// model while still accepting any of them.
type PartitionModel interface {
	AccessibilityTable(seq rnasequence.Sequence, maxLength int) (*Table, error)
}

// Computed is an Accessibility whose ED table is produced on construction by
// running a PartitionModel over the sequence, mirroring IntaRNA's default
// "vrna" accessibility mode (Accessibility.h / AccessibilityVrna.cpp).
type Computed struct {
	*FromTable
}

// NewComputed runs model over seq (restricted to maxLength-wide windows)
// and wraps the resulting table as an Accessibility.
func NewComputed(seq rnasequence.Sequence, maxLength int, model PartitionModel, c Constraint) (*Computed, error) {
	table, err := model.AccessibilityTable(seq, maxLength)
	if err != nil {
		return nil, err
	}
	return &Computed{FromTable: NewFromTable(seq, table, c)}, nil
}
