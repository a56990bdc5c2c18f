// Package output defines the interface predictors report interactions to,
// and a small set of chainable implementations: a passthrough collector, a
// lossy range-only collector, and a fan-out multiplexer.
package output

import "github.com/BackofenLab/intarnago/interaction"

// Output receives every interaction a Predictor's reportOptima pass
// produces, in best-first order.
type Output interface {
	Add(ia interaction.Interaction)
}

// Passthrough stores every reported Interaction verbatim, in the order
// received.
type Passthrough struct {
	Interactions []interaction.Interaction
}

func (p *Passthrough) Add(ia interaction.Interaction) {
	p.Interactions = append(p.Interactions, ia)
}

// InteractionRange is the lossy {i1-range, i2-range, energy} summary of an
// Interaction, discarding its base-pair list - the smallest representation
// that still answers "where, and how favorably, did these two molecules
// interact".
type InteractionRange struct {
	From1, To1 int
	From2, To2 int
	Energy     int
}

// RangeOnly stores only each reported interaction's boundary ranges and
// energy, for callers that only need a coarse map of interaction sites.
type RangeOnly struct {
	Ranges []InteractionRange
}

func (r *RangeOnly) Add(ia interaction.Interaction) {
	from1, to1 := ia.Range1()
	from2, to2 := ia.Range2()
	r.Ranges = append(r.Ranges, InteractionRange{From1: from1, To1: to1, From2: from2, To2: to2, Energy: ia.TotalEnergy})
}

// Multi fans a single Add call out to every wrapped Output, in order.
type Multi struct {
	Outputs []Output
}

func NewMulti(outputs ...Output) *Multi {
	return &Multi{Outputs: outputs}
}

func (m *Multi) Add(ia interaction.Interaction) {
	for _, o := range m.Outputs {
		o.Add(ia)
	}
}
