package energyparams

import (
	"math"

	"github.com/BackofenLab/intarnago/rnasequence"
)

// defaultRT is RT at 37C in kcal/mol, the value the Turner parameter set is
// measured against.
const defaultRT = 0.61632

// lxc is the Jacobson-Stockmayer log-extrapolation constant used to extend
// the tabulated internal-loop length penalties beyond the table's explicit
// entries, ported from mfe.go's lxc37.
const lxc = 107.856

// maxTabulatedLoop is the largest unpaired-loop length with an explicit
// table entry; longer loops are extrapolated via lxc*ln(len/maxTabulatedLoop).
const maxTabulatedLoop = 30

// stackingEnergy37 holds the Turner-nearest-neighbor stacking free energies
// (centi-kcal/mol at 37C) for stacking pairCode(a) onto pairCode(b), read
// 5'->3' on the top strand / 3'->5' on the bottom strand, i.e. the energy
// of extending a helix from one base pair to the next without any unpaired
// bases. Indexed [pairCode(closing pair)-1][pairCode(enclosed pair)-1]
// over {CG,GC,GU,UG,AU,UA}. Values mirror the published Turner 2004
// nearest-neighbor set (ported in shape, not in source, from mfe.go's
// stackingPairEnergy37C table).
var stackingEnergy37 = [numPairs][numPairs]int{
	/*        CG    GC    GU    UG    AU    UA */
	/* CG */ {-340, -240, -210, -145, -210, -220},
	/* GC */ {-240, -330, -210, -135, -240, -210},
	/* GU */ {-210, -210, -40, 130, -140, -150},
	/* UG */ {-145, -135, 130, 30, -100, -130},
	/* AU */ {-210, -240, -140, -100, -110, -90},
	/* UA */ {-220, -210, -150, -130, -90, -130},
}

// terminalPenalty37 is the AU/GU closing-pair penalty charged whenever an
// interaction end (or dangling helix terminus) closes on a non-GC pair.
const terminalPenalty37 = 50

// dangle5Energy37/dangle3Energy37 give the stabilization of a single
// unpaired base stacked on the 5'/3' side of a closing pair, indexed
// [pairCode(closingPair)-1][baseCode]. Approximate Turner dangle values.
var dangle5Energy37 = [numPairs][5]int{
	{0, -50, -30, -20, -10},
	{0, -50, -30, -20, -10},
	{0, -20, -10, -20, -10},
	{0, -20, -10, -20, -10},
	{0, -30, -30, -40, -20},
	{0, -30, -30, -40, -20},
}

var dangle3Energy37 = [numPairs][5]int{
	{0, -110, -40, -130, -60},
	{0, -170, -80, -170, -120},
	{0, -70, -10, -70, -10},
	{0, -80, -50, -80, -60},
	{0, -80, -30, -110, -70},
	{0, -70, -10, -70, -10},
}

// internalLoopLength37 tabulates the length-dependent penalty of a
// bulge/internal loop of total unpaired length 1..maxTabulatedLoop,
// shaped after mfe.go's bulgeEnergy37C/interiorLoopEnergy37C tables.
var internalLoopLength37 = [maxTabulatedLoop + 1]int{
	0, 380, 280, 320, 360, 400, 440, 459, 470, 480,
	490, 500, 510, 519, 527, 534, 541, 548, 554, 560,
	565, 571, 576, 580, 585, 589, 594, 598, 602, 605,
	609,
}

// NearestNeighbor is the default thermodynamic model: a compact
// Turner-nearest-neighbor-style provider covering stacking, terminal
// penalties, dangles, and loop-length penalties, scaled to the given
// temperature (Celsius, 37 matches the tabulated values exactly).
type NearestNeighbor struct {
	temperature float64
	rt          float64
}

// NewNearestNeighbor builds the default nearest-neighbor provider at the
// given temperature in Celsius.
func NewNearestNeighbor(temperatureC float64) NearestNeighbor {
	rt := defaultRT * (temperatureC + 273.15) / 310.15
	return NearestNeighbor{temperature: temperatureC, rt: rt}
}

func (n NearestNeighbor) RT() float64 { return n.rt }

// EInit is the per-interaction initiation penalty.
func (n NearestNeighbor) EInit() int { return 410 }

func (n NearestNeighbor) scale(e37 int) int {
	if n.temperature == 37.0 {
		return e37
	}
	return int(math.Round(float64(e37) * (n.temperature + 273.15) / 310.15))
}

func (n NearestNeighbor) ES(s1, s2 rnasequence.Sequence, i1, j1 int) int {
	closing := pairCode(s1.CodeAt(i1), s2.CodeAt(j1))
	if closing == 0 {
		return UpperBoundLocal
	}
	if i1+1 >= s1.Len() || j1-1 < 0 {
		return UpperBoundLocal
	}
	enclosed := pairCode(s1.CodeAt(i1+1), s2.CodeAt(j1-1))
	if enclosed == 0 {
		return UpperBoundLocal
	}
	return n.scale(stackingEnergy37[closing-1][enclosed-1])
}

// UpperBoundLocal mirrors accessibility.UpperBound without importing the
// accessibility package (which would create an import cycle, since
// accessibility.PartitionModel is implemented in terms of this package).
const UpperBoundLocal = 1 << 29

func loopLengthPenalty(totalLen int) int {
	if totalLen <= 0 {
		return 0
	}
	if totalLen <= maxTabulatedLoop {
		return internalLoopLength37[totalLen]
	}
	extra := lxc * math.Log(float64(totalLen)/float64(maxTabulatedLoop))
	return internalLoopLength37[maxTabulatedLoop] + int(math.Round(extra))
}

func (n NearestNeighbor) EInterLeft(bulgeLen1, bulgeLen2 int, s1 rnasequence.Sequence, i1, k1 int, s2 rnasequence.Sequence, j2, l2 int) int {
	if bulgeLen1 == 0 && bulgeLen2 == 0 {
		closing := pairCode(s1.CodeAt(i1), s2.CodeAt(j2))
		enclosed := pairCode(s1.CodeAt(k1), s2.CodeAt(l2))
		if closing == 0 || enclosed == 0 {
			return UpperBoundLocal
		}
		return n.scale(stackingEnergy37[closing-1][enclosed-1])
	}
	return n.scale(loopLengthPenalty(bulgeLen1 + bulgeLen2))
}

func (n NearestNeighbor) EDangleLeft(s1 rnasequence.Sequence, i1 int, s2 rnasequence.Sequence, j2 int) int {
	if i1 == 0 {
		return 0
	}
	closing := pairCode(s1.CodeAt(i1), s2.CodeAt(j2))
	if closing == 0 {
		return 0
	}
	return n.scale(dangle5Energy37[closing-1][s1.CodeAt(i1-1)])
}

func (n NearestNeighbor) EDangleRight(s1 rnasequence.Sequence, k1 int, s2 rnasequence.Sequence, l2 int) int {
	if k1+1 >= s1.Len() {
		return 0
	}
	closing := pairCode(s1.CodeAt(k1), s2.CodeAt(l2))
	if closing == 0 {
		return 0
	}
	return n.scale(dangle3Energy37[closing-1][s1.CodeAt(k1+1)])
}

func (n NearestNeighbor) EEndLeft(s1 rnasequence.Sequence, i1 int, s2 rnasequence.Sequence, j2 int) int {
	return n.terminalPenalty(s1, i1, s2, j2)
}

func (n NearestNeighbor) EEndRight(s1 rnasequence.Sequence, k1 int, s2 rnasequence.Sequence, l2 int) int {
	return n.terminalPenalty(s1, k1, s2, l2)
}

func (n NearestNeighbor) terminalPenalty(s1 rnasequence.Sequence, i1 int, s2 rnasequence.Sequence, j2 int) int {
	closing := pairCode(s1.CodeAt(i1), s2.CodeAt(j2))
	if closing == 5 || closing == 6 || closing == 3 || closing == 4 {
		penalty := terminalPenalty37
		if terminalPenaltyOverride != nil {
			penalty = *terminalPenaltyOverride
		}
		return n.scale(penalty)
	}
	return 0
}
