// Package seed implements SeedHandler: the enumeration of mandatory
// low-energy stacked-pair fragments every *+Seed predictor variant must
// find at least one of within any interaction it reports. Shaped after
// SeedHandlerIdxOffset's role in PredictorMfe2dHeuristicSeed/
// PredictorMfe2dSeed: a per-left-anchor lookup of the best seed starting
// there, offsettable to a predictor's windowed coordinates.
package seed

import (
	"github.com/BackofenLab/intarnago/interaction"
	"github.com/BackofenLab/intarnago/rnasequence"
)

// Constraint bounds the admissible seeds: base-pair count, maximum
// unpaired bulge length on each strand, and a ceiling on total
// hybridization energy (centi-kcal/mol) for a fragment to qualify.
type Constraint struct {
	BpMin, BpMax   int
	MaxUnpaired1   int
	MaxUnpaired2   int
	SeedMaxEnergy  int
}

// Seed is one admissible stacked/bulged fragment: its left anchor
// (I1,J2), right anchor (K1,L2), and the hybridization energy of just that
// fragment (shared DP coordinate frame, matching interaction.Energy).
type Seed struct {
	I1, J2 int
	K1, L2 int
	Energy int
}

// Handler enumerates and caches, for every left anchor, the minimum-energy
// admissible seed starting there (§4.4 fillSeed/getSeedE).
type Handler struct {
	energy     *interaction.Energy
	constraint Constraint
	best       map[[2]int]Seed
}

// NewHandler builds a Handler bound to a fixed Energy and Constraint. Call
// FillSeed before querying.
func NewHandler(energy *interaction.Energy, constraint Constraint) *Handler {
	return &Handler{energy: energy, constraint: constraint, best: make(map[[2]int]Seed)}
}

// FillSeed precomputes, for every left anchor (i1,j2) within r1 x r2
// (shared DP frame), the minimum-energy admissible seed starting there, if
// any. Ported from SeedHandler::fillSeed's per-anchor enumeration: each
// candidate right anchor is reached by nesting up to BpMax-1 further
// complementary pairs with bounded bulges, tracking the running energy.
func (h *Handler) FillSeed(r1, r2 rnasequence.IndexRange) {
	h.best = make(map[[2]int]Seed)
	for i1 := r1.From; i1 <= r1.To; i1++ {
		for j2 := r2.From; j2 <= r2.To; j2++ {
			if !h.energy.AreComplementary(i1, j2) {
				continue
			}
			if s, ok := h.growSeed(i1, j2, r1.To, r2.To); ok {
				h.best[[2]int{i1, j2}] = s
			}
		}
	}
}

// growSeed performs a small bounded breadth-first search from a fixed left anchor,
// returning the cheapest admissible seed of bp in [BpMin,BpMax] whose
// total energy is <= SeedMaxEnergy, if one exists.
func (h *Handler) growSeed(i1, j2, maxI1, maxJ2 int) (Seed, bool) {
	type state struct {
		k1, l2, bp, energy int
	}
	best := Seed{}
	found := false
	frontier := []state{{i1, j2, 1, h.energy.EInit()}}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		if cur.bp >= h.constraint.BpMin && cur.bp <= h.constraint.BpMax && cur.energy <= h.constraint.SeedMaxEnergy {
			if !found || cur.energy < best.Energy {
				best = Seed{I1: i1, J2: j2, K1: cur.k1, L2: cur.l2, Energy: cur.energy}
				found = true
			}
		}
		if cur.bp >= h.constraint.BpMax {
			continue
		}
		for du := 0; du <= h.constraint.MaxUnpaired1; du++ {
			for dv := 0; dv <= h.constraint.MaxUnpaired2; dv++ {
				nk1 := cur.k1 + du + 1
				nl2 := cur.l2 + dv + 1
				if nk1 > maxI1 || nl2 > maxJ2 {
					continue
				}
				if !h.energy.AreComplementary(nk1, nl2) {
					continue
				}
				e := cur.energy + h.energy.EInterLeft(cur.k1, cur.l2, nk1, nl2)
				frontier = append(frontier, state{nk1, nl2, cur.bp + 1, e})
			}
		}
	}
	return best, found
}

// GetSeedE returns the energy of the best seed anchored at (i1,j2), and
// whether one exists at all.
func (h *Handler) GetSeedE(i1, j2 int) (int, bool) {
	s, ok := h.best[[2]int{i1, j2}]
	if !ok {
		return 0, false
	}
	return s.Energy, true
}

// GetSeed returns the best full seed (including its right anchor) starting
// at (i1,j2).
func (h *Handler) GetSeed(i1, j2 int) (Seed, bool) {
	s, ok := h.best[[2]int{i1, j2}]
	return s, ok
}

// IsSeedBound reports whether (i1,j2) is the left anchor of any admissible
// seed, the condition *+Seed predictor variants gate seed-initiation on.
func (h *Handler) IsSeedBound(i1, j2 int) bool {
	_, ok := h.best[[2]int{i1, j2}]
	return ok
}

// OffsetView returns a view of this Handler whose anchors are shifted by
// (offset1, offset2), for use by a predictor operating over a sequence
// window rather than the full sequence, the role SeedHandlerIdxOffset
// plays relative to SeedHandler.
func (h *Handler) OffsetView(offset1, offset2 int) *OffsetHandler {
	return &OffsetHandler{inner: h, offset1: offset1, offset2: offset2}
}

// OffsetHandler translates window-local coordinates to the wrapped
// Handler's absolute coordinates before delegating.
type OffsetHandler struct {
	inner            *Handler
	offset1, offset2 int
}

func (o *OffsetHandler) GetSeedE(i1, j2 int) (int, bool) {
	return o.inner.GetSeedE(i1+o.offset1, j2+o.offset2)
}

func (o *OffsetHandler) IsSeedBound(i1, j2 int) bool {
	return o.inner.IsSeedBound(i1+o.offset1, j2+o.offset2)
}

func (o *OffsetHandler) GetSeed(i1, j2 int) (Seed, bool) {
	s, ok := o.inner.GetSeed(i1+o.offset1, j2+o.offset2)
	if !ok {
		return Seed{}, false
	}
	s.I1 -= o.offset1
	s.J2 -= o.offset2
	s.K1 -= o.offset1
	s.L2 -= o.offset2
	return s, true
}
