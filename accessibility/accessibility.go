package accessibility

import "github.com/BackofenLab/intarnago/rnasequence"

// Accessibility is the per-molecule accessibility model: given a sub-range
// [i,j] of the molecule it returns ED(i,j), the energy cost of keeping that
// range unpaired within the molecule's own intra-molecular structure
// ensemble, per §4.1. Implementations plug into InteractionEnergy and are
// themselves interchangeable: a disabled model, a streamed lookup, an
// on-the-fly partition-function computation, or a reversed view of another.
type Accessibility interface {
	// Sequence returns the underlying molecule.
	Sequence() rnasequence.Sequence
	// MaxLength returns the maximal window width ED was computed for;
	// queries wider than this return UpperBound.
	MaxLength() int
	// ED returns ED(from,to), 0<=from<=to<Sequence().Len().
	ED(from, to int) int
	// Constraint returns the structural constraint attached to this
	// accessibility, if any.
	Constraint() Constraint
}

// Disabled is the always-0 accessibility model: every range is treated as
// freely accessible. Used when ED computation is turned off altogether
// (§4.1 "no ED"/Non-goals) or as the constraint-free baseline the worked
// examples E1-E3 are defined against.
type Disabled struct {
	seq        rnasequence.Sequence
	constraint Constraint
}

// NewDisabled builds a Disabled accessibility over seq with an empty
// constraint.
func NewDisabled(seq rnasequence.Sequence) *Disabled {
	return &Disabled{seq: seq, constraint: NewConstraint(seq.Len(), 0)}
}

// NewDisabledWithConstraint builds a Disabled accessibility that carries a
// structural constraint, returned by Constraint(). ED ignores the
// constraint and stays 0 for every in-range query, so blocked and paired
// positions are not excluded from interactions by this type.
func NewDisabledWithConstraint(seq rnasequence.Sequence, c Constraint) *Disabled {
	return &Disabled{seq: seq, constraint: c}
}

func (d *Disabled) Sequence() rnasequence.Sequence { return d.seq }
func (d *Disabled) MaxLength() int                 { return d.seq.Len() }
func (d *Disabled) ED(from, to int) int {
	if from < 0 || to >= d.seq.Len() || from > to {
		return UpperBound
	}
	return 0
}
func (d *Disabled) Constraint() Constraint { return d.constraint }

// FromTable is an Accessibility backed by a precomputed banded Table, shared
// by the stream-loaded and vrna-computed variants.
type FromTable struct {
	seq        rnasequence.Sequence
	table      *Table
	constraint Constraint
}

// NewFromTable wraps a precomputed Table as an Accessibility.
func NewFromTable(seq rnasequence.Sequence, table *Table, c Constraint) *FromTable {
	return &FromTable{seq: seq, table: table, constraint: c}
}

func (f *FromTable) Sequence() rnasequence.Sequence { return f.seq }
func (f *FromTable) MaxLength() int                 { return f.table.MaxLength() }
func (f *FromTable) ED(from, to int) int            { return f.table.Get(from, to) }
func (f *FromTable) Constraint() Constraint         { return f.constraint }

// Table exposes the underlying banded store, e.g. for DecomposeByMaxED.
func (f *FromTable) Table() *Table { return f.table }

// Reversed presents an Accessibility computed over a 5'->3' sequence as if
// it had been computed over the reverse sequence, by translating query
// ranges through the reversing index map. This is how InteractionEnergy
// exposes the second interaction partner without ever actually reversing
// and recomputing its accessibility, per §4.3 "Reversed view adapter".
type Reversed struct {
	inner Accessibility
}

// NewReversed builds a Reversed view over inner.
func NewReversed(inner Accessibility) *Reversed {
	return &Reversed{inner: inner}
}

// reverseIndex maps a position in the reversed coordinate frame back to the
// corresponding position in inner's original frame.
func (r *Reversed) reverseIndex(i int) int {
	return r.inner.Sequence().Len() - 1 - i
}

func (r *Reversed) Sequence() rnasequence.Sequence { return r.inner.Sequence().Reverse() }
func (r *Reversed) MaxLength() int                 { return r.inner.MaxLength() }

func (r *Reversed) ED(from, to int) int {
	// A range [from,to] in reversed coordinates corresponds to
	// [reverseIndex(to), reverseIndex(from)] in the original frame.
	return r.inner.ED(r.reverseIndex(to), r.reverseIndex(from))
}

func (r *Reversed) Constraint() Constraint {
	c := r.inner.Constraint()
	n := r.inner.Sequence().Len()
	blocked, _ := c.Blocked.Reverse(n)
	accessible, _ := c.Accessible.Reverse(n)
	paired, _ := c.Paired.Reverse(n)
	return Constraint{
		Length:     c.Length,
		MaxBpSpan:  c.MaxBpSpan,
		Blocked:    blocked,
		Accessible: accessible,
		Paired:     paired,
	}
}

// Inner returns the wrapped accessibility, e.g. for DecomposeByMaxED to
// reach the underlying banded Table.
func (r *Reversed) Inner() Accessibility { return r.inner }
