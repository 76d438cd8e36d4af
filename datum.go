package scm

import (
	"fmt"
	"strings"
)

// Datum is the sealed union of read-level Scheme values produced by the
// Reader: atoms, symbols, bytevectors, pairs (lists, dotted pairs) and
// vectors.
type Datum interface {
	isDatum()
	fmt.Stringer
}

// PrimitiveDatum wraps a literal Primitive as a Datum.
type PrimitiveDatum struct {
	Value Primitive
}

func (PrimitiveDatum) isDatum()      {}
func (d PrimitiveDatum) String() string { return d.Value.String() }

// SymbolDatum is a read symbol.
type SymbolDatum string

func (SymbolDatum) isDatum()      {}
func (s SymbolDatum) String() string { return string(s) }

// ByteVectorDatum is a "#u8( ... )" literal, each element 0..=255.
type ByteVectorDatum []byte

func (ByteVectorDatum) isDatum() {}
func (b ByteVectorDatum) String() string {
	var sb strings.Builder
	sb.WriteString("#u8(")
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// VectorDatum is a "#( ... )" literal: an ordered sequence of located
// datums.
type VectorDatum []Located[Datum]

func (VectorDatum) isDatum() {}
func (v VectorDatum) String() string {
	var sb strings.Builder
	sb.WriteString("#(")
	for i, d := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(d.Value.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Pair is a generic cons cell. A nil *Pair represents the empty list
// "()". A proper list is a chain of non-nil Pairs whose final Cdr wraps
// a nil *Pair; an improper (dotted) list's final Cdr wraps a non-pair
// Datum directly.
type Pair struct {
	Car Located[Datum]
	Cdr Located[Datum]
}

// PairDatum wraps a *Pair (possibly nil, meaning the empty list) as a
// Datum.
type PairDatum struct {
	Value *Pair
}

func (PairDatum) isDatum() {}

func (d PairDatum) String() string {
	if d.Value == nil {
		return "()"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(d.Value.Car.Value.String())
	cdr := d.Value.Cdr
	for {
		pd, ok := cdr.Value.(PairDatum)
		if !ok {
			sb.WriteString(" . ")
			sb.WriteString(cdr.Value.String())
			break
		}
		if pd.Value == nil {
			break
		}
		sb.WriteByte(' ')
		sb.WriteString(pd.Value.Car.Value.String())
		cdr = pd.Value.Cdr
	}
	sb.WriteByte(')')
	return sb.String()
}

// emptyList is the canonical empty-list datum, Pair(Empty) in spec.md's
// vocabulary.
func emptyList(loc Location) Located[Datum] {
	return At[Datum](loc, PairDatum{Value: nil})
}

// Length returns the number of Some cells in a proper list, and false
// if d is not a pair chain terminated by the empty list (i.e. an
// improper/dotted list, or not a pair at all).
func Length(d Datum) (int, bool) {
	pd, ok := d.(PairDatum)
	if !ok {
		return 0, false
	}
	n := 0
	for pd.Value != nil {
		n++
		next, ok := pd.Cdr_().(PairDatum)
		if !ok {
			return 0, false
		}
		pd = next
	}
	return n, true
}

// Cdr_ returns the Cdr datum of a PairDatum's underlying Pair, or the
// empty-list datum if the PairDatum wraps nil.
func (d PairDatum) Cdr_() Datum {
	if d.Value == nil {
		return PairDatum{Value: nil}
	}
	return d.Value.Cdr.Value
}
