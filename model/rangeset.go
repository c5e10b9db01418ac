package model

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/sets/treeset"
)

// RangeSet is a collection of identifier ranges.
//
// Ranges are kept in insertion order and may overlap. Normalize returns the disjoint form.
type RangeSet struct {
	ranges []Range
}

// NewRangeSet returns a RangeSet holding the given ranges. Every range must be non-empty.
func NewRangeSet(ranges ...Range) (*RangeSet, error) {
	s := &RangeSet{}
	for _, r := range ranges {
		if err := s.Add(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends r to the set. An empty range is rejected.
func (s *RangeSet) Add(r Range) error {
	if r.End <= r.Start {
		return fmt.Errorf("rangeset: fail to add %s: %w", r, ErrEmptyRange)
	}
	s.ranges = append(s.ranges, r)
	return nil
}

// Append adds a range already known to be non-empty, e.g. a piece produced by Interval.MapRange.
//
// It panics on an empty range. Use Add for untrusted input.
func (s *RangeSet) Append(r Range) {
	if r.End <= r.Start {
		panic(fmt.Sprintf("rangeset: append empty range %s", r))
	}
	s.ranges = append(s.ranges, r)
}

// Ranges returns a copy of the ranges in insertion order.
func (s *RangeSet) Ranges() []Range {
	ret := make([]Range, len(s.ranges))
	copy(ret, s.ranges)
	return ret
}

func (s *RangeSet) Len() int {
	return len(s.ranges)
}

func (s *RangeSet) Empty() bool {
	return len(s.ranges) == 0
}

// Min returns the smallest identifier in the set. Since every range is non-empty, it is the
// smallest start.
func (s *RangeSet) Min() (uint64, bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}
	ret := s.ranges[0].Start
	for _, r := range s.ranges[1:] {
		ret = min(ret, r.Start)
	}
	return ret, true
}

func (s *RangeSet) Contains(n uint64) bool {
	for _, r := range s.ranges {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

// Count returns the number of distinct identifiers in the set.
func (s *RangeSet) Count() uint64 {
	var ret uint64
	for _, r := range s.Normalize().ranges {
		ret += r.Len()
	}
	return ret
}

// Normalize returns a new RangeSet which covers the same identifiers with sorted, disjoint and
// non-adjacent ranges.
//
// Ranges are first ordered by start (then end) in a tree set, which also drops exact duplicates.
// Touching neighbours are then fused in a single sweep.
func (s *RangeSet) Normalize() *RangeSet {
	sorted := treeset.NewWith[Range](compareRanges, s.ranges...)

	ret := &RangeSet{ranges: make([]Range, 0, sorted.Size())}
	iter := sorted.Iterator()
	for iter.Next() {
		r := iter.Value()
		last := len(ret.ranges) - 1
		if last >= 0 && Touches(ret.ranges[last], r) {
			ret.ranges[last] = *Fusion([]Range{ret.ranges[last], r})
			continue
		}
		ret.ranges = append(ret.ranges, r)
	}
	return ret
}

func (s *RangeSet) String() string {
	sb := strings.Builder{}
	sb.WriteByte('{')
	for i, r := range s.ranges {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func compareRanges(a, b Range) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}
