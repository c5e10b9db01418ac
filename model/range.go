package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyRange is returned when a range would not contain any identifier.
	ErrEmptyRange = errors.New("empty range")

	// ErrOverflow is returned when the end of a range does not fit into uint64.
	ErrOverflow = errors.New("range end overflows uint64")
)

// Range is a half-open block of identifiers [Start, End).
//
// A valid Range always has End > Start. Use NewRange or RangeOf to build one from
// untrusted input.
type Range struct {
	Start uint64
	End   uint64
}

func NewRange(start, end uint64) (Range, error) {
	if end <= start {
		return Range{}, fmt.Errorf("range: [%d, %d): %w", start, end, ErrEmptyRange)
	}
	return Range{Start: start, End: end}, nil
}

// RangeOf builds the range [start, start+length).
func RangeOf(start, length uint64) (Range, error) {
	if length == 0 {
		return Range{}, fmt.Errorf("range: start %d with zero length: %w", start, ErrEmptyRange)
	}
	if start > math.MaxUint64-length {
		return Range{}, fmt.Errorf("range: start %d length %d: %w", start, length, ErrOverflow)
	}
	return Range{Start: start, End: start + length}, nil
}

func (r Range) Len() uint64 {
	return r.End - r.Start
}

func (r Range) Contains(n uint64) bool {
	return r.Start <= n && n < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Fusion returns the smallest range covering all the given ranges, or nil if there are none.
func Fusion(ranges []Range) *Range {
	if len(ranges) == 0 {
		return nil
	}
	ret := &Range{
		Start: ranges[0].Start,
		End:   ranges[0].End,
	}
	for i := 1; i < len(ranges); i++ {
		ret.Start = min(ranges[i].Start, ret.Start)
		ret.End = max(ranges[i].End, ret.End)
	}
	return ret
}

// HasOverlap reports whether r1 and r2 share at least one identifier.
func HasOverlap(r1, r2 Range) bool {
	return r1.Start < r2.End && r2.Start < r1.End
}

// Touches reports whether r1 and r2 overlap or are adjacent, i.e. whether their union is a single range.
func Touches(r1, r2 Range) bool {
	return r1.Start <= r2.End && r2.Start <= r1.End
}
