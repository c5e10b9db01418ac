package model

import (
	"fmt"
	"math"
)

// Interval maps the source range [SourceStart, SourceEnd) onto the destination range starting at
// DestinationStart, keeping the relative order of identifiers.
type Interval struct {
	SourceStart      uint64
	SourceEnd        uint64
	DestinationStart uint64
}

// NewInterval builds an Interval from a (destination, source, length) triple.
//
// Both the source end and the destination end must fit into uint64.
func NewInterval(destinationStart, sourceStart, length uint64) (Interval, error) {
	src, err := RangeOf(sourceStart, length)
	if err != nil {
		return Interval{}, fmt.Errorf("interval: invalid source: %w", err)
	}
	if destinationStart > math.MaxUint64-length {
		return Interval{}, fmt.Errorf("interval: destination %d length %d: %w", destinationStart, length, ErrOverflow)
	}
	return Interval{
		SourceStart:      src.Start,
		SourceEnd:        src.End,
		DestinationStart: destinationStart,
	}, nil
}

// Validate checks an Interval built without NewInterval: the source must be non-empty and the
// destination end must fit into uint64.
func (i Interval) Validate() error {
	if i.SourceEnd <= i.SourceStart {
		return fmt.Errorf("interval: invalid source %s: %w", i.Source(), ErrEmptyRange)
	}
	if i.DestinationStart > math.MaxUint64-(i.SourceEnd-i.SourceStart) {
		return fmt.Errorf("interval: destination %d length %d: %w", i.DestinationStart, i.SourceEnd-i.SourceStart, ErrOverflow)
	}
	return nil
}

func (i Interval) Source() Range {
	return Range{Start: i.SourceStart, End: i.SourceEnd}
}

func (i Interval) Destination() Range {
	return Range{Start: i.DestinationStart, End: i.DestinationStart + (i.SourceEnd - i.SourceStart)}
}

// MapScalar returns the mapped value of n if n is inside the source range.
func (i Interval) MapScalar(n uint64) (uint64, bool) {
	if n < i.SourceStart || n >= i.SourceEnd {
		return 0, false
	}
	return i.DestinationStart + (n - i.SourceStart), true
}

// Split is the result of intersecting a Range with an Interval.
//
// If Matched is false, Mapped is the zero Range and Remainder holds the input range unchanged.
// Otherwise Mapped is the intersection shifted to the destination, and Remainder holds the zero,
// one or two pieces of the input left outside the source range. A left piece always comes before
// a right piece.
type Split struct {
	Mapped    Range
	Matched   bool
	Remainder []Range
}

// MapRange intersects r with the source range of i and maps the intersection.
func (i Interval) MapRange(r Range) Split {
	start := max(r.Start, i.SourceStart)
	end := min(r.End, i.SourceEnd)
	if start >= end {
		return Split{Remainder: []Range{r}}
	}

	ret := Split{
		Mapped: Range{
			Start: i.DestinationStart + (start - i.SourceStart),
			End:   i.DestinationStart + (end - i.SourceStart),
		},
		Matched: true,
	}
	if r.Start < start {
		ret.Remainder = append(ret.Remainder, Range{Start: r.Start, End: start})
	}
	if end < r.End {
		ret.Remainder = append(ret.Remainder, Range{Start: end, End: r.End})
	}
	return ret
}

func (i Interval) String() string {
	return fmt.Sprintf("%s -> %s", i.Source(), i.Destination())
}
