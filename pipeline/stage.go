package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/liznear/almanac/model"
)

// ErrOverlap is matched by errors returned when two intervals of one stage overlap.
var ErrOverlap = errors.New("overlapping intervals")

// OverlapError reports the two intervals of a stage whose source ranges overlap.
type OverlapError struct {
	Stage string
	A, B  model.Interval
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("stage %q: source %s overlaps %s", e.Stage, e.A.Source(), e.B.Source())
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}

// Stage is a piecewise mapping of identifiers. Identifiers outside every interval map to themselves.
//
// Intervals are indexed by their source start. Since sources never overlap, the interval
// containing n (if any) is the one with the greatest source start <= n.
type Stage struct {
	name string
	from string
	to   string

	intervals *treemap.Map[uint64, model.Interval]
}

// NewStage builds a stage from intervals in any order. Overlapping source ranges are rejected.
func NewStage(name string, intervals ...model.Interval) (*Stage, error) {
	s := &Stage{
		name:      name,
		intervals: treemap.New[uint64, model.Interval](),
	}
	for _, iv := range intervals {
		if err := iv.Validate(); err != nil {
			return nil, fmt.Errorf("stage %q: %w", name, err)
		}
		if other, ok := s.overlapping(iv); ok {
			return nil, &OverlapError{Stage: name, A: other, B: iv}
		}
		s.intervals.Put(iv.SourceStart, iv)
	}
	return s, nil
}

// NewCategoryStage builds a stage named "<from>-to-<to>" which maps identifiers of the from
// category onto the to category.
func NewCategoryStage(from, to string, intervals ...model.Interval) (*Stage, error) {
	s, err := NewStage(from+"-to-"+to, intervals...)
	if err != nil {
		return nil, err
	}
	s.from = from
	s.to = to
	return s, nil
}

// overlapping returns an already indexed interval whose source overlaps iv.
func (s *Stage) overlapping(iv model.Interval) (model.Interval, bool) {
	if _, other, ok := s.intervals.Floor(iv.SourceStart); ok && other.SourceEnd > iv.SourceStart {
		return other, true
	}
	if _, other, ok := s.intervals.Ceiling(iv.SourceStart); ok && other.SourceStart < iv.SourceEnd {
		return other, true
	}
	return model.Interval{}, false
}

// next returns the interval containing n or, if there is none, the first interval after n.
func (s *Stage) next(n uint64) (model.Interval, bool) {
	if _, iv, ok := s.intervals.Floor(n); ok && iv.SourceEnd > n {
		return iv, true
	}
	_, iv, ok := s.intervals.Ceiling(n)
	return iv, ok
}

// MapScalar maps n through the stage.
func (s *Stage) MapScalar(n uint64) uint64 {
	_, iv, ok := s.intervals.Floor(n)
	if !ok {
		return n
	}
	if v, ok := iv.MapScalar(n); ok {
		return v
	}
	return n
}

// MapRanges maps every identifier in the input set through the stage without enumerating them.
//
// Each input range is swept from left to right over the sorted intervals: the part before the
// next interval is emitted unchanged, the part inside it is mapped, and the rest is carried on
// to the following interval. The output is not coalesced.
func (s *Stage) MapRanges(in *model.RangeSet) *model.RangeSet {
	out := &model.RangeSet{}
	for _, r := range in.Ranges() {
		s.mapRange(r, out)
	}
	return out
}

func (s *Stage) mapRange(r model.Range, out *model.RangeSet) {
	for {
		iv, ok := s.next(r.Start)
		if !ok || iv.SourceStart >= r.End {
			out.Append(r)
			return
		}

		// iv either contains r.Start or starts inside r, so the split always matches.
		split := iv.MapRange(r)
		rest := false
		for _, rem := range split.Remainder {
			if rem.End <= iv.SourceStart {
				// Gap before iv. No interval covers it, otherwise next would have returned it.
				out.Append(rem)
				continue
			}
			r = rem
			rest = true
		}
		out.Append(split.Mapped)
		if !rest {
			return
		}
	}
}

// Intervals returns the intervals sorted by source start.
func (s *Stage) Intervals() []model.Interval {
	return s.intervals.Values()
}

func (s *Stage) Len() int {
	return s.intervals.Size()
}

func (s *Stage) Name() string {
	return s.name
}

func (s *Stage) From() string {
	return s.from
}

func (s *Stage) To() string {
	return s.to
}

func (s *Stage) String() string {
	sb := strings.Builder{}
	_, _ = fmt.Fprintf(&sb, "%s:", s.name)
	iter := s.intervals.Iterator()
	for iter.Next() {
		iv := iter.Value()
		_, _ = fmt.Fprintf(&sb, " %s", iv)
	}
	return sb.String()
}
