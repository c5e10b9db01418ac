package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestRangeSet_Add(t *testing.T) {
	s, err := NewRangeSet(Range{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add(Range{5, 5}); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("Got error %v, want %v", err, ErrEmptyRange)
	}
	if _, err := NewRangeSet(Range{3, 1}); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("Got error %v, want %v", err, ErrEmptyRange)
	}
	if s.Len() != 1 {
		t.Errorf("Got %d ranges, want 1", s.Len())
	}
}

func TestRangeSet_AppendEmpty(t *testing.T) {
	s := &RangeSet{}
	defer func() {
		if recover() == nil {
			t.Errorf("Append of an empty range should panic")
		}
		if !s.Empty() {
			t.Errorf("Got %s, want an empty set", s)
		}
		if _, ok := s.Min(); ok {
			t.Errorf("Empty set should have no minimum")
		}
	}()
	s.Append(Range{5, 5})
}

func TestRangeSet_Min(t *testing.T) {
	tcs := []struct {
		name   string
		ranges []Range
		want   uint64
		wantOK bool
	}{
		{
			name: "Empty",
		},
		{
			name:   "One",
			ranges: []Range{{7, 9}},
			want:   7,
			wantOK: true,
		},
		{
			name:   "Unsorted",
			ranges: []Range{{60, 61}, {46, 56}, {82, 85}},
			want:   46,
			wantOK: true,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewRangeSet(tc.ranges...)
			if err != nil {
				t.Fatal(err)
			}
			got, ok := s.Min()
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("Got (%d, %v), want (%d, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestRangeSet_Normalize(t *testing.T) {
	tcs := []struct {
		name   string
		ranges []Range
		want   []Range
		count  uint64
	}{
		{
			name:  "Empty",
			want:  []Range{},
			count: 0,
		},
		{
			name:   "Disjoint",
			ranges: []Range{{10, 12}, {0, 2}},
			want:   []Range{{0, 2}, {10, 12}},
			count:  4,
		},
		{
			name:   "Duplicated",
			ranges: []Range{{3, 5}, {3, 5}},
			want:   []Range{{3, 5}},
			count:  2,
		},
		{
			name:   "Overlapping",
			ranges: []Range{{5, 9}, {0, 6}, {8, 12}},
			want:   []Range{{0, 12}},
			count:  12,
		},
		{
			name:   "Adjacent",
			ranges: []Range{{0, 2}, {2, 4}, {5, 6}},
			want:   []Range{{0, 4}, {5, 6}},
			count:  5,
		},
		{
			name:   "Nested",
			ranges: []Range{{0, 100}, {10, 20}, {99, 100}},
			want:   []Range{{0, 100}},
			count:  100,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewRangeSet(tc.ranges...)
			if err != nil {
				t.Fatal(err)
			}
			got := s.Normalize()
			if !reflect.DeepEqual(got.Ranges(), tc.want) {
				t.Errorf("Got %s, want %v", got, tc.want)
			}
			if c := s.Count(); c != tc.count {
				t.Errorf("Got count %d, want %d", c, tc.count)
			}
			// Normalize must not modify the receiver.
			if s.Len() != len(tc.ranges) {
				t.Errorf("Got %d ranges after Normalize, want %d", s.Len(), len(tc.ranges))
			}
		})
	}
}

func TestRangeSet_Contains(t *testing.T) {
	s, err := NewRangeSet(Range{0, 2}, Range{10, 12})
	if err != nil {
		t.Fatal(err)
	}
	for n, want := range map[uint64]bool{0: true, 1: true, 2: false, 9: false, 11: true, 12: false} {
		if got := s.Contains(n); got != want {
			t.Errorf("%d: Got %v, want %v", n, got, want)
		}
	}
}
