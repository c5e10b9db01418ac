// Package almanac reads almanacs: a list of seeds followed by the stages mapping seeds, through
// a chain of categories, to locations.
//
// Two formats are supported. The text format is
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// where every map line is "destination source length". The YAML format carries the same data:
//
//	seeds: [79, 14, 55, 13]
//	maps:
//	  - from: seed
//	    to: soil
//	    ranges:
//	      - [50, 98, 2]
//	      - [52, 50, 48]
package almanac

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/liznear/almanac/model"
	"github.com/liznear/almanac/pipeline"
	"github.com/liznear/almanac/utils"
	"go.uber.org/multierr"
)

var (
	// ErrOddSeeds is returned when seeds are read as (start, length) pairs but their count is odd.
	ErrOddSeeds = errors.New("odd number of seed values")

	// ErrBrokenChain is returned when a stage does not start from the category the previous stage
	// ends with.
	ErrBrokenChain = errors.New("broken category chain")
)

// SyntaxError reports a malformed line of an almanac.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

type Almanac struct {
	Seeds  []uint64
	Stages []*pipeline.Stage
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() (*model.RangeSet, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("almanac: %d seed values: %w", len(a.Seeds), ErrOddSeeds)
	}
	ret := &model.RangeSet{}
	for i := 0; i < len(a.Seeds); i += 2 {
		r, err := model.RangeOf(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("almanac: seed pair %d: %w", i/2, err)
		}
		if err := ret.Add(r); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// Pipeline composes the stages of the almanac in order.
func (a *Almanac) Pipeline(opts ...pipeline.Option) *pipeline.Pipeline {
	return pipeline.New(a.Stages, opts...)
}

// Categories returns the chain of categories, e.g. [seed soil ... location].
func (a *Almanac) Categories() []string {
	if len(a.Stages) == 0 {
		return nil
	}
	ret := []string{a.Stages[0].From()}
	for _, s := range a.Stages {
		ret = append(ret, s.To())
	}
	return ret
}

// Load reads the almanac at path. Files ending in .yaml or .yml are read as YAML, anything else
// as text.
func Load(path string) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("almanac: fail to open %q: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return Parse(f)
	}
}

// block is one parsed map, before it is turned into a stage.
type block struct {
	line      int
	from      string
	to        string
	intervals []model.Interval
}

// build turns blocks into stages and checks that they form a chain.
func build(seeds []uint64, blocks []block) (*Almanac, error) {
	a := &Almanac{Seeds: seeds}
	if err := utils.Run(
		utils.ToRunnable1(a.addStages, blocks),
		a.checkChain,
	); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Almanac) addStages(blocks []block) error {
	var errs error
	for _, b := range blocks {
		s, err := pipeline.NewCategoryStage(b.from, b.to, b.intervals...)
		if err != nil {
			errs = multierr.Append(errs, &SyntaxError{Line: b.line, Err: err})
			continue
		}
		a.Stages = append(a.Stages, s)
	}
	if errs != nil {
		return fmt.Errorf("almanac: fail to build stages: %w", errs)
	}
	return nil
}

func (a *Almanac) checkChain() error {
	ss := a.Stages
	for i := 1; i < len(ss); i++ {
		if ss[i-1].To() != ss[i].From() {
			return fmt.Errorf("almanac: %q is followed by %q: %w", ss[i-1].Name(), ss[i].Name(), ErrBrokenChain)
		}
	}
	return nil
}
