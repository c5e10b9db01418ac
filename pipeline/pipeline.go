package pipeline

import (
	"github.com/liznear/almanac/model"
	"go.uber.org/zap"
)

// Pipeline is an ordered composition of stages. The output of stage i is the input of stage i+1.
//
// A Pipeline is read-only once built and can be evaluated from multiple goroutines.
type Pipeline struct {
	stages []*Stage
	cfg    *Config
}

func New(stages []*Stage, opts ...Option) *Pipeline {
	config := &Config{
		Logger:      zap.NewNop(),
		Coalesce:    true,
		Parallelism: defaultParallelism,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.Parallelism < 1 {
		config.Parallelism = defaultParallelism
	}

	ss := make([]*Stage, len(stages))
	copy(ss, stages)
	return &Pipeline{
		stages: ss,
		cfg:    config,
	}
}

// Stages returns the stages in evaluation order.
func (p *Pipeline) Stages() []*Stage {
	ret := make([]*Stage, len(p.stages))
	copy(ret, p.stages)
	return ret
}

func (p *Pipeline) Len() int {
	return len(p.stages)
}

// EvaluateScalar maps id through every stage in order.
func (p *Pipeline) EvaluateScalar(id uint64) uint64 {
	for _, s := range p.stages {
		id = s.MapScalar(id)
	}
	return id
}

// Trace returns id followed by its value after each stage.
func (p *Pipeline) Trace(id uint64) []uint64 {
	ret := make([]uint64, 0, len(p.stages)+1)
	ret = append(ret, id)
	for _, s := range p.stages {
		id = s.MapScalar(id)
		ret = append(ret, id)
	}
	return ret
}

// EvaluateRanges maps every identifier in the input set through every stage in order and returns
// the set of reachable identifiers.
//
// With coalescing enabled (the default), each stage receives a sorted, disjoint set, so the
// same identifier is never processed twice.
func (p *Pipeline) EvaluateRanges(in *model.RangeSet) *model.RangeSet {
	cur := in
	if cur == nil {
		cur = &model.RangeSet{}
	}
	if p.cfg.Coalesce {
		cur = cur.Normalize()
	}
	for _, s := range p.stages {
		next := s.MapRanges(cur)
		if p.cfg.Coalesce {
			next = next.Normalize()
		}
		p.cfg.Logger.Debug("Stage applied",
			zap.String("stage", s.Name()),
			zap.Int("in", cur.Len()),
			zap.Int("out", next.Len()))
		cur = next
	}
	return cur
}

const defaultParallelism = 1

// Config configures how a Pipeline is evaluated. It never changes the results.
type Config struct {
	Logger *zap.Logger

	// Coalesce normalises the range set produced by every stage before feeding it to the next one.
	Coalesce bool

	// Parallelism is the maximum number of goroutines used by the minimum reductions.
	Parallelism int
}

type Option func(*Config)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

func WithCoalesce(coalesce bool) Option {
	return func(c *Config) {
		c.Coalesce = coalesce
	}
}

func WithParallelism(n int) Option {
	return func(c *Config) {
		c.Parallelism = n
	}
}
