package pipeline

import (
	"github.com/liznear/almanac/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MinimumOver returns the smallest identifier reachable from the given ranges through p.
//
// It returns false only if ranges is empty.
func MinimumOver(p *Pipeline, ranges *model.RangeSet) (uint64, bool) {
	if ranges == nil || ranges.Empty() {
		return 0, false
	}
	var (
		ret uint64
		ok  bool
		n   = ranges.Len()
	)
	if p.cfg.Parallelism == 1 || n == 1 {
		ret, ok = p.EvaluateRanges(ranges).Min()
	} else {
		// Ranges are independent of each other, so each chunk is evaluated on its own and only the
		// minima are combined.
		rs := ranges.Normalize().Ranges()
		n = len(rs)
		ret, ok = p.reduceMin(n, func(lo, hi int) (uint64, bool) {
			chunk := &model.RangeSet{}
			for _, r := range rs[lo:hi] {
				chunk.Append(r)
			}
			return p.EvaluateRanges(chunk).Min()
		})
	}
	p.cfg.Logger.Debug("Minimum over ranges", zap.Int("ranges", n), zap.Uint64("min", ret))
	return ret, ok
}

// MinimumOverScalars returns the smallest value obtained by mapping each id through p.
//
// It returns false only if ids is empty.
func MinimumOverScalars(p *Pipeline, ids []uint64) (uint64, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	return p.reduceMin(len(ids), func(lo, hi int) (uint64, bool) {
		ret := p.EvaluateScalar(ids[lo])
		for _, id := range ids[lo+1 : hi] {
			ret = min(ret, p.EvaluateScalar(id))
		}
		return ret, true
	})
}

// reduceMin splits [0, n) into at most Parallelism chunks, runs f on each chunk and returns the
// minimum of the results. f must be safe to call concurrently.
func (p *Pipeline) reduceMin(n int, f func(lo, hi int) (uint64, bool)) (uint64, bool) {
	workers := min(p.cfg.Parallelism, n)
	if workers <= 1 {
		return f(0, n)
	}

	var (
		size    = (n + workers - 1) / workers
		partial = make([]uint64, workers)
		found   = make([]bool, workers)
		g       errgroup.Group
	)
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo := w * size
		hi := min(lo+size, n)
		if lo >= hi {
			break
		}
		w := w
		g.Go(func() error {
			partial[w], found[w] = f(lo, hi)
			return nil
		})
	}
	// Evaluation never fails, so there is no error to report.
	_ = g.Wait()

	var (
		ret uint64
		ok  bool
	)
	for w := range partial {
		if !found[w] {
			continue
		}
		if !ok || partial[w] < ret {
			ret = partial[w]
			ok = true
		}
	}
	return ret, ok
}
