package pipeline

import (
	"testing"

	"github.com/liznear/almanac/model"
)

// exampleStages are the seven stages of the sample almanac.
var exampleStages = []struct {
	from, to string
	triples  [][3]uint64
}{
	{"seed", "soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
	{"soil", "fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer", "water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water", "light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
	{"light", "temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature", "humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity", "location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
}

var exampleSeeds = []uint64{79, 14, 55, 13}

func mustStage(t *testing.T, name string, triples ...[3]uint64) *Stage {
	t.Helper()
	var ivs []model.Interval
	for _, tr := range triples {
		iv, err := model.NewInterval(tr[0], tr[1], tr[2])
		if err != nil {
			t.Fatalf("Fail to build interval %v: %v", tr, err)
		}
		ivs = append(ivs, iv)
	}
	s, err := NewStage(name, ivs...)
	if err != nil {
		t.Fatalf("Fail to build stage %q: %v", name, err)
	}
	return s
}

func examplePipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	var stages []*Stage
	for _, es := range exampleStages {
		stages = append(stages, mustStage(t, es.from+"-to-"+es.to, es.triples...))
	}
	return New(stages, opts...)
}

func mustRangeSet(t *testing.T, ranges ...model.Range) *model.RangeSet {
	t.Helper()
	s, err := model.NewRangeSet(ranges...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// enumerate maps every identifier of in one by one. Only usable for small inputs.
func enumerate(p *Pipeline, in *model.RangeSet) map[uint64]bool {
	ret := make(map[uint64]bool)
	for _, r := range in.Ranges() {
		for n := r.Start; n < r.End; n++ {
			ret[p.EvaluateScalar(n)] = true
		}
	}
	return ret
}
