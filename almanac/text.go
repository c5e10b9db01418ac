package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/liznear/almanac/model"
	"go.uber.org/multierr"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
	mapSep      = "-to-"
)

// Parse reads an almanac in the text format. Every malformed line is reported, not only the
// first one.
func Parse(r io.Reader) (*Almanac, error) {
	p := &textParser{}
	if err := p.scan(r); err != nil {
		return nil, err
	}
	return build(p.seeds, p.blocks)
}

type textParser struct {
	seeds    []uint64
	hasSeeds bool
	blocks   []block
	errs     error
}

func (p *textParser) fail(line int, err error) {
	p.errs = multierr.Append(p.errs, &SyntaxError{Line: line, Err: err})
}

func (p *textParser) scan(r io.Reader) error {
	s := bufio.NewScanner(r)
	var (
		n       int
		inBlock bool
	)
	for s.Scan() {
		n++
		line := strings.TrimSpace(s.Text())
		switch {
		case line == "":
			inBlock = false
		case strings.HasPrefix(line, seedsPrefix):
			if p.hasSeeds {
				p.fail(n, errors.New("duplicated seeds line"))
				continue
			}
			p.hasSeeds = true
			seeds, err := parseNumbers(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				p.fail(n, err)
				continue
			}
			p.seeds = seeds
		case strings.HasSuffix(line, mapSuffix):
			from, to, ok := strings.Cut(strings.TrimSuffix(line, mapSuffix), mapSep)
			if !ok || from == "" || to == "" {
				p.fail(n, fmt.Errorf("invalid map header %q", line))
				inBlock = false
				continue
			}
			p.blocks = append(p.blocks, block{line: n, from: from, to: to})
			inBlock = true
		case inBlock:
			iv, err := parseInterval(line)
			if err != nil {
				p.fail(n, err)
				continue
			}
			last := &p.blocks[len(p.blocks)-1]
			last.intervals = append(last.intervals, iv)
		default:
			p.fail(n, fmt.Errorf("unexpected line %q", line))
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("almanac: fail to read: %w", err)
	}
	if !p.hasSeeds {
		p.fail(n, errors.New("missing seeds line"))
	}
	if p.errs != nil {
		return fmt.Errorf("almanac: fail to parse: %w", p.errs)
	}
	return nil
}

func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	ret := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// parseInterval parses a "destination source length" line.
func parseInterval(line string) (model.Interval, error) {
	vs, err := parseNumbers(line)
	if err != nil {
		return model.Interval{}, err
	}
	if len(vs) != 3 {
		return model.Interval{}, fmt.Errorf("want 3 numbers, got %d in %q", len(vs), line)
	}
	return model.NewInterval(vs[0], vs[1], vs[2])
}
