package almanac

import (
	"errors"
	"fmt"
	"io"

	"github.com/liznear/almanac/model"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type yamlAlmanac struct {
	Seeds []uint64  `yaml:"seeds"`
	Maps  []yamlMap `yaml:"maps"`
}

type yamlMap struct {
	From   string     `yaml:"from"`
	To     string     `yaml:"to"`
	Ranges [][]uint64 `yaml:"ranges"`

	line int
}

var yamlMapKeys = map[string]bool{"from": true, "to": true, "ranges": true}

// UnmarshalYAML records the line of the map so that errors can point to it. Unknown keys are
// rejected, as the top level decoder does.
func (m *yamlMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if k := value.Content[i]; !yamlMapKeys[k.Value] {
				return &SyntaxError{Line: k.Line, Err: fmt.Errorf("unknown map field %q", k.Value)}
			}
		}
	}
	type plain yamlMap
	if err := value.Decode((*plain)(m)); err != nil {
		return err
	}
	m.line = value.Line
	return nil
}

// ParseYAML reads an almanac in the YAML format.
func ParseYAML(r io.Reader) (*Almanac, error) {
	var doc yamlAlmanac
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("almanac: fail to decode yaml: %w", err)
	}

	var (
		blocks []block
		errs   error
	)
	for _, m := range doc.Maps {
		if m.From == "" || m.To == "" {
			errs = multierr.Append(errs, &SyntaxError{Line: m.line, Err: errors.New("map without from or to")})
			continue
		}
		b := block{line: m.line, from: m.From, to: m.To}
		for j, vs := range m.Ranges {
			if len(vs) != 3 {
				errs = multierr.Append(errs, &SyntaxError{Line: m.line, Err: fmt.Errorf("range %d: want 3 numbers, got %d", j, len(vs))})
				continue
			}
			iv, err := model.NewInterval(vs[0], vs[1], vs[2])
			if err != nil {
				errs = multierr.Append(errs, &SyntaxError{Line: m.line, Err: fmt.Errorf("range %d: %w", j, err)})
				continue
			}
			b.intervals = append(b.intervals, iv)
		}
		blocks = append(blocks, b)
	}
	if errs != nil {
		return nil, fmt.Errorf("almanac: fail to parse yaml: %w", errs)
	}
	return build(doc.Seeds, blocks)
}
