package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-interp/dsp/core"
	"github.com/cwbudde/algo-interp/dsp/interp"
	"github.com/phil-mansfield/table"
	"gopkg.in/gcfg.v1"
)

// fileConfig mirrors the INI layout accepted by -config:
//
//	[Grid]
//	A = 0
//	B = 2
//	Y = 0, 1, 0
//	Method = linear, spline
//	At = 0.5, 1.5
type fileConfig struct {
	Grid struct {
		A      string
		B      string
		Y      string
		Method string
		At     string
		N      int
	}
}

type settings struct {
	a, b    float64
	y       []float64
	methods []interp.Kind
	at      []float64
	n       int
}

func defaultSettings() settings {
	return settings{a: 0, b: 1, methods: interp.Kinds(), n: 11}
}

// applyConfig overlays the values present in cfg onto s.
func (s *settings) applyConfig(cfg fileConfig) error {
	g := cfg.Grid
	if g.A != "" {
		a, err := strconv.ParseFloat(strings.TrimSpace(g.A), 64)
		if err != nil {
			return fmt.Errorf("config A: invalid number %q", g.A)
		}
		s.a = a
	}
	if g.B != "" {
		b, err := strconv.ParseFloat(strings.TrimSpace(g.B), 64)
		if err != nil {
			return fmt.Errorf("config B: invalid number %q", g.B)
		}
		s.b = b
	}
	if g.N > 0 {
		s.n = g.N
	}
	if g.Y != "" {
		y, err := parseFloats(g.Y)
		if err != nil {
			return fmt.Errorf("config Y: %w", err)
		}
		s.y = y
	}
	if g.At != "" {
		at, err := parseFloats(g.At)
		if err != nil {
			return fmt.Errorf("config At: %w", err)
		}
		s.at = at
	}
	if g.Method != "" {
		kinds, err := parseKinds(g.Method)
		if err != nil {
			return fmt.Errorf("config Method: %w", err)
		}
		s.methods = kinds
	}
	return nil
}

func readConfigFile(fname string) (fileConfig, error) {
	var cfg fileConfig
	if err := gcfg.ReadFileInto(&cfg, fname); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readConfigString(str string) (fileConfig, error) {
	var cfg fileConfig
	if err := gcfg.ReadStringInto(&cfg, str); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readColumn loads column col of a whitespace separated text table.
func readColumn(fname string, col int) ([]float64, error) {
	if col < 0 {
		return nil, fmt.Errorf("column %d out of range", col)
	}
	cols, err := table.ReadTable(fname, []int{col}, nil)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// parseFloats splits a comma or whitespace separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseKinds accepts a comma separated list of method names or "all".
func parseKinds(s string) ([]interp.Kind, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return interp.Kinds(), nil
	}
	var kinds []interp.Kind
	for _, name := range strings.Split(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := interp.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, errors.New("no methods selected")
	}
	return kinds, nil
}

// points returns the evaluation abscissas: the explicit list if given,
// otherwise n equally spaced points over [a, b].
func (s settings) points() []float64 {
	if len(s.at) > 0 {
		return s.at
	}
	return core.Linspace(s.a, s.b, s.n)
}
