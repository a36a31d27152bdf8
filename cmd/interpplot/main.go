// Command interpplot draws the samples of a grid together with every
// interpolation method evaluated over the whole domain.
//
// Usage:
//
//	interpplot [flags]
//
// The figure is rendered through matplotlib, so a python interpreter with
// matplotlib must be on the PATH.
//
// Examples:
//
//	interpplot -y 0,1,0,1,0 -out methods.png
//	interpplot -a -1 -b 1 -y "1 0.2 0 0.2 1" -n 400 -title "Runge"
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-interp/dsp/core"
	"github.com/cwbudde/algo-interp/dsp/interp"
	plt "github.com/phil-mansfield/pyplot"
)

var colors = map[interp.Kind]string{
	interp.KindNearest: "g",
	interp.KindLinear:  "b",
	interp.KindNewton:  "r",
	interp.KindSpline:  "m",
}

type curve struct {
	kind interp.Kind
	ys   []float64
}

func main() {
	a := flag.Float64("a", 0, "left end of the domain")
	b := flag.Float64("b", 1, "right end of the domain")
	ys := flag.String("y", "", "comma separated sample values")
	n := flag.Int("n", 200, "number of evaluation points")
	out := flag.String("out", "interp.png", "output image file")
	title := flag.String("title", "Interpolation", "figure title")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: interpplot [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Plots all interpolation methods over the sample grid.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	y, err := parseFloats(*ys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	xs := core.Linspace(*a, *b, *n)
	cs, err := evaluateCurves(*a, *b, y, xs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	plot(core.Linspace(*a, *b, len(y)), y, xs, cs, *title, *out)
}

func evaluateCurves(a, b float64, y, xs []float64) ([]curve, error) {
	cs := make([]curve, 0, len(interp.Kinds()))
	for _, k := range interp.Kinds() {
		m, err := interp.New(k)
		if err != nil {
			return nil, err
		}
		if err := m.Init(a, b, y); err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		cs = append(cs, curve{kind: k, ys: interp.EvaluateAll(m, xs)})
	}
	return cs, nil
}

func plot(nodes, samples, xs []float64, cs []curve, title, fname string) {
	plt.Reset()
	plt.Figure(plt.Num(0))
	for _, c := range cs {
		plt.Plot(xs, c.ys, colors[c.kind], plt.Label(c.kind.String()), plt.LW(2))
	}
	plt.Plot(nodes, samples, "ok", plt.Label("samples"))
	plt.Title(title)
	plt.XLabel("$z$", plt.FontSize(16))
	plt.YLabel("$f(z)$", plt.FontSize(16))
	plt.Legend(plt.Loc("upper left"), plt.FrameOn(false))
	plt.SaveFig(fname)
	plt.Execute()
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.New("no samples given (use -y)")
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out[i] = v
	}
	return out, nil
}
