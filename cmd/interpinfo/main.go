// Command interpinfo evaluates the interpolation methods on a sample grid
// and prints the results as a table.
//
// Usage:
//
//	interpinfo [flags]
//
// Samples come from -y, from a column of a text table (-table, -col) or from
// the [Grid] section of an INI file (-config). Explicit flags override the
// file.
//
// Examples:
//
//	interpinfo -a 0 -b 2 -y 0,1,0 -at 0.5,1.5
//	interpinfo -method spline,newton -n 21 -y "1 4 9 16"
//	interpinfo -config grid.ini
//	interpinfo -table data.txt -col 1 -a 0 -b 10
//	interpinfo -fft -y 0,1,0,-1
//	interpinfo -fft -window hann -y 1,2,3,4,5
//	interpinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-interp/dsp/core"
	"github.com/cwbudde/algo-interp/dsp/fourier"
	"github.com/cwbudde/algo-interp/dsp/interp"
)

var errNoSamples = errors.New("no samples given (use -y, -table or -config)")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("interpinfo", flag.ContinueOnError)
	configFile := fs.String("config", "", "INI file with a [Grid] section")
	tableFile := fs.String("table", "", "text table to read samples from")
	col := fs.Int("col", 0, "column of -table holding the samples")
	methods := fs.String("method", "all", "comma separated methods or \"all\"")
	a := fs.Float64("a", 0, "left end of the domain")
	b := fs.Float64("b", 1, "right end of the domain")
	ys := fs.String("y", "", "comma separated sample values")
	at := fs.String("at", "", "comma separated evaluation points")
	n := fs.Int("n", 11, "number of evaluation points when -at is empty")
	list := fs.Bool("list", false, "list available methods")
	spectrum := fs.Bool("fft", false, "print the DFT and FFT magnitude of the samples")
	normName := fs.String("norm", "forward", "normalization for -fft (forward, backward, ortho)")
	windowName := fs.String("window", "rectangular", "window applied before -fft (rectangular, hann, hamming, blackman)")
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: interpinfo [flags]\n\n")
		fmt.Fprintf(w, "Evaluates interpolation methods on equally spaced samples.\n\n")
		fmt.Fprintf(w, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  interpinfo -a 0 -b 2 -y 0,1,0 -at 0.5,1.5\n")
		fmt.Fprintf(w, "  interpinfo -config grid.ini\n")
		fmt.Fprintf(w, "  interpinfo -fft -y 0,1,0,-1\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		return printList(out)
	}

	s := defaultSettings()
	if *configFile != "" {
		cfg, err := readConfigFile(*configFile)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := s.applyConfig(cfg); err != nil {
			return err
		}
	}
	if *tableFile != "" {
		y, err := readColumn(*tableFile, *col)
		if err != nil {
			return fmt.Errorf("read table: %w", err)
		}
		s.y = y
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "a":
			s.a = *a
		case "b":
			s.b = *b
		case "n":
			s.n = *n
		case "y":
			s.y, err = parseFloats(*ys)
		case "at":
			s.at, err = parseFloats(*at)
		case "method":
			s.methods, err = parseKinds(*methods)
		}
	})
	if err != nil {
		return err
	}

	if len(s.y) == 0 {
		return errNoSamples
	}
	if *spectrum {
		w, err := fourier.ParseWindow(*windowName)
		if err != nil {
			return err
		}
		norm, err := fourier.ParseNormalization(*normName)
		if err != nil {
			return err
		}
		return printSpectrum(out, s.y, w, norm)
	}
	return printEvaluation(out, s)
}

func printList(out io.Writer) error {
	for _, k := range interp.Kinds() {
		if _, err := fmt.Fprintln(out, k); err != nil {
			return err
		}
	}
	return nil
}

func printEvaluation(out io.Writer, s settings) error {
	ms := make([]interp.Method, len(s.methods))
	for i, k := range s.methods {
		m, err := interp.New(k)
		if err != nil {
			return err
		}
		if err := m.Init(s.a, s.b, s.y); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		ms[i] = m
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "z")
	for _, k := range s.methods {
		fmt.Fprintf(tw, "\t%s", k)
	}
	fmt.Fprintln(tw)
	fmt.Fprint(tw, "-")
	for range s.methods {
		fmt.Fprint(tw, "\t-")
	}
	fmt.Fprintln(tw)

	for _, z := range s.points() {
		fmt.Fprintf(tw, "%.6g", z)
		for _, m := range ms {
			fmt.Fprintf(tw, "\t%.6f", m.Evaluate(z))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// printSpectrum windows y, zero-pads it to the next power of two and prints
// the DFT and FFT magnitudes side by side.
func printSpectrum(out io.Writer, y []float64, w fourier.Window, norm fourier.Normalization) error {
	size := core.NextPowerOfTwo(len(y))
	padded := make([]float64, size)
	copy(padded, w.Apply(y))

	in := make([]fourier.Complex, size)
	for i, v := range padded {
		in[i] = fourier.Real(v)
	}
	opt := fourier.WithNormalization(norm)
	fft, err := fourier.FFT(in, opt)
	if err != nil {
		return err
	}
	dftMag := fourier.Magnitude(fourier.DFT(padded, opt))
	fftMag := fourier.Magnitude(fft)
	phase := fourier.Phase(fft)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "k\t|DFT|\t|FFT|\tphase [rad]\n")
	fmt.Fprintf(tw, "-\t-----\t-----\t-----------\n")
	for k := range fft {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.4f\n", k, dftMag[k], fftMag[k], phase[k])
	}
	return tw.Flush()
}
