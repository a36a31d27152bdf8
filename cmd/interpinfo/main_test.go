package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-interp/dsp/interp"
	"github.com/stretchr/testify/require"
)

func rows(t *testing.T, out string) [][]string {
	t.Helper()
	var rs [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		rs = append(rs, strings.Fields(line))
	}
	return rs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats("0, 1.5  -2\t3e1")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1.5, -2, 30}, got)

	_, err = parseFloats("1,x")
	require.Error(t, err)
}

func TestParseKinds(t *testing.T) {
	got, err := parseKinds("all")
	require.NoError(t, err)
	require.Equal(t, interp.Kinds(), got)

	got, err = parseKinds("Spline, linear,")
	require.NoError(t, err)
	require.Equal(t, []interp.Kind{interp.KindSpline, interp.KindLinear}, got)

	_, err = parseKinds("cubic")
	require.ErrorIs(t, err, interp.ErrUnknownKind)
	_, err = parseKinds(" , ")
	require.Error(t, err)
}

func TestApplyConfig(t *testing.T) {
	cfg, err := readConfigString("[Grid]\nA = -1\nB = 3\nY = 0, 1, 0\nMethod = newton\nAt = 1\nN = 5\n")
	require.NoError(t, err)

	s := defaultSettings()
	require.NoError(t, s.applyConfig(cfg))
	require.Equal(t, -1.0, s.a)
	require.Equal(t, 3.0, s.b)
	require.Equal(t, []float64{0, 1, 0}, s.y)
	require.Equal(t, []interp.Kind{interp.KindNewton}, s.methods)
	require.Equal(t, []float64{1}, s.at)
	require.Equal(t, 5, s.n)

	cfg, err = readConfigString("[Grid]\nA = left\n")
	require.NoError(t, err)
	s = defaultSettings()
	require.Error(t, s.applyConfig(cfg))
}

func TestSettingsPoints(t *testing.T) {
	s := defaultSettings()
	s.a, s.b, s.n = 0, 2, 5
	require.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, s.points())
	s.at = []float64{0.25}
	require.Equal(t, []float64{0.25}, s.points())
}

func TestRunEvaluation(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"-a", "0", "-b", "2", "-y", "0,1,0", "-at", "0.5,1.5", "-method", "linear,newton"}, &buf)
	require.NoError(t, err)

	rs := rows(t, buf.String())
	require.Equal(t, []string{"z", "linear", "newton"}, rs[0])
	require.Equal(t, []string{"0.5", "0.500000", "0.750000"}, rs[2])
	require.Equal(t, []string{"1.5", "0.500000", "0.750000"}, rs[3])
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	cfgPath := writeFile(t, "grid.ini", "[Grid]\nA = 0\nB = 2\nY = 0, 1, 0\nMethod = spline\n")
	var buf bytes.Buffer
	err := run([]string{"-config", cfgPath, "-method", "nearest", "-at", "0.4"}, &buf)
	require.NoError(t, err)

	rs := rows(t, buf.String())
	require.Equal(t, []string{"z", "nearest"}, rs[0])
	require.Equal(t, []string{"0.4", "0.000000"}, rs[2])
}

func TestRunTable(t *testing.T) {
	tablePath := writeFile(t, "data.txt", "0 1\n1 4\n2 9\n")
	var buf bytes.Buffer
	err := run([]string{"-table", tablePath, "-col", "1", "-a", "0", "-b", "2", "-at", "1", "-method", "newton"}, &buf)
	require.NoError(t, err)

	rs := rows(t, buf.String())
	require.Equal(t, []string{"1", "4.000000"}, rs[2])
}

func TestRunSpectrum(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-fft", "-y", "0,1,0"}, &buf))

	rs := rows(t, buf.String())
	require.Len(t, rs, 2+4)
	for _, r := range rs[2:] {
		require.Equal(t, r[1], r[2])
	}
}

func TestRunSpectrumWindow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-fft", "-window", "hann", "-y", "2,2,2,2"}, &buf))

	rs := rows(t, buf.String())
	// Hann-windowed constant: [0 1 2 1] / 4 gives bins 1, 0.5, 0, 0.5.
	require.Equal(t, "1.000000", rs[2][1])
	require.Equal(t, "0.500000", rs[3][1])
	require.Equal(t, "0.500000", rs[5][1])

	require.Error(t, run([]string{"-fft", "-window", "kaiser", "-y", "1,2"}, &buf))

	buf.Reset()
	require.NoError(t, run([]string{"-fft", "-norm", "backward", "-y", "2,2,2,2"}, &buf))
	require.Equal(t, "8.000000", rows(t, buf.String())[2][1])
	require.Error(t, run([]string{"-fft", "-norm", "none", "-y", "1,2"}, &buf))
}

func TestRunList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-list"}, &buf))
	require.Equal(t, "nearest\nlinear\nnewton\nspline\n", buf.String())
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, run(nil, &buf), errNoSamples)
	require.ErrorIs(t, run([]string{"-y", "1,2", "-a", "1", "-b", "1"}, &buf), interp.ErrInvalidDomain)
	require.Error(t, run([]string{"-y", "1,2", "-method", "cubic"}, &buf))
	require.Error(t, run([]string{"-config", filepath.Join(t.TempDir(), "missing.ini")}, &buf))
}
