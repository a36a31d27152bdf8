package resample_test

import (
	"fmt"

	"github.com/cwbudde/algo-interp/dsp/interp"
	"github.com/cwbudde/algo-interp/dsp/resample"
)

func ExampleScale() {
	plane := [][]float64{
		{0, 0},
		{1, 1},
	}
	out, _ := resample.Scale(plane, 4, 1, resample.WithMethod(interp.KindLinear))
	for _, col := range out {
		fmt.Printf("%.2f ", col[0])
	}
	fmt.Println()
	// Output:
	// 0.00 0.25 0.75 1.00
}
