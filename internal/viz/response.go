package viz

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/guptarohit/asciigraph"

	"github.com/avetk/ladsyn/internal/poly"
)

// Magnitude samples |N(jw)/D(jw)| in decibels over n log-spaced frequencies
// in [fmin, fmax]. Samples landing on a pole are clamped so a reactance
// function's resonances stay plottable.
func Magnitude(num, den poly.Polynomial, fmin, fmax float64, n int) []float64 {
	const clampDB = 120.0

	data := make([]float64, n)
	step := math.Pow(fmax/fmin, 1/float64(n-1))
	w := fmin
	for i := 0; i < n; i++ {
		d := cmplx.Abs(den.EvalJW(w))
		nm := cmplx.Abs(num.EvalJW(w))
		var db float64
		switch {
		case d < 1e-15:
			db = clampDB
		case nm < 1e-15:
			db = -clampDB
		default:
			db = 20 * math.Log10(nm/d)
		}
		if db > clampDB {
			db = clampDB
		} else if db < -clampDB {
			db = -clampDB
		}
		data[i] = db
		w *= step
	}
	return data
}

// PlotResponse renders the magnitude response as a terminal graph.
func PlotResponse(num, den poly.Polynomial, fmin, fmax float64, n, width, height int) string {
	data := Magnitude(num, den, fmin, fmax, n)
	caption := fmt.Sprintf("|Z(jw)| dB, w in [%g, %g] rad/s", fmin, fmax)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
