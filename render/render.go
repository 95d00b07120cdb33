// Package render draws imported field datasets as arrow and scatter plots.
package render

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/fieldslice/field"
)

var (
	// Ordered from low to high values.
	palette = []string{
		"DarkSlateBlue", "DarkTurquoise", "LimeGreen",
		"Gold", "DarkOrange", "Crimson",
	}
	arrowColor  = "k"
	deviceColor = "DimGray"
)

// Renderer turns datasets into plotter calls. Unsliced datasets are drawn
// projected onto the I-J plane.
type Renderer struct {
	Plotter Plotter
	// Quantity names the field in plot titles.
	Quantity string
	// ArrowScale multiplies arrow lengths. Zero scales the longest arrow to
	// one grid unit.
	ArrowScale float64
	// Bins is the number of colors used for values and magnitudes.
	Bins int
	// Device is drawn under Z slices and unsliced plots if non-nil.
	Device *DevicePoints
}

// Vectors draws a vector field as arrows starting at each grid point.
// Unsliced fields are colored by magnitude.
func (r *Renderer) Vectors(vf *field.VectorField) {
	axes := vf.Axes()
	xs, ys := vf.Coords[0], vf.Coords[1]
	us, vs := vf.Components[0], vf.Components[1]

	r.Plotter.Figure()
	r.labels(vf.Plane, axes)
	r.device(vf.Plane)

	scale := r.arrowScale(us, vs)
	if vf.Plane.IsSliced() {
		r.arrows(xs, ys, us, vs, scale, all(vf.Len()), arrowColor)
		return
	}

	for bin, idxs := range r.bins(vf.Magnitudes) {
		if len(idxs) == 0 {
			continue
		}
		r.arrows(xs, ys, us, vs, scale, idxs, r.color(bin))
	}
}

// Scalars draws a scalar field as points colored by value.
func (r *Renderer) Scalars(sf *field.ScalarField) {
	cols := sf.Projected()
	xs, ys := cols[0], cols[1]

	r.Plotter.Figure()
	r.labels(sf.Plane, sf.Plane.InPlane())
	r.device(sf.Plane)

	for bin, idxs := range r.bins(sf.Values) {
		if len(idxs) == 0 {
			continue
		}
		r.Plotter.Plot(
			gather(xs, idxs), gather(ys, idxs),
			Style{Format: "o", Color: r.color(bin)},
		)
	}
}

// Finish writes the figure to fname, or shows it if fname is empty, and
// then runs the plotter.
func (r *Renderer) Finish(fname string) {
	if fname == "" {
		r.Plotter.Show()
	} else {
		r.Plotter.SaveFig(fname)
	}
	r.Plotter.Execute()
}

func (r *Renderer) labels(p field.Plane, axes []field.Axis) {
	if p.IsSliced() {
		r.Plotter.Title(fmt.Sprintf("%s: %s", r.Quantity, p))
	} else {
		r.Plotter.Title(fmt.Sprintf("%s: I-J projection", r.Quantity))
	}
	r.Plotter.XLabel(axes[0].Label() + " coordinates")
	r.Plotter.YLabel(axes[1].Label() + " coordinates")
}

func (r *Renderer) device(p field.Plane) {
	if r.Device == nil || r.Device.Len() == 0 {
		return
	}
	if p.Axis() == field.Z || !p.IsSliced() {
		r.Plotter.Plot(
			r.Device.Is, r.Device.Js, Style{Format: "s", Color: deviceColor},
		)
	}
}

// arrows draws the arrows of the given records as a single line broken by
// NaNs, plus a marker at each tail. Records with non-finite components only
// get a tail marker.
func (r *Renderer) arrows(
	xs, ys, us, vs []float64, scale float64, idxs []int, color string,
) {
	segXs := make([]float64, 0, 3*len(idxs))
	segYs := make([]float64, 0, 3*len(idxs))
	for _, i := range idxs {
		if !finite(us[i]) || !finite(vs[i]) {
			continue
		}
		segXs = append(segXs, xs[i], xs[i]+scale*us[i], math.NaN())
		segYs = append(segYs, ys[i], ys[i]+scale*vs[i], math.NaN())
	}

	r.Plotter.Plot(segXs, segYs, Style{Format: "-", Color: color})
	r.Plotter.Plot(
		gather(xs, idxs), gather(ys, idxs), Style{Format: "o", Color: color},
	)
}

func (r *Renderer) arrowScale(us, vs []float64) float64 {
	if r.ArrowScale > 0 {
		return r.ArrowScale
	}

	maxLen := 0.0
	for i := range us {
		if l := math.Hypot(us[i], vs[i]); finite(l) {
			maxLen = math.Max(maxLen, l)
		}
	}
	if maxLen == 0 {
		return 1
	}
	return 1 / maxLen
}

// bins splits the indices of vals into r.Bins equal-width bins between the
// minimum and maximum finite values. NaN and infinite values belong to no
// bin and are not drawn.
func (r *Renderer) bins(vals []float64) [][]int {
	n := r.Bins
	if n <= 0 {
		n = len(palette)
	}
	out := make([][]int, n)

	ok := make([]float64, 0, len(vals))
	for _, v := range vals {
		if finite(v) {
			ok = append(ok, v)
		}
	}
	if len(ok) == 0 {
		return out
	}

	lo, hi := floats.Min(ok), floats.Max(ok)
	for i, v := range vals {
		if !finite(v) {
			continue
		}
		b := 0
		if hi > lo {
			b = int(float64(n) * (v - lo) / (hi - lo))
		}
		if b < 0 {
			b = 0
		} else if b >= n {
			b = n - 1
		}
		out[b] = append(out[b], i)
	}
	return out
}

func (r *Renderer) color(bin int) string {
	n := r.Bins
	if n <= 0 {
		n = len(palette)
	}
	return palette[bin*len(palette)/n]
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func all(n int) []int {
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	return idxs
}

func gather(xs []float64, idxs []int) []float64 {
	out := make([]float64, len(idxs))
	for j, i := range idxs {
		out[j] = xs[i]
	}
	return out
}
