package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/fieldslice/field"
)

type plotCall struct {
	xs, ys []float64
	style  Style
}

type recorder struct {
	figures        int
	plots          []plotCall
	title          string
	xLabel, yLabel string
	saved          string
	shown          bool
	executed       bool
}

func (rec *recorder) Figure() { rec.figures++ }
func (rec *recorder) Plot(xs, ys []float64, style Style) {
	rec.plots = append(rec.plots, plotCall{xs, ys, style})
}
func (rec *recorder) Title(title string)   { rec.title = title }
func (rec *recorder) XLabel(label string)  { rec.xLabel = label }
func (rec *recorder) YLabel(label string)  { rec.yLabel = label }
func (rec *recorder) SaveFig(fname string) { rec.saved = fname }
func (rec *recorder) Show()                { rec.shown = true }
func (rec *recorder) Execute()             { rec.executed = true }

func importVectors(t *testing.T, body string, p field.Plane) *field.VectorField {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "e-field")
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	vf, err := field.ImportVectors(fname, p)
	require.NoError(t, err)
	return vf
}

func importScalars(t *testing.T, body string, p field.Plane) *field.ScalarField {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "initial-voltages")
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	sf, err := field.ImportScalars(fname, p)
	require.NoError(t, err)
	return sf
}

const unitVectors = "0 0 0 1 0 0\n1 0 0 0 1 0\n1 1 0 0 0 1\n"

func TestVectorsSliced(t *testing.T) {
	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Electric", ArrowScale: 2}
	r.Vectors(importVectors(t, unitVectors, field.OnX(1)))

	assert.Equal(t, 1, rec.figures)
	assert.Equal(t, "Electric: I slice at i=1.0", rec.title)
	assert.Equal(t, "J coordinates", rec.xLabel)
	assert.Equal(t, "K coordinates", rec.yLabel)

	require.Len(t, rec.plots, 2)
	seg := rec.plots[0]
	assert.Equal(t, "-", seg.style.Format)
	require.Len(t, seg.xs, 6)
	// (j, k) = (0, 0) with (v, w) = (1, 0), then (1, 0) with (0, 1).
	assert.Equal(t, []float64{0, 2}, seg.xs[0:2])
	assert.Equal(t, []float64{0, 0}, seg.ys[0:2])
	assert.True(t, math.IsNaN(seg.xs[2]))
	assert.Equal(t, []float64{1, 1}, seg.xs[3:5])
	assert.Equal(t, []float64{0, 2}, seg.ys[3:5])

	tails := rec.plots[1]
	assert.Equal(t, "o", tails.style.Format)
	assert.Equal(t, []float64{0, 1}, tails.xs)
	assert.Equal(t, []float64{0, 0}, tails.ys)
}

func TestVectorsAutoScale(t *testing.T) {
	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Magnetic"}
	r.Vectors(importVectors(t, "0 0 0 3 4 0\n0 1 0 0 2 0\n", field.OnZ(0)))

	seg := rec.plots[0]
	assert.InDelta(t, 0.6, seg.xs[1], 1e-12)
	assert.InDelta(t, 0.8, seg.ys[1], 1e-12)
	assert.InDelta(t, 1.4, seg.ys[4], 1e-12)
}

func TestVectorsUnslicedColoredByMagnitude(t *testing.T) {
	body := "0 0 0 1 0 0\n1 0 0 2 0 0\n2 0 0 0 0 3\n"
	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Electric", Bins: 3}
	r.Vectors(importVectors(t, body, field.NoPlane()))

	assert.Equal(t, "Electric: I-J projection", rec.title)
	assert.Equal(t, "I coordinates", rec.xLabel)
	assert.Equal(t, "J coordinates", rec.yLabel)

	// Three distinct magnitudes give three bins with a segment and a tail
	// plot each.
	require.Len(t, rec.plots, 6)
	colors := map[string]bool{}
	for _, pc := range rec.plots {
		colors[pc.style.Color] = true
	}
	assert.Len(t, colors, 3)
}

func TestScalars(t *testing.T) {
	body := "0 0 0 1 10\n0 1 0 1 20\n1 0 0 1 30\n1 1 1 1 40\n"
	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Voltage", Bins: 2}
	r.Scalars(importScalars(t, body, field.OnY(0)))

	assert.Equal(t, "Voltage: J slice at j=0.0", rec.title)
	assert.Equal(t, "I coordinates", rec.xLabel)
	assert.Equal(t, "K coordinates", rec.yLabel)

	require.Len(t, rec.plots, 2)
	assert.Equal(t, []float64{0}, rec.plots[0].xs)
	assert.Equal(t, []float64{1}, rec.plots[1].xs)
	assert.Equal(t, palette[0], rec.plots[0].style.Color)
	assert.Equal(t, palette[3], rec.plots[1].style.Color)
}

func TestScalarsConstantValues(t *testing.T) {
	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Voltage"}
	r.Scalars(importScalars(t, "0 0 0 1 5\n1 1 1 1 5\n", field.NoPlane()))

	require.Len(t, rec.plots, 1)
	assert.Equal(t, []float64{0, 1}, rec.plots[0].xs)
}

func TestEmptySlice(t *testing.T) {
	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Voltage"}
	r.Scalars(importScalars(t, "0 0 0 1 5\n", field.OnX(3)))
	assert.Len(t, rec.plots, 0)
	assert.Equal(t, 1, rec.figures)
}

func TestDeviceOverlay(t *testing.T) {
	dev := &DevicePoints{Is: []float64{4, 5}, Js: []float64{6, 7}}

	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Voltage", Device: dev}
	r.Scalars(importScalars(t, "0 0 0 1 5\n", field.OnZ(0)))
	require.Len(t, rec.plots, 2)
	assert.Equal(t, dev.Is, rec.plots[0].xs)
	assert.Equal(t, "s", rec.plots[0].style.Format)

	rec = &recorder{}
	r.Plotter = rec
	r.Scalars(importScalars(t, "0 0 0 1 5\n", field.OnX(0)))
	assert.Len(t, rec.plots, 1)
}

func TestFinish(t *testing.T) {
	rec := &recorder{}
	r := &Renderer{Plotter: rec}
	r.Finish("")
	assert.True(t, rec.shown)
	assert.True(t, rec.executed)

	rec = &recorder{}
	r.Plotter = rec
	r.Finish("out.png")
	assert.False(t, rec.shown)
	assert.Equal(t, "out.png", rec.saved)
	assert.True(t, rec.executed)
}

func TestScalarsSkipNonFinite(t *testing.T) {
	body := "0 0 0 1 1\n1 0 0 1 NaN\n2 0 0 1 3\n3 0 0 1 +Inf\n4 0 0 1 -Inf\n"
	sf := importScalars(t, body, field.NoPlane())
	require.Equal(t, 5, sf.Len())

	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Voltage", Bins: 6}
	require.NotPanics(t, func() { r.Scalars(sf) })

	require.Len(t, rec.plots, 2)
	assert.Equal(t, []float64{0}, rec.plots[0].xs)
	assert.Equal(t, palette[0], rec.plots[0].style.Color)
	assert.Equal(t, []float64{2}, rec.plots[1].xs)
	assert.Equal(t, palette[5], rec.plots[1].style.Color)
}

func TestScalarsOnlyNonFinite(t *testing.T) {
	sf := importScalars(t, "0 0 0 1 NaN\n1 0 0 1 Inf\n", field.NoPlane())

	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Voltage"}
	require.NotPanics(t, func() { r.Scalars(sf) })
	assert.Len(t, rec.plots, 0)
}

func TestVectorsSkipNonFinite(t *testing.T) {
	body := "0 0 0 1 0 0\n1 0 0 NaN 0 0\n2 0 0 Inf 0 0\n3 0 0 2 0 0\n"
	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Electric", Bins: 2}
	vf := importVectors(t, body, field.NoPlane())
	require.NotPanics(t, func() { r.Vectors(vf) })

	// Magnitudes 1 and 2 land in the two bins; NaN and Inf are dropped.
	require.Len(t, rec.plots, 4)
	assert.Equal(t, []float64{0}, rec.plots[1].xs)
	assert.Equal(t, []float64{3}, rec.plots[3].xs)
	// The longest finite arrow still sets the scale.
	assert.InDelta(t, 4.0, rec.plots[2].xs[1], 1e-12)
}

func TestSlicedVectorsNonFiniteComponents(t *testing.T) {
	body := "0 0 0 1 0 0\n0 1 0 0 Inf 0\n"
	rec := &recorder{}
	r := &Renderer{Plotter: rec, Quantity: "Magnetic"}
	r.Vectors(importVectors(t, body, field.OnZ(0)))

	require.Len(t, rec.plots, 2)
	assert.Len(t, rec.plots[0].xs, 3)
	assert.InDelta(t, 1.0, rec.plots[0].xs[1], 1e-12)
	assert.Equal(t, []float64{0, 0}, rec.plots[1].xs)
}
