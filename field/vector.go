package field

import (
	"gonum.org/v1/gonum/floats"
)

const (
	vectorColumns = 6
	componentCol  = 3
)

// VectorField is a vector dataset stored as parallel columns. Coords and
// Components have one column per retained axis (see Axes); every column has
// one entry per retained record, in file order. Magnitudes holds the norm of
// the full (u, v, w) vector and is only filled for unsliced imports.
type VectorField struct {
	Plane      Plane
	Coords     [][]float64
	Components [][]float64
	Magnitudes []float64
}

// Len returns the number of retained records.
func (vf *VectorField) Len() int {
	if len(vf.Coords) == 0 {
		return 0
	}
	return len(vf.Coords[0])
}

// Axes returns the axis of each coordinate/component column.
func (vf *VectorField) Axes() []Axis { return vf.Plane.InPlane() }

// Point returns the (possibly projected) coordinates of the n-th record.
func (vf *VectorField) Point(n int) []float64 { return row(vf.Coords, n) }

// Component returns the (possibly projected) vector of the n-th record.
func (vf *VectorField) Component(n int) []float64 {
	return row(vf.Components, n)
}

// ImportVectors reads a vector field file with lines of the form
// "i j k u v w" and keeps the records accepted by p. Retained coordinates
// and components are projected onto the plane's in-plane axes. On error no
// dataset is returned.
func ImportVectors(path string, p Plane) (*VectorField, error) {
	records, err := readRecords(path, vectorColumns, vectorColumns)
	if err != nil {
		return nil, err
	}
	return sliceVectors(records, p), nil
}

func sliceVectors(records [][]float64, p Plane) *VectorField {
	axes := p.InPlane()
	vf := &VectorField{
		Plane:      p,
		Coords:     make([][]float64, len(axes)),
		Components: make([][]float64, len(axes)),
	}
	for d := range axes {
		vf.Coords[d] = []float64{}
		vf.Components[d] = []float64{}
	}
	if !p.IsSliced() {
		vf.Magnitudes = make([]float64, 0, len(records))
	}

	for _, rec := range records {
		if !p.Accepts([3]float64{rec[0], rec[1], rec[2]}) {
			continue
		}

		for d, ax := range axes {
			vf.Coords[d] = append(vf.Coords[d], rec[ax.index()])
			vf.Components[d] = append(
				vf.Components[d], rec[componentCol+ax.index()],
			)
		}

		if !p.IsSliced() {
			uvw := rec[componentCol : componentCol+3]
			vf.Magnitudes = append(vf.Magnitudes, floats.Norm(uvw, 2))
		}
	}

	return vf
}

func row(cols [][]float64, n int) []float64 {
	out := make([]float64, len(cols))
	for d := range cols {
		out[d] = cols[d][n]
	}
	return out
}
