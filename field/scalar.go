package field

const (
	scalarColumns   = 5
	conductivityCol = 3
	valueCol        = 4
)

// ScalarField is a scalar dataset stored as parallel columns. Coords always
// holds all three grid axes, even for sliced imports. Conductivity is the
// fourth column written by the solver and is carried along but never used
// for selection.
type ScalarField struct {
	Plane        Plane
	Coords       [3][]float64
	Conductivity []float64
	Values       []float64
}

// Len returns the number of retained records.
func (sf *ScalarField) Len() int { return len(sf.Values) }

// Point returns the (i, j, k) coordinates of the n-th record.
func (sf *ScalarField) Point(n int) [3]float64 {
	return [3]float64{sf.Coords[0][n], sf.Coords[1][n], sf.Coords[2][n]}
}

// Projected returns the coordinate columns of the in-plane axes: two for a
// sliced dataset, three otherwise. The dataset itself is not modified.
func (sf *ScalarField) Projected() [][]float64 {
	axes := sf.Plane.InPlane()
	cols := make([][]float64, len(axes))
	for d, ax := range axes {
		cols[d] = sf.Coords[ax.index()]
	}
	return cols
}

// ImportScalars reads a scalar (voltage) file with lines of the form
// "i j k conductivity value ..." and keeps the records accepted by p. Extra
// trailing columns are ignored. Each record is retained at most once. On
// error no dataset is returned.
func ImportScalars(path string, p Plane) (*ScalarField, error) {
	records, err := readRecords(path, scalarColumns, -1)
	if err != nil {
		return nil, err
	}
	return sliceScalars(records, p), nil
}

func sliceScalars(records [][]float64, p Plane) *ScalarField {
	sf := &ScalarField{
		Plane:        p,
		Conductivity: []float64{},
		Values:       []float64{},
	}
	for d := range sf.Coords {
		sf.Coords[d] = []float64{}
	}

	for _, rec := range records {
		coord := [3]float64{rec[0], rec[1], rec[2]}
		if !p.Accepts(coord) {
			continue
		}
		for d := range coord {
			sf.Coords[d] = append(sf.Coords[d], coord[d])
		}
		sf.Conductivity = append(sf.Conductivity, rec[conductivityCol])
		sf.Values = append(sf.Values, rec[valueCol])
	}

	return sf
}
