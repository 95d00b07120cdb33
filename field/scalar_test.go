package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const voltages = `0 0 0 1.5 10
0 1 0 1.5 11
1 0 0 2.5 12
1 1 2 2.5 13
`

func TestImportScalarsUnsliced(t *testing.T) {
	sf, err := ImportScalars(writeField(t, voltages), NoPlane())
	require.NoError(t, err)

	require.Equal(t, 4, sf.Len())
	assert.Equal(t, []float64{10, 11, 12, 13}, sf.Values)
	assert.Equal(t, []float64{1.5, 1.5, 2.5, 2.5}, sf.Conductivity)
	assert.Equal(t, [3]float64{1, 1, 2}, sf.Point(3))
	assert.Len(t, sf.Projected(), 3)
}

func TestImportScalarsSliceKeepsThreeCoords(t *testing.T) {
	sf, err := ImportScalars(writeField(t, voltages), OnX(1))
	require.NoError(t, err)

	require.Equal(t, 2, sf.Len())
	assert.Equal(t, []float64{12, 13}, sf.Values)
	assert.Equal(t, []float64{1, 1}, sf.Coords[0])
	assert.Equal(t, []float64{0, 1}, sf.Coords[1])
	assert.Equal(t, []float64{0, 2}, sf.Coords[2])

	proj := sf.Projected()
	require.Len(t, proj, 2)
	assert.Equal(t, []float64{0, 1}, proj[0])
	assert.Equal(t, []float64{0, 2}, proj[1])
}

func TestImportScalarsYZSlices(t *testing.T) {
	fname := writeField(t, voltages)

	sf, err := ImportScalars(fname, OnY(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12}, sf.Values)

	sf, err = ImportScalars(fname, OnZ(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{13}, sf.Values)
	assert.Equal(t, [3]float64{1, 1, 2}, sf.Point(0))
}

func TestImportScalarsAppendsOnce(t *testing.T) {
	// Each record matching the slice must appear exactly once.
	sf, err := ImportScalars(writeField(t, "0 0 0 1 7\n"), OnX(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, sf.Values)
}

func TestImportScalarsExtraColumns(t *testing.T) {
	sf, err := ImportScalars(writeField(t, "0 0 0 1 7 99 100\n"), NoPlane())
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, sf.Values)
}

func TestImportScalarsMissingSlice(t *testing.T) {
	sf, err := ImportScalars(writeField(t, voltages), OnZ(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0, sf.Len())
	assert.Equal(t, []float64{}, sf.Values)
}

func TestImportScalarsParseError(t *testing.T) {
	body := "0 0 0 1 7\n0 0 1 7\n"
	sf, err := ImportScalars(writeField(t, body), NoPlane())
	assert.Nil(t, sf)

	var pErr *ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, 2, pErr.Line)
	assert.Contains(t, pErr.Reason, "at least 5 columns")
}
