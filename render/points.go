package render

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// DevicePoints is the outline of the simulated device: the "i j" grid
// points the solver treats as conducting.
type DevicePoints struct {
	Is, Js []float64
}

// ReadDevicePoints reads the first two columns of a device point file.
func ReadDevicePoints(fname string) (*DevicePoints, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, fmt.Errorf("reading device points: %w", err)
	}
	return &DevicePoints{Is: cols[0], Js: cols[1]}, nil
}

// Len returns the number of device points.
func (dp *DevicePoints) Len() int { return len(dp.Is) }
