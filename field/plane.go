// Package field imports grid field samples written by the solver and
// restricts them to a single axis-aligned slice.
package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Axis is one of the three grid axes, or NoAxis.
type Axis int

const (
	NoAxis Axis = iota
	X
	Y
	Z
)

// String returns "X", "Y", "Z", or "None".
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return "None"
}

// Label returns the grid index name used for the axis in plot labels.
func (a Axis) Label() string {
	switch a {
	case X:
		return "I"
	case Y:
		return "J"
	case Z:
		return "K"
	}
	return ""
}

// index returns the column of the axis in an (i, j, k) triple.
func (a Axis) index() int { return int(a) - 1 }

// ParseAxis converts a case-insensitive "X", "Y", "Z", or "" into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return NoAxis, nil
	case "X":
		return X, nil
	case "Y":
		return Y, nil
	case "Z":
		return Z, nil
	}
	return NoAxis, Configurationf(
		"plane axis must be one of [X | Y | Z]. '%s' is not recognized", s,
	)
}

// Plane selects the records belonging to a single axis-aligned slice. The
// zero value is the unsliced plane, which accepts every record. Since only
// one axis can be stored, a Plane can never have two active axes.
type Plane struct {
	axis      Axis
	value     float64
	tolerance float64
}

// NoPlane returns the plane that accepts every record.
func NoPlane() Plane { return Plane{} }

// OnX returns the slice i == v.
func OnX(v float64) Plane { return Plane{axis: X, value: v} }

// OnY returns the slice j == v.
func OnY(v float64) Plane { return Plane{axis: Y, value: v} }

// OnZ returns the slice k == v.
func OnZ(v float64) Plane { return Plane{axis: Z, value: v} }

// NewPlane returns the slice on the given axis. NoAxis gives NoPlane().
func NewPlane(axis Axis, v float64) Plane {
	if axis == NoAxis {
		return NoPlane()
	}
	return Plane{axis: axis, value: v}
}

// SelectPlane builds a Plane from optional per-axis slice values, as
// supplied by the x/y/z plane command-line flags. Setting more than one
// of them is a ConfigurationError.
func SelectPlane(x, y, z *float64) (Plane, error) {
	set := []string{}
	p := NoPlane()
	if x != nil {
		set = append(set, "X")
		p = OnX(*x)
	}
	if y != nil {
		set = append(set, "Y")
		p = OnY(*y)
	}
	if z != nil {
		set = append(set, "Z")
		p = OnZ(*z)
	}

	if len(set) > 1 {
		return NoPlane(), Configurationf(
			"planes %s were all set, but only one plane may be sliced at a time",
			strings.Join(set, ", "),
		)
	}
	return p, nil
}

// WithTolerance returns a copy of p which accepts coordinates within eps of
// the slice value. The default tolerance of zero requires exact equality.
func (p Plane) WithTolerance(eps float64) Plane {
	p.tolerance = math.Abs(eps)
	return p
}

// Axis returns the active axis, or NoAxis.
func (p Plane) Axis() Axis { return p.axis }

// Value returns the slice coordinate. It is meaningless for NoPlane().
func (p Plane) Value() float64 { return p.value }

// Tolerance returns the matching tolerance.
func (p Plane) Tolerance() float64 { return p.tolerance }

// IsSliced returns true if an axis is active.
func (p Plane) IsSliced() bool { return p.axis != NoAxis }

// Accepts returns true if the grid point (i, j, k) lies in the slice.
func (p Plane) Accepts(coord [3]float64) bool {
	if p.axis == NoAxis {
		return true
	}

	c := coord[p.axis.index()]
	if c == p.value {
		return true
	}
	return p.tolerance > 0 && math.Abs(c-p.value) <= p.tolerance
}

// InPlane returns the two axes orthogonal to the active one, in (I, J, K)
// order. For NoPlane() all three axes are returned.
func (p Plane) InPlane() []Axis {
	switch p.axis {
	case X:
		return []Axis{Y, Z}
	case Y:
		return []Axis{X, Z}
	case Z:
		return []Axis{X, Y}
	}
	return []Axis{X, Y, Z}
}

func (p Plane) String() string {
	if p.axis == NoAxis {
		return "no plane"
	}
	s := fmt.Sprintf("%s slice at %s=%s", p.axis.Label(),
		strings.ToLower(p.axis.Label()), formatCoord(p.value))
	if p.tolerance > 0 {
		s += fmt.Sprintf(" (+/- %s)", formatCoord(p.tolerance))
	}
	return s
}

// formatCoord prints x the way the solver's plotting scripts did: always
// with a decimal point or an exponent, and with an exponent only outside
// [1e-4, 1e16).
func formatCoord(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	abs := math.Abs(x)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
