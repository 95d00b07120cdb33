package io

import (
	"os"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/fieldslice/field"
)

const (
	ExampleFieldFile = `[Field]

#######################
# Required Parameters #
#######################

# Quantity can be set to one of:
# [ Voltage | Electric | Magnetic | Vector ]
# Voltage files are scalar files with lines of the form
#     i j k conductivity voltage
# and all other quantities are vector files with lines of the form
#     i j k u v w
Quantity = Voltage

#######################
# Optional Parameters #
#######################

# File containing the field. If Input isn't set, the default solver output
# for the Quantity is used:
#     Voltage  -> ../out/initial-voltages
#     Electric -> ../out/e-field
#     Magnetic -> ../out/b-field
# Vector fields must always set Input.
# Input = path/to/field

# Restricts the plot to a single slice through the grid. Plane must be one of
# [ X | Y | Z ], and Slice is the grid coordinate of the slice along that
# axis. If Plane isn't set, every point is plotted.
# Plane = X
# Slice = 10

# By default, a point is only part of a slice if its coordinate is exactly
# equal to Slice. Setting Tolerance allows for coordinates within Tolerance
# of Slice.
# Tolerance = 1e-6

# Image file the plot is written to. If Output isn't set, the plot is shown
# in a window instead.
# Output = field.png

# File of "i j" device points (as used by the solver) to draw on top of Z
# slices and unsliced plots.
# DevicePoints = path/to/points

# Length multiplier applied to arrows. If ArrowScale isn't set, arrows are
# scaled so that the longest one is a single grid cell long.
# ArrowScale = 2.5

# Number of color bins used for voltages and magnitudes. Default is 6.
# Bins = 6`
)

const (
	DefaultVoltageFile  = "../out/initial-voltages"
	DefaultElectricFile = "../out/e-field"
	DefaultMagneticFile = "../out/b-field"

	defaultBins = 6
)

// FieldConfig is the [Field] section of a configuration file.
type FieldConfig struct {
	Quantity string
	Input    string

	Plane            string
	Slice, Tolerance float64

	Output       string
	DevicePoints string

	ArrowScale float64
	Bins       int
}

// FieldWrapper is the top-level type gcfg reads into.
type FieldWrapper struct {
	Field FieldConfig
}

func DefaultFieldWrapper() *FieldWrapper {
	cfg := FieldConfig{Bins: defaultBins}
	return &FieldWrapper{cfg}
}

// ReadFieldConfig reads and validates the [Field] section of a file. An
// unreadable file is reported as a *field.FileAccessError.
func ReadFieldConfig(fname string) (*FieldConfig, error) {
	text, err := os.ReadFile(fname)
	if err != nil {
		return nil, &field.FileAccessError{Path: fname, Err: err}
	}
	return ParseFieldConfig(string(text))
}

// ParseFieldConfig is ReadFieldConfig for configurations held in memory.
func ParseFieldConfig(text string) (*FieldConfig, error) {
	wrap := DefaultFieldWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.Field.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Field, nil
}

// CheckInit normalizes the config and fills in default inputs. Invalid
// values are reported as a *field.ConfigurationError.
func (con *FieldConfig) CheckInit() error {
	tmp := con.Quantity
	con.Quantity = canonicalQuantity(con.Quantity)
	if con.Quantity == "" {
		return field.Configurationf(
			"Quantity must be one of [Voltage | Electric | Magnetic | "+
				"Vector]. '%s' is not recognized.", tmp,
		)
	}

	if con.Input == "" {
		switch con.Quantity {
		case "Voltage":
			con.Input = DefaultVoltageFile
		case "Electric":
			con.Input = DefaultElectricFile
		case "Magnetic":
			con.Input = DefaultMagneticFile
		default:
			return field.Configurationf(
				"Input must be set for Quantity '%s'.", con.Quantity,
			)
		}
	}

	axis, err := field.ParseAxis(con.Plane)
	if err != nil {
		return err
	}
	con.Plane = ""
	if axis != field.NoAxis {
		con.Plane = axis.String()
	}

	if !con.ValidTolerance() {
		return field.Configurationf(
			"Tolerance must be non-negative, but is %g.", con.Tolerance,
		)
	} else if !con.ValidArrowScale() {
		return field.Configurationf(
			"ArrowScale must be non-negative, but is %g.", con.ArrowScale,
		)
	} else if !con.ValidBins() {
		return field.Configurationf(
			"Bins must be positive, but is %d.", con.Bins,
		)
	}

	return nil
}

func canonicalQuantity(q string) string {
	switch strings.ToLower(strings.TrimSpace(q)) {
	case "voltage":
		return "Voltage"
	case "electric":
		return "Electric"
	case "magnetic":
		return "Magnetic"
	case "vector":
		return "Vector"
	}
	return ""
}

func (con *FieldConfig) ValidTolerance() bool { return con.Tolerance >= 0 }

func (con *FieldConfig) ValidArrowScale() bool { return con.ArrowScale >= 0 }

func (con *FieldConfig) ValidBins() bool { return con.Bins > 0 }

// IsScalar returns true if the configured quantity is a scalar field.
func (con *FieldConfig) IsScalar() bool { return con.Quantity == "Voltage" }

// SlicePlane returns the plane described by Plane, Slice, and Tolerance.
// CheckInit must have been called first.
func (con *FieldConfig) SlicePlane() field.Plane {
	axis, _ := field.ParseAxis(con.Plane)
	return field.NewPlane(axis, con.Slice).WithTolerance(con.Tolerance)
}
