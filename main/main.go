package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phil-mansfield/fieldslice/field"
	"github.com/phil-mansfield/fieldslice/field/io"
	"github.com/phil-mansfield/fieldslice/render"
)

// Flags holds the parsed command line.
type Flags struct {
	Voltage, Vector, FilePath, Config string
	XPlane, YPlane, ZPlane            string
	Tolerance                         float64
	Output, DevicePoints              string
}

func main() {
	fl := Flags{}
	var exampleConfig bool
	var logLevel string

	flag.StringVar(&fl.Voltage, "Voltage", "",
		"Scalar voltage file with lines of the form 'i j k conductivity "+
			"voltage'.")
	flag.StringVar(&fl.FilePath, "filePath", "", "Alias for -Voltage.")
	flag.StringVar(&fl.Vector, "Vector", "",
		"Vector field file with lines of the form 'i j k u v w'.")
	flag.StringVar(&fl.Config, "Config", "",
		"Configuration file with a [Field] section.")
	flag.StringVar(&fl.XPlane, "xPlane", "", "Slice in the x plane to display.")
	flag.StringVar(&fl.YPlane, "yPlane", "", "Slice in the y plane to display.")
	flag.StringVar(&fl.ZPlane, "zPlane", "", "Slice in the z plane to display.")
	flag.Float64Var(&fl.Tolerance, "Tolerance", 0,
		"Slice matching tolerance. Default is exact matching.")
	flag.StringVar(&fl.Output, "Output", "",
		"Image file to write the plot to. Default is to show a window.")
	flag.StringVar(&fl.DevicePoints, "DevicePoints", "",
		"File of 'i j' device points to draw under the field.")
	flag.BoolVar(&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.")
	flag.StringVar(&logLevel, "LogLevel", "info", "Logging level.")

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleFieldFile)
		return
	}

	logger, err := newLogger(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	code := execute(logger, &fl)
	logger.Sync()
	os.Exit(code)
}

// execute resolves the flags and plots the field, returning the process
// exit code. Failures are logged before returning.
func execute(logger *zap.Logger, fl *Flags) int {
	con, err := fl.FieldConfig()
	if err != nil {
		logger.Error("Invalid arguments.", zap.Error(err))
		return 1
	}

	if err := run(logger, con); err != nil {
		logger.Error("Plotting failed.", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// FieldConfig resolves the flags into a validated FieldConfig. Flags given
// alongside -Config override the values in the file.
func (fl *Flags) FieldConfig() (*io.FieldConfig, error) {
	modeName, err := getModeName(map[string]*string{
		"Voltage":  &fl.Voltage,
		"filePath": &fl.FilePath,
		"Vector":   &fl.Vector,
		"Config":   &fl.Config,
	})
	if err != nil {
		return nil, err
	}

	// The plane is checked before any file is touched.
	axis, slice, err := fl.plane()
	if err != nil {
		return nil, err
	}

	var con *io.FieldConfig
	switch modeName {
	case "", "Voltage", "filePath":
		con = &io.DefaultFieldWrapper().Field
		con.Quantity = "Voltage"
		con.Input = fl.Voltage + fl.FilePath
	case "Vector":
		con = &io.DefaultFieldWrapper().Field
		con.Quantity = "Vector"
		con.Input = fl.Vector
	case "Config":
		con, err = io.ReadFieldConfig(fl.Config)
		if err != nil {
			return nil, err
		}
	default:
		panic("Impossible")
	}

	if axis != field.NoAxis {
		con.Plane, con.Slice = axis.String(), slice
	}
	if fl.Tolerance != 0 {
		con.Tolerance = fl.Tolerance
	}
	if fl.Output != "" {
		con.Output = fl.Output
	}
	if fl.DevicePoints != "" {
		con.DevicePoints = fl.DevicePoints
	}

	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

// plane returns the axis and slice value set by the plane flags.
func (fl *Flags) plane() (field.Axis, float64, error) {
	vals := [3]*float64{}
	for i, s := range []string{fl.XPlane, fl.YPlane, fl.ZPlane} {
		if s == "" {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return field.NoAxis, 0, field.Configurationf(
				"'%s' is not a valid plane coordinate", s,
			)
		}
		vals[i] = &x
	}

	p, err := field.SelectPlane(vals[0], vals[1], vals[2])
	if err != nil {
		return field.NoAxis, 0, err
	}
	return p.Axis(), p.Value(), nil
}

// getModeName returns the name of the single mode flag that was set, ""
// if none were, and fails with a descriptive error if several were.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) > 1 {
		return "", field.Configurationf(
			"the following flags were set: %s, but only one field may be "+
				"plotted at a time", strings.Join(setNames, ", "),
		)
	} else if len(setNames) == 0 {
		return "", nil
	}

	return setNames[0], nil
}

func run(logger *zap.Logger, con *io.FieldConfig) error {
	plane := con.SlicePlane()
	logger = logger.With(
		zap.String("quantity", con.Quantity),
		zap.String("input", con.Input),
		zap.Stringer("plane", plane),
	)

	r := &render.Renderer{
		Plotter:    render.PyPlot{},
		Quantity:   con.Quantity,
		ArrowScale: con.ArrowScale,
		Bins:       con.Bins,
	}
	if con.DevicePoints != "" {
		dev, err := render.ReadDevicePoints(con.DevicePoints)
		if err != nil {
			return err
		}
		logger.Debug("Read device points.", zap.Int("points", dev.Len()))
		r.Device = dev
	}

	logger.Info("Importing field.")
	if con.IsScalar() {
		sf, err := field.ImportScalars(con.Input, plane)
		if err != nil {
			return err
		}
		logger.Info("Imported field.", zap.Int("records", sf.Len()))
		r.Scalars(sf)
	} else {
		vf, err := field.ImportVectors(con.Input, plane)
		if err != nil {
			return err
		}
		logger.Info("Imported field.", zap.Int("records", vf.Len()))
		r.Vectors(vf)
	}

	if con.Output == "" {
		logger.Info("Showing plot.")
	} else {
		logger.Info("Saving plot.", zap.String("output", con.Output))
	}
	r.Finish(con.Output)
	return nil
}
