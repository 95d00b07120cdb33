package render

import (
	plt "github.com/phil-mansfield/pyplot"
)

// Style describes how a single line or point set is drawn. Format is a
// matplotlib format string ("o", "-", "s", ...).
type Style struct {
	Format string
	Color  string
}

// Plotter is the drawing backend used by Renderer.
type Plotter interface {
	Figure()
	Plot(xs, ys []float64, style Style)
	Title(title string)
	XLabel(label string)
	YLabel(label string)
	SaveFig(fname string)
	Show()
	Execute()
}

// PyPlot draws with matplotlib through the pyplot package. Calls are
// buffered into a python script which is run by Execute.
type PyPlot struct{}

func (PyPlot) Figure() { plt.Figure(plt.FigSize(8, 8)) }

func (PyPlot) Plot(xs, ys []float64, style Style) {
	args := []interface{}{xs, ys}
	if style.Format != "" {
		args = append(args, style.Format)
	}
	if style.Color != "" {
		args = append(args, plt.C(style.Color))
	}
	plt.Plot(args...)
}

func (PyPlot) Title(title string) { plt.Title(title) }

func (PyPlot) XLabel(label string) { plt.XLabel(label, plt.FontSize(16)) }

func (PyPlot) YLabel(label string) { plt.YLabel(label, plt.FontSize(16)) }

func (PyPlot) SaveFig(fname string) { plt.SaveFig(fname) }

func (PyPlot) Show() { plt.Show() }

func (PyPlot) Execute() { plt.Execute() }
