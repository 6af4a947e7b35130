package storage

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotPNG renders every state component of a stored run against time and
// writes the chart to path (the extension selects the format, .png for
// the usual case).
func (s *Store) PlotPNG(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	states, times, err := s.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("storage: run %s has no samples", runID)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s)", meta.Model, meta.Stepper)
	p.X.Label.Text = "time"
	p.Y.Label.Text = "state"
	p.Add(plotter.NewGrid())

	dim := len(states[0])
	for i := 0; i < dim; i++ {
		pts := make(plotter.XYs, len(states))
		for j := range states {
			pts[j].X = times[j]
			pts[j].Y = states[j][i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("x%d", i), line)
	}

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}
