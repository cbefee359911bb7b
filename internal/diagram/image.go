package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSectionSketch exports a designed beam cross-section to an
// image file (png, svg or pdf by extension).
func ExportSectionSketch(data SectionSketchData, filename string) error {
	p := plot.New()
	p.Title.Text = "Beam Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Depth (mm)"

	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Width, Y: 0},
		{X: data.Width, Y: data.Depth},
		{X: 0, Y: data.Depth},
		{X: 0, Y: 0},
	}
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Link outline inset by a nominal cover
	inset := 30.0
	if data.Width > 2*inset+20 && data.Depth > 2*inset+20 {
		linkOutline := plotter.XYs{
			{X: inset, Y: inset},
			{X: data.Width - inset, Y: inset},
			{X: data.Width - inset, Y: data.Depth - inset},
			{X: inset, Y: data.Depth - inset},
			{X: inset, Y: inset},
		}
		linkLine, err := plotter.NewLine(linkOutline)
		if err != nil {
			return err
		}
		linkLine.LineStyle.Width = vg.Points(1)
		linkLine.LineStyle.Color = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		linkLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(linkLine)
	}

	// Bottom and top bars from the callouts
	if err := addBarRow(p, barCount(data.MainBars), data.Width, 40, vg.Points(6)); err != nil {
		return err
	}
	if err := addBarRow(p, barCount(data.TopBars), data.Width, data.Depth-40, vg.Points(4)); err != nil {
		return err
	}

	labels := []struct {
		x, y float64
		text string
	}{
		{data.Width / 2, 10, data.MainBars},
		{data.Width / 2, data.Depth - 25, data.TopBars},
		{data.Width / 2, data.Depth + 20, data.Links},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return savePlot(p, filename, 6*vg.Inch, 8*vg.Inch)
}

// ExportFootingPlan exports a square footing plan with its supported
// column to an image file.
func ExportFootingPlan(data FootingSketchData, filename string) error {
	p := plot.New()
	p.Title.Text = "Footing Plan"
	p.X.Label.Text = "Plan (mm)"
	p.Y.Label.Text = "Plan (mm)"

	side := data.Side * 1000
	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
		{X: 0, Y: 0},
	}
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Column footprint centred on the pad
	cx0 := (side - data.ColumnWidth) / 2
	cy0 := (side - data.ColumnDepth) / 2
	column := plotter.XYs{
		{X: cx0, Y: cy0},
		{X: cx0 + data.ColumnWidth, Y: cy0},
		{X: cx0 + data.ColumnWidth, Y: cy0 + data.ColumnDepth},
		{X: cx0, Y: cy0 + data.ColumnDepth},
	}
	columnPoly, err := plotter.NewPolygon(column)
	if err != nil {
		return err
	}
	columnPoly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	columnPoly.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(columnPoly)

	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: side / 2, Y: side * 0.1},
			{X: side / 2, Y: side * 0.05},
		},
		Labels: []string{
			fmt.Sprintf("%s both ways", data.Mesh),
			fmt.Sprintf("t = %.0f mm", data.Thickness),
		},
	})
	if err != nil {
		return err
	}
	p.Add(l)

	return savePlot(p, filename, 6*vg.Inch, 6*vg.Inch)
}

// addBarRow draws n evenly spaced bars at depth y.
func addBarRow(p *plot.Plot, n int, width, y float64, radius vg.Length) error {
	if n <= 0 {
		return nil
	}
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i] = plotter.XY{X: width * float64(i+1) / float64(n+1), Y: y}
	}
	bars, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	bars.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	bars.GlyphStyle.Radius = radius
	bars.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(bars)
	return nil
}

// savePlot writes the plot to filename, defaulting to png when the
// extension is not recognised.
func savePlot(p *plot.Plot, filename string, w, h vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(w, h, filename)
	default:
		return p.Save(w, h, filename+".png")
	}
}
