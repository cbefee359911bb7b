// Package report renders a completed design run into shareable
// documents. It is a read-only consumer of the member result records;
// the engine never depends on it.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/member"
)

// Meta carries the title-block fields of a calculation sheet.
type Meta struct {
	Project string
	Author  string
	Title   string
	Notes   string
}

// WritePDF renders a chained design result as an A4 calculation sheet.
func WritePDF(w io.Writer, meta Meta, res *member.DesignResult) error {
	if meta.Title == "" {
		meta.Title = "Preliminary Member Design"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if res.Beam != nil {
		section(pdf, "PRIMARY BEAM", beamLines(res.Beam))
	}
	if res.Column != nil {
		section(pdf, "COLUMN", columnLines(res.Column))
	}
	if res.Footing != nil {
		section(pdf, "FOOTING", footingLines(res.Footing))
	}
	if res.GroundBeam != nil {
		section(pdf, "GROUND BEAM", groundBeamLines(res.GroundBeam))
	}

	if meta.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, meta.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string, lines []string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(4)
}

func verdict(safe bool) string {
	if safe {
		return "SAFE"
	}
	return "UNSAFE"
}

func beamLines(b *member.BeamResult) []string {
	return []string{
		fmt.Sprintf("Section: %.0f x %.0f mm", b.Width, b.Depth),
		fmt.Sprintf("Ultimate UDL: %.2f kN/m   Mu: %.2f kN-m   Reaction: %.2f kN",
			b.UltimateUDL, b.Check.Moment, b.Reaction),
		fmt.Sprintf("K = %.4f   Utilization: %.0f%%   Status: %s",
			b.Check.K, b.Check.Utilization, verdict(b.Check.Safe)),
		fmt.Sprintf("Main bars: %s   Top bars: %s   Links: %s",
			b.Check.MainBars, b.Check.TopBars, b.Check.Links),
	}
}

func columnLines(c *member.ColumnResult) []string {
	return []string{
		fmt.Sprintf("Section: %.0f x %.0f mm   Mode: %s", c.Width, c.Depth, c.Mode),
		fmt.Sprintf("Axial load: %.2f kN   Capacity: %.2f kN   Status: %s",
			c.AxialLoad, c.Capacity, verdict(c.Safe)),
	}
}

func footingLines(f *member.FootingResult) []string {
	return []string{
		fmt.Sprintf("Required area: %.3f m2   Side: %.1f m   Thickness: %.0f mm",
			f.RequiredArea, f.Side, f.Thickness),
		fmt.Sprintf("Bearing pressure: %.2f kPa   Status: %s", f.Pressure, verdict(f.Safe)),
		fmt.Sprintf("Face moment: %.2f kN-m/m   As: %.0f mm2/m   Mesh: %s both ways",
			f.FaceMoment, f.AsRequired, f.MeshCallout),
	}
}

func groundBeamLines(g *member.GroundBeamResult) []string {
	return []string{
		fmt.Sprintf("Section: %.0f x %.0f mm", g.Width, g.Depth),
		fmt.Sprintf("Ultimate UDL: %.2f kN/m   Mu: %.2f kN-m", g.UltimateUDL, g.Check.Moment),
		fmt.Sprintf("K = %.4f   Utilization: %.0f%%   Status: %s",
			g.Check.K, g.Check.Utilization, verdict(g.Check.Safe)),
		fmt.Sprintf("Main bars: %s   Top bars: %s   Links: %s",
			g.Check.MainBars, g.Check.TopBars, g.Check.Links),
	}
}
