package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/member"
)

// WriteSchedule writes the reinforcement schedule of a design run as an
// XLSX workbook with one row per member.
func WriteSchedule(w io.Writer, res *member.DesignResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedule"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Member", "Section (mm)", "Main Bars", "Top Bars", "Links / Mesh", "Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	writeRow := func(cols []interface{}) error {
		for i, v := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	if b := res.Beam; b != nil {
		if err := writeRow([]interface{}{
			"Primary beam",
			fmt.Sprintf("%.0f x %.0f", b.Width, b.Depth),
			b.Check.MainBars, b.Check.TopBars, b.Check.Links,
			verdict(b.Check.Safe),
		}); err != nil {
			return err
		}
	}
	if c := res.Column; c != nil {
		if err := writeRow([]interface{}{
			"Column",
			fmt.Sprintf("%.0f x %.0f", c.Width, c.Depth),
			"-", "-", "-",
			verdict(c.Safe),
		}); err != nil {
			return err
		}
	}
	if ft := res.Footing; ft != nil {
		if err := writeRow([]interface{}{
			"Footing",
			fmt.Sprintf("%.1f m x %.1f m x %.0f", ft.Side, ft.Side, ft.Thickness),
			"-", "-", fmt.Sprintf("%s both ways", ft.MeshCallout),
			verdict(ft.Safe),
		}); err != nil {
			return err
		}
	}
	if g := res.GroundBeam; g != nil {
		if err := writeRow([]interface{}{
			"Ground beam",
			fmt.Sprintf("%.0f x %.0f", g.Width, g.Depth),
			g.Check.MainBars, g.Check.TopBars, g.Check.Links,
			verdict(g.Check.Safe),
		}); err != nil {
			return err
		}
	}

	return f.Write(w)
}
