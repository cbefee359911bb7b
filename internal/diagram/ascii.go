package diagram

import (
	"fmt"
	"strconv"
	"strings"
)

// SectionSketchData holds the geometry and callouts for a designed
// rectangular beam section sketch.
type SectionSketchData struct {
	// Geometry (mm)
	Width float64
	Depth float64

	// Reinforcement callouts, e.g. "3T16 Bottom", "2T12 Top"
	MainBars string
	TopBars  string
	Links    string

	AsRequired float64 // mm²
}

// FootingSketchData holds the plan geometry and callouts for a square
// footing sketch.
type FootingSketchData struct {
	Side        float64 // m
	Thickness   float64 // mm
	ColumnWidth float64 // mm
	ColumnDepth float64 // mm
	Mesh        string  // e.g. "T12@250"
	Pressure    float64 // kPa
}

// barCount extracts the leading bar count from a callout such as
// "3T16 Bottom". Unparseable callouts ("None") report zero.
func barCount(callout string) int {
	i := strings.IndexAny(callout, "TR")
	if i <= 0 {
		return 0
	}
	n, err := strconv.Atoi(callout[:i])
	if err != nil {
		return 0
	}
	return n
}

// DrawSectionSketch creates an ASCII cross-section of a designed beam
// with its reinforcement callouts.
func DrawSectionSketch(data SectionSketchData) string {
	var sb strings.Builder

	widthChars := 24
	heightChars := 12

	topLine := 2
	bottomLine := heightChars - 2

	sb.WriteString("\n")
	sb.WriteString("  BEAM SECTION\n")
	sb.WriteString("  ────────────\n")

	for i := 0; i <= heightChars; i++ {
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
		case i == heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘  b = %.0f mm\n", strings.Repeat("─", widthChars), data.Width))
		case i == topLine:
			sb.WriteString(fmt.Sprintf("  │%s│  %s\n", barRow(barCount(data.TopBars), widthChars), data.TopBars))
		case i == bottomLine:
			label := data.MainBars
			if data.AsRequired > 0 {
				label = fmt.Sprintf("%s (As = %.0f mm²)", data.MainBars, data.AsRequired)
			}
			sb.WriteString(fmt.Sprintf("  │%s│  %s\n", barRow(barCount(data.MainBars), widthChars), label))
		case i == heightChars/2:
			sb.WriteString(fmt.Sprintf("  │%s│  h = %.0f mm\n", strings.Repeat(" ", widthChars), data.Depth))
		default:
			sb.WriteString(fmt.Sprintf("  │%s│\n", strings.Repeat(" ", widthChars)))
		}
	}

	sb.WriteString(fmt.Sprintf("\n  Links: %s\n", data.Links))
	return sb.String()
}

// barRow spreads n bar markers evenly across a row of the sketch.
func barRow(n, width int) string {
	row := []rune(strings.Repeat(" ", width))
	for i := 0; i < n; i++ {
		pos := (i + 1) * width / (n + 1)
		if pos >= 0 && pos < width {
			row[pos] = '●'
		}
	}
	return string(row)
}

// DrawFootingSketch creates an ASCII plan view of a square footing with
// its column and mesh callout.
func DrawFootingSketch(data FootingSketchData) string {
	var sb strings.Builder

	size := 8 // rows inside the border
	cols := size * 3

	sb.WriteString("\n")
	sb.WriteString("  FOOTING PLAN\n")
	sb.WriteString("  ────────────\n")

	colStart := cols/2 - 2
	mid := size / 2

	for i := 0; i <= size; i++ {
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
		case i == size:
			sb.WriteString(fmt.Sprintf("  └%s┘  %.1f x %.1f m\n", strings.Repeat("─", cols), data.Side, data.Side))
		case i == mid || i == mid+1:
			line := []rune(strings.Repeat(" ", cols))
			for j := colStart; j < colStart+4; j++ {
				line[j] = '█'
			}
			label := ""
			if i == mid {
				label = fmt.Sprintf("  column %.0f x %.0f mm", data.ColumnWidth, data.ColumnDepth)
			}
			sb.WriteString(fmt.Sprintf("  │%s│%s\n", string(line), label))
		default:
			sb.WriteString(fmt.Sprintf("  │%s│\n", strings.Repeat(" ", cols)))
		}
	}

	sb.WriteString(fmt.Sprintf("\n  Thickness: %.0f mm\n", data.Thickness))
	sb.WriteString(fmt.Sprintf("  Mesh: %s both ways\n", data.Mesh))
	sb.WriteString(fmt.Sprintf("  Bearing pressure: %.1f kPa\n", data.Pressure))
	return sb.String()
}

// DrawSummaryBox creates a boxed summary for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
