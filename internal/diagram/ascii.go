package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/goscb/internal/section"
)

// DrawCrossSection renders a beam cross-section to a fixed character
// grid: skins as solid blocks, foam core as light shade, open bays
// blank. The open double-web variant leaves the bay between the webs
// empty; the filled variant and the full box show it as foam.
func DrawCrossSection(top section.Topology, g section.Geometry) string {
	const (
		widthChars  = 40
		heightChars = 16
	)

	flangeRows := scaleDim(g.FlangeThickness, g.Height, heightChars)
	var wallCols int
	if top == section.FullBox {
		wallCols = scaleDim(g.SideThickness, g.Width, widthChars)
	} else {
		wallCols = scaleDim(g.WebThickness, g.Width, widthChars)
	}

	coreFilled := top != section.OpenDoubleWeb

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  CROSS SECTION: %s\n", top))
	sb.WriteString("  " + strings.Repeat("─", widthChars+2) + "\n")

	for row := 0; row < heightChars; row++ {
		inFlange := row < flangeRows || row >= heightChars-flangeRows
		sb.WriteString("  │")
		for col := 0; col < widthChars; col++ {
			inWall := col < wallCols || col >= widthChars-wallCols
			switch {
			case inFlange:
				sb.WriteString("█")
			case inWall:
				sb.WriteString("█")
			case coreFilled:
				sb.WriteString("░")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("│")
		switch row {
		case 0:
			sb.WriteString(fmt.Sprintf("  ← flange t=%.2f mm", g.FlangeThickness))
		case heightChars / 2:
			if coreFilled {
				sb.WriteString(fmt.Sprintf("  ← foam core t=%.1f mm", g.CoreWebThickness))
			} else {
				sb.WriteString("  ← open bay")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  " + strings.Repeat("─", widthChars+2) + "\n")

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  h = %.1f mm, b = %.1f mm\n", g.Height, g.Width))
	if top == section.FullBox {
		sb.WriteString(fmt.Sprintf("  side walls t = %.2f mm\n", g.SideThickness))
	} else {
		sb.WriteString(fmt.Sprintf("  webs t = %.2f mm\n", g.WebThickness))
	}
	sb.WriteString("  █ = skin laminate")
	if coreFilled {
		sb.WriteString("   ░ = foam core")
	}
	sb.WriteString("\n")

	return sb.String()
}

// DrawPlyStack renders a layup top to bottom, one row per ply.
func DrawPlyStack(title string, angles []float64, plyThickness float64) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s (%d plies, %.2f mm)\n", title, len(angles), float64(len(angles))*plyThickness))
	sb.WriteString("  ┌──────────────┐\n")
	for _, a := range angles {
		sb.WriteString(fmt.Sprintf("  │ %+6.0f°      │\n", a))
	}
	sb.WriteString("  └──────────────┘\n")
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

// scaleDim maps a physical dimension onto the character grid, never
// collapsing a nonzero dimension below one cell.
func scaleDim(dim, total float64, cells int) int {
	if total <= 0 || dim <= 0 {
		return 0
	}
	n := int(dim / total * float64(cells))
	if n < 1 {
		n = 1
	}
	return n
}
