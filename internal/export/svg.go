package export

import (
	"fmt"
	"strings"
)

const (
	boxW    = 64.0
	boxH    = 26.0
	segW    = 28.0
	topY    = 50.0
	botY    = 190.0
	marginX = 30.0
)

// LadderSVG renders the ladder network as an SVG schematic: series element
// boxes along the top wire, shunt boxes dropped to the bottom wire at the
// node after their series element.
func LadderSVG(z, y []string) string {
	sections := len(z)
	if len(y) > sections {
		sections = len(y)
	}
	if sections == 0 {
		return ""
	}

	var body strings.Builder
	x := marginX

	// Input terminal.
	body.WriteString(terminal(x, topY))
	body.WriteString(terminal(x, botY))

	for k := 0; k < sections; k++ {
		if k < len(z) {
			body.WriteString(wire(x, topY, x+segW, topY))
			x += segW
			body.WriteString(elementBox(x, topY-boxH/2, z[k]))
			x += boxW
		}
		if k < len(y) {
			body.WriteString(wire(x, topY, x+segW, topY))
			x += segW
			midY := (topY + botY) / 2
			body.WriteString(wire(x, topY, x, midY-boxH/2))
			body.WriteString(elementBox(x-boxW/2, midY-boxH/2, y[k]))
			body.WriteString(wire(x, midY+boxH/2, x, botY))
		}
	}

	body.WriteString(wire(x, topY, x+segW, topY))
	x += segW
	body.WriteString(terminal(x, topY))
	body.WriteString(terminal(x, botY))

	// Bottom return wire.
	body.WriteString(wire(marginX, botY, x, botY))

	width := x + marginX
	height := botY + topY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g stroke="#222222" fill="none" stroke-width="2">
`, width, height, width, height))
	sb.WriteString(body.String())
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func wire(x1, y1, x2, y2 float64) string {
	return fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x1, y1, x2, y2)
}

func terminal(x, y float64) string {
	return fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3.5"/>
`, x, y)
}

func elementBox(x, y float64, label string) string {
	return fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.0f" height="%.0f"/>
<text x="%.1f" y="%.1f" stroke="none" fill="#222222" font-family="monospace" font-size="13" text-anchor="middle" dominant-baseline="middle">%s</text>
`, x, y, boxW, boxH, x+boxW/2, y+boxH/2, escape(label))
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
