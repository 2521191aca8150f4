package viz

import (
	"strings"
)

// Ladder renders a two-terminal ladder network as ASCII art: series tokens
// along the top rail, shunt tokens hanging between the rails at the node
// following their series element.
//
//	o--[ 1 ]--[ s/2 ]--+----o
//	                   |
//	                [ s/2 ]
//	                   |
//	o------------------+----o
func Ladder(z, y []string) string {
	if len(z) == 0 && len(y) == 0 {
		return ""
	}

	var top strings.Builder
	top.WriteString("o")
	nodeCols := make([]int, 0, len(y))

	sections := len(z)
	if len(y) > sections {
		sections = len(y)
	}
	for k := 0; k < sections; k++ {
		if k < len(z) {
			top.WriteString("--[ " + z[k] + " ]")
		}
		if k < len(y) {
			top.WriteString("--+")
			nodeCols = append(nodeCols, top.Len()-1)
			// Reserve rail under the shunt box so neighbors cannot collide.
			top.WriteString(strings.Repeat("-", len(y[k])+4))
		}
	}
	top.WriteString("--o")

	width := top.Len()
	lines := []string{top.String()}

	if len(y) > 0 {
		bar := blankRow(width)
		for _, c := range nodeCols {
			bar[c] = '|'
		}
		boxes := blankRow(width)
		for i, c := range nodeCols {
			placeAt(boxes, c-2, "[ "+y[i]+" ]")
		}
		lines = append(lines, string(bar), string(boxes), string(bar))
	}

	bottom := make([]rune, width)
	for i := range bottom {
		bottom[i] = '-'
	}
	bottom[0], bottom[width-1] = 'o', 'o'
	for _, c := range nodeCols {
		bottom[c] = '+'
	}
	lines = append(lines, string(bottom))

	return strings.Join(lines, "\n")
}

// Summary renders a one-line styled recap of the synthesized branches.
func Summary(z, y []string, kind string) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("ladder network"))
	sb.WriteString(dim.Render(" ("+kind+")") + "\n")
	sb.WriteString(cyan.Render("Z") + " = [" + strings.Join(z, ", ") + "]\n")
	sb.WriteString(green.Render("Y") + " = [" + strings.Join(y, ", ") + "]")
	return sb.String()
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

func placeAt(row []rune, col int, s string) {
	for i, r := range s {
		if col+i >= 0 && col+i < len(row) {
			row[col+i] = r
		}
	}
}
