package maze

import "strings"

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for col := 0; col < g.width; col++ {
		if g.cells[0][col].NorthWall {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for row := 0; row < g.height; row++ {
		// Cell rows
		if g.cells[row][0].WestWall {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for col := 0; col < g.width; col++ {
			if g.cells[row][col].EastWall {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for col := 0; col < g.width; col++ {
			if g.cells[row][col].SouthWall {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
