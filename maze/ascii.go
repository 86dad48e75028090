package maze

import "strings"

// String renders the maze as ASCII art for terminal preview and debugging.
// Entrance and exit cells are marked S and E. One cell occupies a 4×2
// character block:
//
//	+---+---+
//	| S     |
//	+   +---+
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary.
	b.WriteString("+")
	b.WriteString(strings.Repeat("---+", m.Width))
	b.WriteString("\n")

	for row := 0; row < m.Height; row++ {
		// Cell row: interiors and east walls.
		b.WriteString("|")
		for col := 0; col < m.Width; col++ {
			p := CellPos{Row: row, Col: col}
			switch p {
			case m.Entrance:
				b.WriteString(" S ")
			case m.Exit:
				b.WriteString(" E ")
			default:
				b.WriteString("   ")
			}
			if m.grid[row][col].East {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall row: south walls.
		b.WriteString("+")
		for col := 0; col < m.Width; col++ {
			if m.grid[row][col].South {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
