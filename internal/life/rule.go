package life

// Rule applies the standard B3/S23 transition: a dead cell with exactly three
// alive neighbours is born, an alive cell with two or three survives, and
// every other cell is dead in the next generation.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
