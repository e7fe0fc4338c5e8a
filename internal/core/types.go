package core

// Size describes the dimensions of a cell grid in columns (W) and rows (H).
type Size struct {
	W int
	H int
}
