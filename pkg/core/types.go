package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

// Contains reports whether (x, y) lies inside a grid of this size.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}
