package engine

import "github.com/piwi3910/atlaspack/internal/model"

// Contains reports whether a fully encloses b. Equal rectangles contain each
// other. Rectangles on different pages never contain one another.
func Contains(a, b model.Rect) bool {
	return a.Page == b.Page &&
		a.X <= b.X && a.Y <= b.Y &&
		b.X+b.Width <= a.X+a.Width &&
		b.Y+b.Height <= a.Y+a.Height
}

// Intersects reports whether the closed rectangles a and b meet. Rectangles
// that only share an edge or a corner intersect.
func Intersects(a, b model.Rect) bool {
	return a.Page == b.Page &&
		a.X <= b.X+b.Width && b.X <= a.X+a.Width &&
		a.Y <= b.Y+b.Height && b.Y <= a.Y+a.Height
}

// Overlaps reports whether the interiors of a and b share positive area.
func Overlaps(a, b model.Rect) bool {
	return a.Page == b.Page &&
		a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// commonIntervalLength returns 0 if the intervals are disjoint, or the length
// of their overlap otherwise.
func commonIntervalLength(i1start, i1end, i2start, i2end int) int {
	if i1end < i2start || i2end < i1start {
		return 0
	}
	return min(i1end, i2end) - max(i1start, i2start)
}

func abs(x int) int {
	if x >= 0 {
		return x
	}
	return -x
}
