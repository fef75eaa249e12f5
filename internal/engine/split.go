package engine

import "github.com/piwi3910/atlaspack/internal/model"

// splitFree carves placed out of free. When the two overlap, the up to four
// maximal strips of free around placed are appended to out and ok is true;
// the caller must then drop free from the set. Otherwise out is returned
// unchanged and free stays as it is.
//
// The strips overlap each other at the corners.
func splitFree(free, placed model.Rect, out []model.Rect) ([]model.Rect, bool) {
	if !Overlaps(free, placed) {
		return out, false
	}

	if placed.X < free.Right() && placed.Right() > free.X {
		// Strip above the placed rect.
		if placed.Y > free.Y && placed.Y < free.Bottom() {
			r := free
			r.Height = placed.Y - free.Y
			out = append(out, r)
		}

		// Strip below.
		if placed.Bottom() < free.Bottom() {
			r := free
			r.Y = placed.Bottom()
			r.Height = free.Bottom() - placed.Bottom()
			out = append(out, r)
		}
	}

	if placed.Y < free.Bottom() && placed.Bottom() > free.Y {
		// Strip to the left.
		if placed.X > free.X && placed.X < free.Right() {
			r := free
			r.Width = placed.X - free.X
			out = append(out, r)
		}

		// Strip to the right.
		if placed.Right() < free.Right() {
			r := free
			r.X = placed.Right()
			r.Width = free.Right() - placed.Right()
			out = append(out, r)
		}
	}

	return out, true
}
