package engine

import "github.com/piwi3910/atlaspack/internal/model"

// FreeList is an unordered set of free rectangles. Members may overlap; the
// only redundancy removed is containment, by Prune.
type FreeList struct {
	rects []model.Rect
}

func newFreeList(capacity int) FreeList {
	return FreeList{rects: make([]model.Rect, 0, capacity)}
}

// Append adds r to the set.
func (f *FreeList) Append(r model.Rect) {
	f.rects = append(f.rects, r)
}

// RemoveAt removes the i'th rectangle by moving the last one into its slot.
func (f *FreeList) RemoveAt(i int) {
	last := len(f.rects) - 1
	f.rects[i] = f.rects[last]
	f.rects = f.rects[:last]
}

// Len returns the number of free rectangles.
func (f *FreeList) Len() int { return len(f.rects) }

// At returns the i'th free rectangle.
func (f *FreeList) At(i int) model.Rect { return f.rects[i] }

// Rects returns the backing slice. It is owned by the list and is only valid
// until the next mutation.
func (f *FreeList) Rects() []model.Rect { return f.rects }

// Prune removes every rectangle contained in another one. Of two equal
// rectangles one survives. Running it twice changes nothing.
func (f *FreeList) Prune() {
	for i := 0; i < len(f.rects); {
		removed := false
		for j := i + 1; j < len(f.rects); {
			if Contains(f.rects[j], f.rects[i]) {
				f.RemoveAt(i)
				removed = true
				break
			}
			if Contains(f.rects[i], f.rects[j]) {
				f.RemoveAt(j)
				continue
			}
			j++
		}
		if !removed {
			i++
		}
	}
}

func (f *FreeList) reset() {
	f.rects = nil
}

// UsedList is the append-only record of placed rectangles.
type UsedList struct {
	rects []model.Rect
	area  int
}

func newUsedList(capacity int) UsedList {
	return UsedList{rects: make([]model.Rect, 0, capacity)}
}

// Append records a placement.
func (u *UsedList) Append(r model.Rect) {
	u.rects = append(u.rects, r)
	u.area += r.Area()
}

// Len returns the number of placed rectangles.
func (u *UsedList) Len() int { return len(u.rects) }

// Rects returns the backing slice, owned by the list.
func (u *UsedList) Rects() []model.Rect { return u.rects }

// Area returns the summed area of all placements.
func (u *UsedList) Area() int { return u.area }

func (u *UsedList) reset() {
	u.rects = nil
	u.area = 0
}
