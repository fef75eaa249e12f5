package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut is a free region left on a page after packing that is large enough
// to be worth reusing, e.g. for a later incremental pack or a smaller atlas.
type Offcut struct {
	ID        string `json:"id"`
	PageIndex int    `json:"page_index"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Area returns the area of the offcut.
func (o Offcut) Area() int {
	return o.Width * o.Height
}

// ToItem converts an offcut into an item so it can be fed to another pack.
func (o Offcut) ToItem(label string) Item {
	return NewItem(label, o.Width, o.Height, 1)
}

// DetectOffcuts returns the page's free rectangles whose sides are both at
// least minSide, largest first. Free rectangles may overlap each other, so
// the offcut areas are not additive.
func DetectOffcuts(pr PageResult, minSide int) []Offcut {
	var offcuts []Offcut
	for _, f := range pr.Free {
		if f.Width < minSide || f.Height < minSide {
			continue
		}
		offcuts = append(offcuts, Offcut{
			ID:        uuid.New().String()[:8],
			PageIndex: pr.Index,
			X:         f.X,
			Y:         f.Y,
			Width:     f.Width,
			Height:    f.Height,
		})
	}

	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})
	return offcuts
}

// DetectAllOffcuts finds offcuts across all pages in a result.
func DetectAllOffcuts(result PackResult, minSide int) []Offcut {
	var all []Offcut
	for _, page := range result.Pages {
		all = append(all, DetectOffcuts(page, minSide)...)
	}
	return all
}
