package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/atlaspack/internal/model"
)

func TestFreeList_RemoveAtSwapsLast(t *testing.T) {
	f := newFreeList(4)
	f.Append(rc(0, 0, 0, 1, 1))
	f.Append(rc(0, 1, 0, 1, 1))
	f.Append(rc(0, 2, 0, 1, 1))

	f.RemoveAt(0)

	require.Equal(t, 2, f.Len())
	assert.Equal(t, 2, f.At(0).X, "last element moves into the freed slot")
	assert.Equal(t, 1, f.At(1).X)

	f.RemoveAt(1)
	require.Equal(t, 1, f.Len())
	assert.Equal(t, 2, f.At(0).X)
}

func TestFreeList_Prune(t *testing.T) {
	f := newFreeList(8)
	f.Append(rc(0, 0, 0, 10, 10))
	f.Append(rc(0, 2, 2, 3, 3))   // inside the first
	f.Append(rc(0, 0, 0, 10, 10)) // duplicate
	f.Append(rc(0, 5, 5, 10, 10)) // overlaps, not contained
	f.Append(rc(1, 2, 2, 3, 3))   // same shape on another page
	f.Append(rc(0, 6, 6, 2, 2))   // inside the fourth and the first

	f.Prune()

	assert.ElementsMatch(t, []model.Rect{
		rc(0, 0, 0, 10, 10),
		rc(0, 5, 5, 10, 10),
		rc(1, 2, 2, 3, 3),
	}, f.Rects())
	assertNoContainment(t, f.Rects())
}

func TestFreeList_PruneIdempotent(t *testing.T) {
	f := newFreeList(16)
	for i := 0; i < 6; i++ {
		f.Append(rc(0, i, i, 20-2*i, 20-i))
		f.Append(rc(0, 0, i*3, 20, 3))
		f.Append(rc(i%2, i, 0, 4, 20))
	}
	f.Prune()
	once := append([]model.Rect(nil), f.Rects()...)

	f.Prune()
	assert.ElementsMatch(t, once, f.Rects())
	assertNoContainment(t, f.Rects())
}

func TestUsedList_Area(t *testing.T) {
	u := newUsedList(2)
	u.Append(rc(0, 0, 0, 10, 5))
	u.Append(rc(1, 0, 0, 3, 3))
	assert.Equal(t, 2, u.Len())
	assert.Equal(t, 59, u.Area())

	u.reset()
	assert.Equal(t, 0, u.Len())
	assert.Equal(t, 0, u.Area())
}

func assertNoContainment(t *testing.T, rects []model.Rect) {
	t.Helper()
	for i := range rects {
		for j := range rects {
			if i != j {
				assert.False(t, Contains(rects[i], rects[j]), "%v contains %v", rects[i], rects[j])
			}
		}
	}
}
