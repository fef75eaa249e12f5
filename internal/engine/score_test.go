package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/atlaspack/internal/model"
)

// contextWith returns a 100x100 context whose free set is replaced by free.
func contextWith(t *testing.T, free ...model.Rect) *Context {
	t.Helper()
	c, err := NewContext(100, 100, 8)
	require.NoError(t, err)
	c.free.rects = append(c.free.rects[:0], free...)
	return c
}

func TestScore_NoFit(t *testing.T) {
	for _, h := range model.Heuristics {
		t.Run(h.String(), func(t *testing.T) {
			c := contextWith(t, rc(0, 0, 0, 30, 30))
			res := scorers[h](c, 40, 10)
			assert.False(t, res.Fits())
			assert.Equal(t, math.MaxInt, res.Primary)
			assert.Equal(t, math.MaxInt, res.Secondary)
			assert.Equal(t, model.Rect{}, res.Candidate)
		})
	}
}

func TestScore_EveryHeuristicHasAScorer(t *testing.T) {
	for _, h := range model.Heuristics {
		assert.Contains(t, scorers, h, h.String())
	}
	assert.Len(t, scorers, len(model.Heuristics))
}

func TestScoreBestAreaFit(t *testing.T) {
	c := contextWith(t, rc(0, 0, 0, 50, 50), rc(0, 50, 0, 30, 30))
	res := scoreBestAreaFit(c, 20, 20)

	require.True(t, res.Fits())
	assert.Equal(t, rc(0, 50, 0, 20, 20), res.Candidate)
	assert.Equal(t, 500, res.Primary)
	assert.Equal(t, 10, res.Secondary)
}

func TestScoreBestAreaFit_TieBrokenByShortSide(t *testing.T) {
	// Both leave 200 units of area; the second matches the width exactly.
	c := contextWith(t, rc(0, 0, 0, 12, 50), rc(0, 40, 40, 10, 60))
	res := scoreBestAreaFit(c, 10, 40)
	require.True(t, res.Fits())
	assert.Equal(t, rc(0, 40, 40, 10, 40), res.Candidate)
	assert.Equal(t, 200, res.Primary)
	assert.Equal(t, 0, res.Secondary)
}

func TestScoreBestShortSideFit(t *testing.T) {
	c := contextWith(t, rc(0, 0, 0, 25, 100), rc(0, 30, 0, 40, 40))
	res := scoreBestShortSideFit(c, 20, 20)

	require.True(t, res.Fits())
	assert.Equal(t, rc(0, 0, 0, 20, 20), res.Candidate)
	assert.Equal(t, 5, res.Primary)
	assert.Equal(t, 80, res.Secondary)
}

func TestScoreBestLongSideFit(t *testing.T) {
	c := contextWith(t, rc(0, 0, 0, 25, 100), rc(0, 30, 0, 40, 40))
	res := scoreBestLongSideFit(c, 20, 20)

	require.True(t, res.Fits())
	assert.Equal(t, rc(0, 30, 0, 20, 20), res.Candidate)
	assert.Equal(t, 20, res.Primary)
	assert.Equal(t, 20, res.Secondary)
}

func TestScoreBottomLeft(t *testing.T) {
	c := contextWith(t, rc(0, 0, 50, 100, 50), rc(0, 60, 0, 40, 40))
	res := scoreBottomLeft(c, 20, 20)

	require.True(t, res.Fits())
	assert.Equal(t, rc(0, 60, 0, 20, 20), res.Candidate)
	assert.Equal(t, 20, res.Primary)
	assert.Equal(t, 60, res.Secondary)
}

func TestScoreContactPoint(t *testing.T) {
	t.Run("empty page corner", func(t *testing.T) {
		c := contextWith(t, rc(0, 0, 0, 100, 100))
		res := scoreContactPoint(c, 20, 30)
		require.True(t, res.Fits())
		assert.Equal(t, rc(0, 0, 0, 20, 30), res.Candidate)
		assert.Equal(t, -50, res.Primary)
	})

	t.Run("next to used rect", func(t *testing.T) {
		c := contextWith(t, rc(0, 50, 0, 50, 100))
		c.used.Append(model.Rect{ID: 7, X: 0, Y: 0, Width: 50, Height: 100, Placed: true})
		res := scoreContactPoint(c, 20, 20)
		require.True(t, res.Fits())
		assert.Equal(t, rc(0, 50, 0, 20, 20), res.Candidate)
		// 20 along the top border, 20 along the used rect
		assert.Equal(t, -40, res.Primary)
	})

	t.Run("used rect on another page", func(t *testing.T) {
		c := contextWith(t, rc(0, 50, 0, 50, 100))
		c.used.Append(model.Rect{Page: 1, X: 0, Y: 0, Width: 50, Height: 100, Placed: true})
		res := scoreContactPoint(c, 20, 20)
		require.True(t, res.Fits())
		assert.Equal(t, -20, res.Primary)
	})
}

func TestScore_CandidateKeepsFreePage(t *testing.T) {
	for _, h := range model.Heuristics {
		c := contextWith(t, rc(3, 10, 20, 40, 40))
		res := scorers[h](c, 10, 10)
		require.True(t, res.Fits(), h.String())
		assert.Equal(t, rc(3, 10, 20, 10, 10), res.Candidate, h.String())
	}
}
