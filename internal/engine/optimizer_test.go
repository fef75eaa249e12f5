package engine

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/atlaspack/internal/model"
)

func testSettings(w, h int) model.PackSettings {
	s := model.DefaultSettings()
	s.PageWidth = w
	s.PageHeight = h
	return s
}

func TestOptimize_SinglePageSingleItem(t *testing.T) {
	opt := New(testSettings(100, 100))
	result, err := opt.Optimize([]model.Item{model.NewItem("A", 50, 30, 1)})

	require.NoError(t, err)
	require.Len(t, result.Pages, 1)
	require.Len(t, result.Pages[0].Placements, 1)
	assert.Equal(t, "A", result.Pages[0].Placements[0].Label)
	assert.Equal(t, 100, result.PageWidth)
	assert.Equal(t, model.BestAreaFit, result.Heuristic)
	assert.NotEmpty(t, result.Pages[0].Free)
}

func TestOptimize_QuantityExpandsAndLabelsFollow(t *testing.T) {
	opt := New(testSettings(100, 100))
	items := []model.Item{
		model.NewItem("big", 60, 60, 2),
		model.NewItem("small", 10, 10, 3),
	}

	result, err := opt.Optimize(items)

	require.NoError(t, err)
	assert.Equal(t, 5, result.Placed())
	assert.Len(t, result.Pages, 2)

	lookup := result.Lookup()
	require.Len(t, lookup, 5)
	for id := 0; id < 2; id++ {
		assert.Equal(t, "big", lookup[id].Label)
	}
	for id := 2; id < 5; id++ {
		assert.Equal(t, "small", lookup[id].Label)
	}
	for _, p := range result.Pages {
		for _, pl := range p.Placements {
			assert.Equal(t, p.Index, pl.Rect.Page)
		}
		for _, f := range p.Free {
			assert.Equal(t, p.Index, f.Page)
		}
	}
}

func TestOptimize_EfficiencyOfExactFill(t *testing.T) {
	opt := New(testSettings(100, 50))
	result, err := opt.Optimize([]model.Item{model.NewItem("tile", 50, 50, 2)})

	require.NoError(t, err)
	require.Len(t, result.Pages, 1)
	assert.InDelta(t, 100.0, result.TotalEfficiency(), 0.001)
	assert.Empty(t, result.Pages[0].Free)
}

func TestOptimize_Errors(t *testing.T) {
	_, err := New(testSettings(0, 10)).Optimize(nil)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = New(testSettings(10, 10)).Optimize([]model.Item{model.NewItem("huge", 11, 1, 1)})
	assert.ErrorIs(t, err, ErrOversizedRectangle)

	s := testSettings(10, 10)
	s.MaxPages = 1
	_, err = New(s).Optimize([]model.Item{model.NewItem("full", 10, 10, 2)})
	assert.ErrorIs(t, err, ErrPageAllocationExhausted)
}

func TestOptimize_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	opt := New(testSettings(100, 100))
	opt.Logger = log.New(&buf)

	_, err := opt.Optimize([]model.Item{model.NewItem("A", 10, 10, 4)})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "packed")
	assert.Contains(t, buf.String(), "best-area")
}

func TestOptimize_EmptyItems(t *testing.T) {
	result, err := New(testSettings(32, 32)).Optimize(nil)

	require.NoError(t, err)
	require.Len(t, result.Pages, 1)
	assert.Empty(t, result.Pages[0].Placements)
	assert.Equal(t, 0.0, result.TotalEfficiency())
}

func TestOptimize_VerifyLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	opt := New(testSettings(64, 64))
	opt.Verify = true
	opt.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	result, err := opt.Optimize([]model.Item{
		model.NewItem("a", 32, 32, 5),
		model.NewItem("b", 16, 48, 2),
	})

	require.NoError(t, err)
	assert.Equal(t, 7, result.Placed())
	assert.Contains(t, buf.String(), "layout verified")
}
