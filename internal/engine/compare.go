package engine

import (
	"sort"
	"sync"

	"github.com/piwi3910/atlaspack/internal/model"
)

// ComparisonResult holds the outcome of packing with one heuristic.
type ComparisonResult struct {
	Heuristic    model.Heuristic
	Result       model.PackResult
	PagesUsed    int
	Efficiency   float64
	WastePercent float64
	Err          error
}

// CompareHeuristics packs items once per heuristic and returns the results
// ordered best first: fewer pages, then higher efficiency, then declaration
// order. Failed runs sort last. Each heuristic packs on its own goroutine
// with its own Context.
func CompareHeuristics(settings model.PackSettings, items []model.Item, heuristics []model.Heuristic) []ComparisonResult {
	if len(heuristics) == 0 {
		heuristics = model.Heuristics
	}

	results := make([]ComparisonResult, len(heuristics))
	var wg sync.WaitGroup
	for i, h := range heuristics {
		wg.Add(1)
		go func(idx int, h model.Heuristic) {
			defer wg.Done()
			s := settings
			s.Heuristic = h
			res, err := New(s).Optimize(items)
			cr := ComparisonResult{Heuristic: h, Result: res, Err: err}
			if err == nil {
				cr.PagesUsed = len(res.Pages)
				cr.Efficiency = res.TotalEfficiency()
				cr.WastePercent = 100.0 - cr.Efficiency
			}
			results[idx] = cr
		}(i, h)
	}
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if (a.Err == nil) != (b.Err == nil) {
			return a.Err == nil
		}
		if a.PagesUsed != b.PagesUsed {
			return a.PagesUsed < b.PagesUsed
		}
		return a.Efficiency > b.Efficiency
	})
	return results
}
