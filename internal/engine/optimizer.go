package engine

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/atlaspack/internal/model"
)

// Optimizer packs item lists into pages and summarizes the result.
type Optimizer struct {
	Settings model.PackSettings
	Logger   *log.Logger
	Verify   bool // Check page invariants after packing
}

func New(settings model.PackSettings) *Optimizer {
	return &Optimizer{Settings: settings}
}

// Optimize expands items by quantity, packs them with the configured
// heuristic and returns the placements and leftover free space of every page.
// Placement labels come from the item each rectangle was expanded from.
func (o *Optimizer) Optimize(items []model.Item) (model.PackResult, error) {
	s := o.Settings
	rects, labels := model.ExpandItems(items)

	hint := s.CapacityHint
	if hint < len(rects) {
		hint = len(rects)
	}
	ctx, err := NewContext(s.PageWidth, s.PageHeight, hint)
	if err != nil {
		return model.PackResult{}, err
	}
	ctx.SetMaxPages(s.MaxPages)
	ctx.SetLogger(o.logger())

	if err := ctx.Pack(rects, s.Heuristic); err != nil {
		return model.PackResult{}, fmt.Errorf("failed to pack %d rectangles: %w", len(rects), err)
	}
	if o.Verify {
		if err := ctx.Verify(); err != nil {
			return model.PackResult{}, err
		}
		o.logger().Debug("layout verified", "pages", ctx.Pages())
	}

	result := buildResult(ctx, labels)
	o.logger().Info("packed",
		"heuristic", s.Heuristic,
		"rects", len(rects),
		"pages", len(result.Pages),
		"efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency()))
	return result, nil
}

func (o *Optimizer) logger() *log.Logger {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o.Logger
}

// buildResult groups the used and free rectangles of ctx by page.
func buildResult(ctx *Context, labels []string) model.PackResult {
	w, h := ctx.PageSize()
	result := model.PackResult{
		PageWidth:  w,
		PageHeight: h,
		Heuristic:  ctx.Heuristic(),
		Pages:      make([]model.PageResult, ctx.Pages()),
	}
	for i := range result.Pages {
		result.Pages[i] = model.PageResult{Index: i, Width: w, Height: h}
	}

	for _, r := range ctx.UsedRects() {
		label := ""
		if r.ID >= 0 && r.ID < len(labels) {
			label = labels[r.ID]
		}
		pr := &result.Pages[r.Page]
		pr.Placements = append(pr.Placements, model.Placement{Label: label, Rect: r})
	}
	for _, f := range ctx.FreeRects() {
		pr := &result.Pages[f.Page]
		pr.Free = append(pr.Free, f)
	}

	// Free rects come out of the context in swap-remove order.
	for i := range result.Pages {
		free := result.Pages[i].Free
		sort.Slice(free, func(a, b int) bool {
			if free[a].Y != free[b].Y {
				return free[a].Y < free[b].Y
			}
			if free[a].X != free[b].X {
				return free[a].X < free[b].X
			}
			return free[a].Area() > free[b].Area()
		})
	}
	return result
}
