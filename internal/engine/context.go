package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/atlaspack/internal/model"
)

// Context holds the packing state for one atlas: the page size, the number
// of pages opened so far, the free rectangles of every page and the
// rectangles placed on them.
//
// A Context is not safe for concurrent use.
type Context struct {
	pageWidth  int
	pageHeight int
	heuristic  model.Heuristic
	pages      int
	maxPages   int
	ready      bool

	free    FreeList
	used    UsedList
	scratch []model.Rect

	logger *log.Logger
}

// NewContext returns a context initialized with one empty page.
func NewContext(pageWidth, pageHeight, capacityHint int) (*Context, error) {
	c := &Context{}
	if err := c.Init(pageWidth, pageHeight, capacityHint); err != nil {
		return nil, err
	}
	return c, nil
}

// Init resets c to a single empty page of the given size. capacityHint
// presizes the free and used sets. The page cap and logger are kept.
func (c *Context) Init(pageWidth, pageHeight, capacityHint int) error {
	if pageWidth <= 0 || pageHeight <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidPageSize, pageWidth, pageHeight)
	}
	if capacityHint < 1 {
		capacityHint = 1
	}

	c.pageWidth = pageWidth
	c.pageHeight = pageHeight
	c.heuristic = model.BestAreaFit
	c.pages = 1
	c.free = newFreeList(capacityHint)
	c.used = newUsedList(capacityHint)
	c.scratch = c.scratch[:0]
	c.free.Append(model.Rect{Page: 0, Width: pageWidth, Height: pageHeight})
	c.ready = true
	return nil
}

// Clear releases the free and used sets. The context must be initialized
// again before the next Pack.
func (c *Context) Clear() {
	c.free.reset()
	c.used.reset()
	c.scratch = nil
	c.pages = 0
	c.ready = false
}

// SetMaxPages caps the total number of pages. Zero restores the default,
// which allows one new page per unplaced rectangle plus one.
func (c *Context) SetMaxPages(n int) {
	c.maxPages = max(n, 0)
}

// SetLogger sets the logger used for debug output. Nil disables logging.
func (c *Context) SetLogger(l *log.Logger) {
	c.logger = l
}

func (c *Context) logOrDiscard() *log.Logger {
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c.logger
}

// PageSize returns the configured page width and height.
func (c *Context) PageSize() (int, int) { return c.pageWidth, c.pageHeight }

// Pages returns the number of pages opened so far.
func (c *Context) Pages() int { return c.pages }

// Heuristic returns the heuristic used by the last Pack.
func (c *Context) Heuristic() model.Heuristic { return c.heuristic }

// FreeRects returns the current free rectangles of all pages. The slice is
// owned by the context and valid until the next Pack, Init or Clear.
func (c *Context) FreeRects() []model.Rect { return c.free.Rects() }

// UsedRects returns every placed rectangle in placement order. The slice is
// owned by the context.
func (c *Context) UsedRects() []model.Rect { return c.used.Rects() }

// Pack places every unplaced rectangle in rects, opening new pages as
// needed. Each rectangle's Page, X, Y and Placed fields are updated in place;
// the order of rects is never changed. Rectangles already marked Placed are
// skipped, so Pack can be called repeatedly to grow an atlas.
//
// Every step places the rectangle, among all that remain, whose best
// candidate scores lowest under heuristic. When none fits into the free
// space of the open pages a new page is opened.
//
// An oversized or invalid rectangle is reported before anything is placed.
// ErrPageAllocationExhausted leaves the placements made so far in place.
func (c *Context) Pack(rects []model.Rect, heuristic model.Heuristic) error {
	if !c.ready {
		return ErrNotInitialized
	}
	score, ok := scorers[heuristic]
	if !ok {
		return fmt.Errorf("%w: %v", model.ErrUnknownHeuristic, heuristic)
	}

	remaining := 0
	for _, r := range rects {
		if r.Placed {
			continue
		}
		if r.Width < 0 || r.Height < 0 {
			return fmt.Errorf("%w: rect %d is %dx%d", ErrInvalidRectangle, r.ID, r.Width, r.Height)
		}
		if r.Width > c.pageWidth || r.Height > c.pageHeight {
			return fmt.Errorf("%w: rect %d is %dx%d, page is %dx%d",
				ErrOversizedRectangle, r.ID, r.Width, r.Height, c.pageWidth, c.pageHeight)
		}
		remaining++
	}

	c.heuristic = heuristic
	limit := c.maxPages
	if limit == 0 {
		limit = c.pages + remaining + 1
	}

	for remaining > 0 {
		best, idx := c.findBest(rects, score)
		if idx < 0 {
			if c.pages >= limit {
				return fmt.Errorf("%w: %d pages open, %d rectangles unplaced",
					ErrPageAllocationExhausted, c.pages, remaining)
			}
			c.addPage()
			continue
		}

		c.place(best.Candidate)

		r := &rects[idx]
		r.Page = best.Candidate.Page
		r.X = best.Candidate.X
		r.Y = best.Candidate.Y
		r.Placed = true
		remaining--
	}

	c.logOrDiscard().Debug("pack finished", "heuristic", heuristic, "pages", c.pages,
		"placed", c.used.Len(), "free", c.free.Len())
	return nil
}

// findBest scores every unplaced rectangle and returns the best result and
// its index in rects, or -1 when nothing fits anywhere.
func (c *Context) findBest(rects []model.Rect, score scoreFunc) (ScoreResult, int) {
	best := noFit
	bestIdx := -1
	for i, r := range rects {
		if r.Placed {
			continue
		}
		res := score(c, r.Width, r.Height)
		if res.better(best) {
			best = res
			best.Candidate.ID = r.ID
			bestIdx = i
		}
	}
	return best, bestIdx
}

// addPage opens a new empty page.
func (c *Context) addPage() {
	page := c.pages
	c.pages++
	c.free.Append(model.Rect{Page: page, Width: c.pageWidth, Height: c.pageHeight})
	c.logOrDiscard().Debug("opened page", "page", page)
}

// place removes node from the free space of its page and records it as used.
func (c *Context) place(node model.Rect) {
	c.scratch = c.scratch[:0]
	for i := 0; i < c.free.Len(); {
		var split bool
		c.scratch, split = splitFree(c.free.At(i), node, c.scratch)
		if split {
			c.free.RemoveAt(i)
			continue
		}
		i++
	}
	for _, r := range c.scratch {
		c.free.Append(r)
	}
	c.free.Prune()

	node.Placed = true
	c.used.Append(node)
}

// Verify checks the page invariants: every used and free rectangle lies
// within its page, used rectangles do not overlap each other or any free
// rectangle, and no free rectangle contains another.
func (c *Context) Verify() error {
	if !c.ready {
		return ErrNotInitialized
	}
	inPage := func(r model.Rect) bool {
		return r.Page >= 0 && r.Page < c.pages &&
			r.X >= 0 && r.Y >= 0 && r.Width >= 0 && r.Height >= 0 &&
			r.Right() <= c.pageWidth && r.Bottom() <= c.pageHeight
	}

	used := c.used.rects
	for i, u := range used {
		if !inPage(u) {
			return fmt.Errorf("%w: used %v outside page bounds", ErrInvariant, u)
		}
		for _, other := range used[i+1:] {
			if Overlaps(u, other) {
				return fmt.Errorf("%w: used %v overlaps used %v", ErrInvariant, u, other)
			}
		}
	}

	free := c.free.rects
	for i, f := range free {
		if !inPage(f) {
			return fmt.Errorf("%w: free %v outside page bounds", ErrInvariant, f)
		}
		for _, u := range used {
			if Overlaps(f, u) {
				return fmt.Errorf("%w: free %v overlaps used %v", ErrInvariant, f, u)
			}
		}
		for j, other := range free {
			if i != j && Contains(other, f) {
				return fmt.Errorf("%w: free %v contained in free %v", ErrInvariant, f, other)
			}
		}
	}
	return nil
}
