package model

import "github.com/google/uuid"

// Item represents a required rectangle from an input list, e.g. one sprite
// or one row of a cut list. Quantity expands into that many rectangles.
type Item struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Quantity int    `json:"quantity"`
}

func NewItem(label string, w, h, qty int) Item {
	return Item{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Width:    w,
		Height:   h,
		Quantity: qty,
	}
}

// ExpandItems turns items into one Rect per unit of quantity. Rect IDs are
// indices into the returned label slice, so labels[r.ID] names any rect.
func ExpandItems(items []Item) ([]Rect, []string) {
	var rects []Rect
	var labels []string
	for _, it := range items {
		for i := 0; i < it.Quantity; i++ {
			rects = append(rects, NewRect(len(rects), it.Width, it.Height))
			labels = append(labels, it.Label)
		}
	}
	return rects, labels
}

// DefaultPageSize is the width and height used when nothing else is configured.
// It matches a common maximum texture size.
const DefaultPageSize = 2048

// PackSettings holds packer configuration.
type PackSettings struct {
	PageWidth    int       `json:"page_width" toml:"page_width"`
	PageHeight   int       `json:"page_height" toml:"page_height"`
	Heuristic    Heuristic `json:"heuristic" toml:"heuristic"`
	MaxPages     int       `json:"max_pages" toml:"max_pages"`         // 0 = number of rects + 1
	CapacityHint int       `json:"capacity_hint" toml:"capacity_hint"` // Initial size of the free/used sets
}

func DefaultSettings() PackSettings {
	return PackSettings{
		PageWidth:    DefaultPageSize,
		PageHeight:   DefaultPageSize,
		Heuristic:    BestAreaFit,
		MaxPages:     0,
		CapacityHint: 64,
	}
}

// Placement represents a single packed rectangle with its label.
type Placement struct {
	Label string `json:"label"`
	Rect  Rect   `json:"rect"`
}

// PageResult represents one page with its placed rectangles and the free
// rectangles that remained when packing finished.
type PageResult struct {
	Index      int         `json:"index"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Placements []Placement `json:"placements"`
	Free       []Rect      `json:"free,omitempty"`
}

// UsedArea returns the total area covered by placements.
func (pr PageResult) UsedArea() int {
	total := 0
	for _, p := range pr.Placements {
		total += p.Rect.Area()
	}
	return total
}

// TotalArea returns the page area.
func (pr PageResult) TotalArea() int {
	return pr.Width * pr.Height
}

// Efficiency returns the usage percentage.
func (pr PageResult) Efficiency() float64 {
	ta := pr.TotalArea()
	if ta == 0 {
		return 0
	}
	return float64(pr.UsedArea()) / float64(ta) * 100.0
}

// PackResult holds the full solution.
type PackResult struct {
	PageWidth  int          `json:"page_width"`
	PageHeight int          `json:"page_height"`
	Heuristic  Heuristic    `json:"heuristic"`
	Pages      []PageResult `json:"pages"`
}

// Placed returns the number of placements across all pages.
func (r PackResult) Placed() int {
	n := 0
	for _, p := range r.Pages {
		n += len(p.Placements)
	}
	return n
}

// TotalEfficiency returns overall page usage percentage.
func (r PackResult) TotalEfficiency() float64 {
	var used, total int
	for _, p := range r.Pages {
		used += p.UsedArea()
		total += p.TotalArea()
	}
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100.0
}

// Lookup returns a map from rect ID to placement.
func (r PackResult) Lookup() map[int]Placement {
	m := make(map[int]Placement, r.Placed())
	for _, p := range r.Pages {
		for _, pl := range p.Placements {
			m[pl.Rect.ID] = pl
		}
	}
	return m
}

// Project ties everything together for save/load.
type Project struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Items    []Item       `json:"items"`
	Settings PackSettings `json:"settings"`
	Result   *PackResult  `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		ID:       uuid.New().String(),
		Name:     "Untitled",
		Items:    []Item{},
		Settings: DefaultSettings(),
	}
}
