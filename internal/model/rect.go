package model

import (
	"errors"
	"fmt"
	"strings"
)

// Rect is an axis-aligned rectangle on a page. Input rectangles carry a
// caller-supplied ID and are updated in place once packed; free rectangles
// use the same shape with ID and Placed unused.
type Rect struct {
	ID     int  `json:"id"`
	Page   int  `json:"page"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Placed bool `json:"placed"`
}

// NewRect returns an unplaced rectangle of the given size.
func NewRect(id, w, h int) Rect {
	return Rect{ID: id, Width: w, Height: h}
}

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns width * height.
func (r Rect) Area() int { return r.Width * r.Height }

func (r Rect) String() string {
	return fmt.Sprintf("#%d p%d <%d, %d, %d, %d>", r.ID, r.Page, r.X, r.Y, r.Width, r.Height)
}

// Heuristic selects how candidate free rectangles are scored.
type Heuristic int

const (
	BestAreaFit      Heuristic = iota // Smallest leftover area, ties by short side
	BestShortSideFit                  // Smallest leftover on the shorter side
	BottomLeft                        // Tetris placement: lowest top edge, then leftmost
	ContactPoint                      // Most perimeter touching edges and placed rects
	BestLongSideFit                   // Smallest leftover on the longer side
)

// Heuristics lists every supported heuristic in declaration order.
var Heuristics = []Heuristic{BestAreaFit, BestShortSideFit, BottomLeft, ContactPoint, BestLongSideFit}

func (h Heuristic) String() string {
	switch h {
	case BestAreaFit:
		return "best-area"
	case BestShortSideFit:
		return "best-short-side"
	case BottomLeft:
		return "bottom-left"
	case ContactPoint:
		return "contact-point"
	case BestLongSideFit:
		return "best-long-side"
	default:
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
}

// Valid reports whether h is one of the declared heuristics.
func (h Heuristic) Valid() bool {
	return h >= BestAreaFit && h <= BestLongSideFit
}

// ErrUnknownHeuristic is returned by ParseHeuristic for unrecognized names.
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// ParseHeuristic accepts the String form of a heuristic as well as the usual
// short abbreviations (baf, bssf, bl, cp, blsf). Matching is case-insensitive.
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "best-area", "baf", "area":
		return BestAreaFit, nil
	case "best-short-side", "bssf":
		return BestShortSideFit, nil
	case "bottom-left", "bl":
		return BottomLeft, nil
	case "contact-point", "cp":
		return ContactPoint, nil
	case "best-long-side", "blsf":
		return BestLongSideFit, nil
	}
	return BestAreaFit, fmt.Errorf("%w %q", ErrUnknownHeuristic, s)
}

// MarshalText encodes the heuristic by name so JSON and TOML files stay readable.
func (h Heuristic) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("invalid heuristic %d", int(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (h *Heuristic) UnmarshalText(text []byte) error {
	parsed, err := ParseHeuristic(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
