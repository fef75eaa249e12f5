package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/piwi3910/atlaspack/internal/model"
)

// AtlasFrame locates one packed rectangle inside the atlas.
type AtlasFrame struct {
	ID     int    `json:"id"`
	Label  string `json:"label"`
	Page   int    `json:"page"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
}

// AtlasMap is the JSON document consumed by runtime atlas loaders.
type AtlasMap struct {
	PageWidth  int          `json:"page_width"`
	PageHeight int          `json:"page_height"`
	Pages      int          `json:"pages"`
	Heuristic  string       `json:"heuristic"`
	Efficiency float64      `json:"efficiency"`
	Frames     []AtlasFrame `json:"frames"`
}

// BuildAtlasMap flattens a result into frames ordered by rectangle ID.
func BuildAtlasMap(result model.PackResult) AtlasMap {
	m := AtlasMap{
		PageWidth:  result.PageWidth,
		PageHeight: result.PageHeight,
		Pages:      len(result.Pages),
		Heuristic:  result.Heuristic.String(),
		Efficiency: result.TotalEfficiency(),
		Frames:     make([]AtlasFrame, 0, result.Placed()),
	}
	for _, page := range result.Pages {
		for _, p := range page.Placements {
			m.Frames = append(m.Frames, AtlasFrame{
				ID:     p.Rect.ID,
				Label:  p.Label,
				Page:   p.Rect.Page,
				X:      p.Rect.X,
				Y:      p.Rect.Y,
				Width:  p.Rect.Width,
				Height: p.Rect.Height,
			})
		}
	}
	sort.Slice(m.Frames, func(i, j int) bool { return m.Frames[i].ID < m.Frames[j].ID })
	return m
}

// WriteAtlasMap encodes the atlas map of result as indented JSON.
func WriteAtlasMap(w io.Writer, result model.PackResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildAtlasMap(result))
}

// ExportAtlasMap writes the atlas map of result to path.
func ExportAtlasMap(path string, result model.PackResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create atlas map: %w", err)
	}
	if err := WriteAtlasMap(f, result); err != nil {
		f.Close()
		return fmt.Errorf("failed to write atlas map: %w", err)
	}
	return f.Close()
}
