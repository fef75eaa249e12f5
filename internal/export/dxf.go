package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/atlaspack/internal/model"
)

// DXF layer names.
const (
	LayerPages  = "PAGES"
	LayerPlaced = "PLACED"
	LayerFree   = "FREE"
)

// dxfPageGap is the horizontal space between pages in the drawing.
const dxfPageGap = 0.1

// ExportDXF writes the packing result as a DXF drawing. Pages are laid out
// left to right; each page outline and placed rectangle is drawn as four
// LINE entities, free rectangles too when includeFree is set. DXF has y
// pointing up, so page coordinates are flipped.
func ExportDXF(path string, result model.PackResult, includeFree bool) error {
	if len(result.Pages) == 0 {
		return fmt.Errorf("%w: no pages", ErrNothingToExport)
	}

	d := dxf.NewDrawing()
	layers := []string{LayerPages, LayerPlaced}
	if includeFree {
		layers = append(layers, LayerFree)
	}
	for _, name := range layers {
		if _, err := d.AddLayer(name, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", name, err)
		}
	}

	gap := float64(result.PageWidth) * dxfPageGap
	for _, page := range result.Pages {
		offsetX := float64(page.Index) * (float64(page.Width) + gap)
		box := func(r model.Rect) error {
			return drawBox(d, offsetX+float64(r.X), float64(page.Height-r.Bottom()), float64(r.Width), float64(r.Height))
		}

		if err := d.ChangeLayer(LayerPages); err != nil {
			return err
		}
		if err := box(model.Rect{Width: page.Width, Height: page.Height}); err != nil {
			return fmt.Errorf("failed to draw page %d: %w", page.Index, err)
		}

		if err := d.ChangeLayer(LayerPlaced); err != nil {
			return err
		}
		for _, p := range page.Placements {
			if p.Rect.Width == 0 || p.Rect.Height == 0 {
				continue
			}
			if err := box(p.Rect); err != nil {
				return fmt.Errorf("failed to draw rect %d: %w", p.Rect.ID, err)
			}
		}

		if !includeFree {
			continue
		}
		if err := d.ChangeLayer(LayerFree); err != nil {
			return err
		}
		for _, f := range page.Free {
			if err := box(f); err != nil {
				return fmt.Errorf("failed to draw free rect: %w", err)
			}
		}
	}

	return d.SaveAs(path)
}

// drawBox draws an axis-aligned rectangle as four lines on the current layer.
func drawBox(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%4]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return err
		}
	}
	return nil
}
