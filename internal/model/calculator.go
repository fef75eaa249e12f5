package model

import "math"

// PageEstimate holds the results of an area-based page count calculation.
type PageEstimate struct {
	TotalItemArea    int     `json:"total_item_area"`    // Sum of all rect areas
	PageArea         int     `json:"page_area"`          // Area of one page
	PagesNeededExact float64 `json:"pages_needed_exact"` // Exact fractional number of pages
	PagesNeededMin   int     `json:"pages_needed_min"`   // Lower bound (ceiling of exact)
	PagesWithWaste   int     `json:"pages_with_waste"`   // Estimate including waste factor
	WastePercent     float64 `json:"waste_percent"`      // Waste factor applied (e.g., 15 for 15%)
	Oversized        int     `json:"oversized"`          // Items that can never fit on a page
}

// EstimatePages computes a lower bound on the number of pages needed for
// items and a padded estimate using wastePercent. No packing is performed.
func EstimatePages(items []Item, pageWidth, pageHeight int, wastePercent float64) PageEstimate {
	var totalArea, oversized int
	for _, it := range items {
		if it.Width > pageWidth || it.Height > pageHeight {
			oversized += it.Quantity
		}
		totalArea += it.Width * it.Height * it.Quantity
	}

	pageArea := pageWidth * pageHeight
	if pageArea <= 0 {
		return PageEstimate{
			TotalItemArea: totalArea,
			WastePercent:  wastePercent,
			Oversized:     oversized,
		}
	}

	exact := float64(totalArea) / float64(pageArea)
	minPages := int(math.Ceil(exact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := int(math.Ceil(exact * wasteFactor))
	if withWaste < minPages {
		withWaste = minPages
	}

	return PageEstimate{
		TotalItemArea:    totalArea,
		PageArea:         pageArea,
		PagesNeededExact: exact,
		PagesNeededMin:   minPages,
		PagesWithWaste:   withWaste,
		WastePercent:     wastePercent,
		Oversized:        oversized,
	}
}
