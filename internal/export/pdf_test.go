package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/atlaspack/internal/model"
)

func placed(id, page, x, y, w, h int) model.Rect {
	return model.Rect{ID: id, Page: page, X: x, Y: y, Width: w, Height: h, Placed: true}
}

// buildTestResult creates a two-page result similar to what the engine returns.
func buildTestResult() model.PackResult {
	return model.PackResult{
		PageWidth:  256,
		PageHeight: 128,
		Heuristic:  model.BestAreaFit,
		Pages: []model.PageResult{
			{
				Index: 0, Width: 256, Height: 128,
				Placements: []model.Placement{
					{Label: "hero", Rect: placed(0, 0, 0, 0, 128, 128)},
					{Label: "enemy", Rect: placed(1, 0, 128, 0, 64, 64)},
					{Label: "coin", Rect: placed(2, 0, 128, 64, 16, 16)},
				},
				Free: []model.Rect{
					{Page: 0, X: 192, Y: 0, Width: 64, Height: 128},
					{Page: 0, X: 144, Y: 64, Width: 112, Height: 64},
				},
			},
			{
				Index: 1, Width: 256, Height: 128,
				Placements: []model.Placement{
					{Label: "background", Rect: placed(3, 1, 0, 0, 200, 100)},
				},
			},
		},
	}
}

func assertFileWritten(t *testing.T, path string, minSize int64) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() < minSize {
		t.Errorf("file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.pdf")

	if err := ExportPDF(path, buildTestResult(), PDFOptions{}); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	// 2 atlas pages + summary
	assertFileWritten(t, path, 500)
}

func TestExportPDF_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	err := ExportPDF(path, model.PackResult{}, PDFOptions{})
	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an empty result")
	}
}

func TestExportPDF_ShowFree(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.pdf")
	withFree := filepath.Join(dir, "free.pdf")

	if err := ExportPDF(plain, buildTestResult(), PDFOptions{}); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if err := ExportPDF(withFree, buildTestResult(), PDFOptions{ShowFree: true, Title: "Sprites"}); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	a, _ := os.Stat(plain)
	b, _ := os.Stat(withFree)
	if b.Size() <= a.Size() {
		t.Errorf("expected hatched free space to add content: %d <= %d", b.Size(), a.Size())
	}
}

func TestExportPDF_ManyRects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.pdf")

	// More rects than colors to exercise color cycling and legend wrapping
	placements := make([]model.Placement, 40)
	for i := range placements {
		placements[i] = model.Placement{
			Label: fmt.Sprintf("sprite_%02d", i),
			Rect:  placed(i, 0, (i%8)*32, (i/8)*32, 32, 32),
		}
	}
	result := model.PackResult{
		PageWidth: 256, PageHeight: 256,
		Pages: []model.PageResult{{Index: 0, Width: 256, Height: 256, Placements: placements}},
	}

	if err := ExportPDF(path, result, PDFOptions{}); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertFileWritten(t, path, 500)
}

func TestExportPDF_ManyPagesSummaryOverflows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.pdf")

	result := model.PackResult{PageWidth: 16, PageHeight: 16}
	for i := 0; i < 40; i++ {
		result.Pages = append(result.Pages, model.PageResult{
			Index: i, Width: 16, Height: 16,
			Placements: []model.Placement{{Label: "tile", Rect: placed(i, i, 0, 0, 16, 16)}},
		})
	}

	if err := ExportPDF(path, result, PDFOptions{}); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertFileWritten(t, path, 500)
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
