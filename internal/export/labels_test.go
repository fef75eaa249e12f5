package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/piwi3910/atlaspack/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestResult()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertFileWritten(t, path, 500)
}

func TestExportLabels_NoPlacements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.pdf")

	result := model.PackResult{Pages: []model.PageResult{{Index: 0, Width: 64, Height: 64}}}
	if err := ExportLabels(path, result); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
	if err := ExportLabels(path, model.PackResult{}); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport for empty result, got %v", err)
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestResult())

	if len(labels) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(labels))
	}
	want := LabelInfo{Label: "enemy", RectID: 1, Page: 0, X: 128, Y: 0, Width: 64, Height: 64}
	if labels[1] != want {
		t.Errorf("expected %+v, got %+v", want, labels[1])
	}
	if labels[3].Page != 1 || labels[3].Label != "background" {
		t.Errorf("expected last label on page 1, got %+v", labels[3])
	}
}

func TestLabelInfo_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(LabelInfo{Label: "hero", RectID: 7, Page: 2, X: 1, Y: 2, Width: 3, Height: 4})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	want := `{"label":"hero","id":7,"page":2,"x":1,"y":2,"width":3,"height":4}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestExportLabels_ManyRects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many_labels.pdf")

	// 35 labels spill onto a second label sheet
	placements := make([]model.Placement, 35)
	for i := range placements {
		placements[i] = model.Placement{
			Label: fmt.Sprintf("a rather long sprite name that needs truncating %d", i),
			Rect:  placed(i, 0, i*10, 0, 10, 10),
		}
	}
	result := model.PackResult{
		PageWidth: 512, PageHeight: 512,
		Pages: []model.PageResult{{Index: 0, Width: 512, Height: 512, Placements: placements}},
	}

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertFileWritten(t, path, 500)
}
