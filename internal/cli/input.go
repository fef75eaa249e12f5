package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/importer"
	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/piwi3910/atlaspack/internal/project"
)

var errUnsupportedInput = errors.New("unsupported input format")

// input is the item list of an input file. Project files also carry their
// saved settings and identity.
type input struct {
	items   []model.Item
	project *model.Project
}

// loadInput reads items from path, choosing the importer by extension.
// Row-level import errors are logged and skipped; an input without any
// usable item is an error.
func loadInput(path string, logger *log.Logger) (input, error) {
	var res importer.ImportResult
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		res = importer.ImportCSV(path)
	case ".xlsx":
		res = importer.ImportExcel(path)
	case ".dxf":
		res = importer.ImportDXF(path)
	case ".json":
		p, err := project.LoadProject(path)
		if err != nil {
			return input{}, err
		}
		if len(p.Items) == 0 {
			return input{}, fmt.Errorf("project %s has no items", path)
		}
		logger.Debug("loaded project", "name", p.Name, "items", len(p.Items))
		return input{items: p.Items, project: &p}, nil
	default:
		return input{}, fmt.Errorf("%w: %q (want .csv, .xlsx, .dxf or .json)", errUnsupportedInput, ext)
	}

	for _, w := range res.Warnings {
		logger.Warn(w, "file", path)
	}
	for _, e := range res.Errors {
		logger.Error(e, "file", path)
	}
	if len(res.Items) == 0 {
		if len(res.Errors) > 0 {
			return input{}, fmt.Errorf("failed to import %s: %s", path, res.Errors[0])
		}
		return input{}, fmt.Errorf("no items found in %s", path)
	}
	logger.Debug("imported items", "file", path, "items", len(res.Items))
	return input{items: res.Items}, nil
}

// settingsFlags are the page flags shared by the packing commands. Unset
// flags fall back to the project settings, then to the config defaults.
type settingsFlags struct {
	width     int
	height    int
	heuristic string
	maxPages  int
	preset    string
}

func (f *settingsFlags) registerPage(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "page width (default from config)")
	cmd.Flags().IntVar(&f.height, "height", 0, "page height (default from config)")
	cmd.Flags().IntVar(&f.maxPages, "max-pages", 0, "maximum number of pages, 0 for no limit")
	cmd.Flags().StringVar(&f.preset, "preset", "", "named page size, e.g. tex-1k or a4-300dpi (--width and --height override it)")
}

func (f *settingsFlags) registerHeuristic(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "", "placement heuristic: best-area, best-short-side, best-long-side, bottom-left, contact-point")
}

func (f *settingsFlags) resolve(cmd *cobra.Command, cfg model.AppConfig, in input) (model.PackSettings, error) {
	s := model.DefaultSettings()
	cfg.ApplyToSettings(&s)
	if in.project != nil {
		s = in.project.Settings
	}

	flags := cmd.Flags()
	if flags.Changed("preset") {
		catalog := model.NewPresetCatalog(cfg.PagePresets)
		p := catalog.FindByName(f.preset)
		if p == nil {
			return s, fmt.Errorf("unknown preset %q (available: %s)", f.preset, strings.Join(catalog.Names(), ", "))
		}
		p.ApplyToSettings(&s)
	}
	if flags.Changed("width") {
		s.PageWidth = f.width
	}
	if flags.Changed("height") {
		s.PageHeight = f.height
	}
	if flags.Changed("max-pages") {
		s.MaxPages = f.maxPages
	}
	if flags.Changed("heuristic") {
		h, err := model.ParseHeuristic(f.heuristic)
		if err != nil {
			return s, err
		}
		s.Heuristic = h
	}
	if s.PageWidth <= 0 || s.PageHeight <= 0 {
		return s, fmt.Errorf("invalid page size %dx%d", s.PageWidth, s.PageHeight)
	}
	if s.MaxPages < 0 {
		return s, fmt.Errorf("invalid --max-pages %d", s.MaxPages)
	}
	return s, nil
}
