package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/engine"
	"github.com/piwi3910/atlaspack/internal/export"
	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/piwi3910/atlaspack/internal/project"
)

// packOpts holds the command-line flags for the pack command.
type packOpts struct {
	settingsFlags
	output      string // atlas map JSON path, "-" for stdout
	pdf         string // layout sheets
	labels      string // label sheets with QR codes
	dxf         string // page and rectangle outlines
	saveProject string // project file to write
	showFree    bool   // draw free rectangles in PDF and DXF output
	verify      bool   // check page invariants after packing
	minOffcut   int    // smallest offcut side to report
}

func newPackCmd() *cobra.Command {
	var opts packOpts

	cmd := &cobra.Command{
		Use:   "pack [file]",
		Short: "Pack the rectangles of an input file into pages",
		Long: `Pack reads rectangles from a CSV, Excel, DXF or project file and places them
on as few pages as it can. Without output flags the atlas map is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, args[0], &opts)
		},
	}

	opts.registerPage(cmd)
	opts.registerHeuristic(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "atlas map JSON file (\"-\" for stdout)")
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "write layout sheets to a PDF file")
	cmd.Flags().StringVar(&opts.labels, "labels", "", "write label sheets to a PDF file")
	cmd.Flags().StringVar(&opts.dxf, "dxf", "", "write page outlines to a DXF file")
	cmd.Flags().StringVar(&opts.saveProject, "save-project", "", "save items, settings and result as a project file")
	cmd.Flags().BoolVar(&opts.showFree, "show-free", false, "include free rectangles in PDF and DXF output")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "check page invariants after packing")
	cmd.Flags().IntVar(&opts.minOffcut, "min-offcut", 0, "smallest offcut side to report (default from config)")

	return cmd
}

func runPack(cmd *cobra.Command, path string, opts *packOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cs := configFromContext(ctx)

	in, err := loadInput(path, logger)
	if err != nil {
		return err
	}
	settings, err := opts.resolve(cmd, cs.config, in)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	prog := newProgress(logger)
	opt := engine.New(settings)
	opt.Logger = logger
	opt.Verify = opts.verify
	result, err := opt.Optimize(in.items)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Packed %d rectangles into %d pages", result.Placed(), len(result.Pages)))

	minOffcut := cs.config.MinOffcutSide
	if cmd.Flags().Changed("min-offcut") {
		minOffcut = opts.minOffcut
	}
	for _, page := range result.Pages {
		offcuts := model.DetectOffcuts(page, minOffcut)
		logger.Info("page",
			"index", page.Index,
			"rects", len(page.Placements),
			"efficiency", fmt.Sprintf("%.1f%%", page.Efficiency()),
			"offcuts", len(offcuts))
		for _, oc := range offcuts {
			logger.Debug("offcut", "page", oc.PageIndex, "x", oc.X, "y", oc.Y, "w", oc.Width, "h", oc.Height)
		}
	}

	// Keep stdout clean when the atlas map is written there.
	listing := cmd.OutOrStdout()
	if opts.output == "-" {
		listing = cmd.ErrOrStderr()
	}
	if err := writePackOutputs(cmd, listing, path, result, opts); err != nil {
		return err
	}

	if opts.saveProject != "" {
		if err := saveProject(cmd, listing, path, in, settings, result, opts.saveProject); err != nil {
			return err
		}
	}
	return nil
}

// writePackOutputs writes every output selected by flags. The atlas map goes
// to stdout when no file output is selected.
func writePackOutputs(cmd *cobra.Command, listing io.Writer, inputPath string, result model.PackResult, opts *packOpts) error {
	ctx := cmd.Context()
	noFiles := opts.output == "" && opts.pdf == "" && opts.labels == "" && opts.dxf == "" && opts.saveProject == ""

	if opts.output == "-" || noFiles {
		if err := export.WriteAtlasMap(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else if opts.output != "" {
		if err := export.ExportAtlasMap(opts.output, result); err != nil {
			return err
		}
		printFile(listing, opts.output)
	}

	if opts.pdf != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		title := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		if err := export.ExportPDF(opts.pdf, result, export.PDFOptions{ShowFree: opts.showFree, Title: title}); err != nil {
			return err
		}
		printFile(listing, opts.pdf)
	}

	if opts.labels != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := export.ExportLabels(opts.labels, result); err != nil {
			return err
		}
		printFile(listing, opts.labels)
	}

	if opts.dxf != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := export.ExportDXF(opts.dxf, result, opts.showFree); err != nil {
			return err
		}
		printFile(listing, opts.dxf)
	}
	return nil
}

// saveProject writes a project file for the run and records it in the
// config's recent projects list.
func saveProject(cmd *cobra.Command, listing io.Writer, inputPath string, in input, settings model.PackSettings, result model.PackResult, dest string) error {
	logger := loggerFromContext(cmd.Context())
	cs := configFromContext(cmd.Context())

	p := model.NewProject()
	if in.project != nil {
		p = *in.project
	} else {
		p.Name = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}
	p.Items = in.items
	p.Settings = settings
	p.Result = &result

	if err := project.SaveProject(dest, p); err != nil {
		return err
	}
	printFile(listing, dest)

	abs, err := filepath.Abs(dest)
	if err != nil {
		abs = dest
	}
	cs.config.AddRecentProject(abs, recentProjectLimit)
	if cs.path == "" {
		return nil
	}
	if err := project.SaveAppConfig(cs.path, cs.config); err != nil {
		logger.Warn("could not update recent projects", "config", cs.path, "err", err)
	}
	return nil
}
