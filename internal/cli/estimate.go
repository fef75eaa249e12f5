package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/model"
)

func newEstimateCmd() *cobra.Command {
	var (
		flags settingsFlags
		waste float64
	)

	cmd := &cobra.Command{
		Use:   "estimate [file]",
		Short: "Estimate the number of pages from total area",
		Long: `Estimate sums the area of all rectangles and divides by the page area. The
result is a lower bound; the padded estimate adds a waste factor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx).config

			in, err := loadInput(args[0], loggerFromContext(ctx))
			if err != nil {
				return err
			}
			settings, err := flags.resolve(cmd, cfg, in)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("waste") {
				waste = cfg.WastePercent
			}

			est := model.EstimatePages(in.items, settings.PageWidth, settings.PageHeight, waste)

			out := cmd.OutOrStdout()
			printTitle(out, args[0])
			printKeyValue(out, "Page size", fmt.Sprintf("%dx%d", settings.PageWidth, settings.PageHeight))
			printKeyValue(out, "Total area", fmt.Sprintf("%d", est.TotalItemArea))
			printKeyValue(out, "Pages (exact)", fmt.Sprintf("%.2f", est.PagesNeededExact))
			printKeyValue(out, "Pages (minimum)", fmt.Sprintf("%d", est.PagesNeededMin))
			printKeyValue(out, fmt.Sprintf("Pages (+%.0f%%)", est.WastePercent), fmt.Sprintf("%d", est.PagesWithWaste))
			if est.Oversized > 0 {
				printKeyValue(out, "Oversized", styleError.Render(fmt.Sprintf("%d", est.Oversized)))
			}
			return nil
		},
	}

	flags.registerPage(cmd)
	cmd.Flags().Float64Var(&waste, "waste", 0, "waste percentage added to the estimate (default from config)")
	return cmd
}
