package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/engine"
)

func newCompareCmd() *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "compare [file]",
		Short: "Pack with every heuristic and rank the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			in, err := loadInput(args[0], logger)
			if err != nil {
				return err
			}
			settings, err := flags.resolve(cmd, configFromContext(ctx).config, in)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			results := engine.CompareHeuristics(settings, in.items, nil)
			prog.done(fmt.Sprintf("Compared %d heuristics", len(results)))

			out := cmd.OutOrStdout()
			widths := []int{18, 8, 12, 10}
			printTitle(out, fmt.Sprintf("%s (%dx%d)", args[0], settings.PageWidth, settings.PageHeight))
			printRow(out, widths, styleDim, "HEURISTIC", "PAGES", "EFFICIENCY", "WASTE")

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					printRow(out, widths[:2], styleError, r.Heuristic.String(), iconError, r.Err.Error())
					continue
				}
				printRow(out, widths, styleNumber, r.Heuristic.String(),
					fmt.Sprintf("%d", r.PagesUsed),
					fmt.Sprintf("%.1f%%", r.Efficiency),
					fmt.Sprintf("%.1f%%", r.WastePercent))
			}
			if failed == len(results) {
				return results[0].Err
			}
			printSuccess(out, "best: %s", results[0].Heuristic)
			return nil
		},
	}

	flags.registerPage(cmd)
	return cmd
}
