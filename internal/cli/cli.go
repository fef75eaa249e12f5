// Package cli implements the atlaspack command-line interface.
//
// The commands load rectangle lists from CSV, Excel, DXF or saved project
// files, pack them into fixed-size pages and write the layout as an atlas
// map, PDF sheets, label sheets or a DXF drawing.
//
// # Commands
//
//   - pack: pack an input file and write the selected outputs
//   - compare: pack with every heuristic and rank the results
//   - estimate: area-based page estimate without packing
//   - config: show, initialize or back up the configuration
//
// All commands support --verbose (-v) for debug-level logging and --config
// to select the TOML config file. The logger and config are passed to the
// commands through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/project"
)

const appName = "atlaspack"

// recentProjectLimit is the number of saved project paths remembered in the config.
const recentProjectLimit = 10

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the atlaspack CLI with the process arguments. Cancelling ctx
// aborts long-running commands between steps.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Command output goes to out and log
// output to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "atlaspack packs rectangles into fixed-size pages",
		Long:          `atlaspack packs lists of rectangles (sprites, glyphs, parts) into as few fixed-size pages as it can using the MaxRects algorithm, and exports the resulting layout.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := project.LoadAppConfig(configPath)
			if err != nil {
				return err
			}
			logger.Debug("loaded config", "path", configPath)

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, &configState{path: configPath, config: cfg})
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", project.DefaultConfigPath(), "config file")

	root.AddCommand(newPackCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newEstimateCmd())
	root.AddCommand(newConfigCmd())

	return root
}
