package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/piwi3910/atlaspack/internal/project"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage the configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigBackupCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs := configFromContext(cmd.Context())
			c := cs.config
			out := cmd.OutOrStdout()

			printTitle(out, cs.path)
			printKeyValue(out, "Page size", fmt.Sprintf("%dx%d", c.DefaultPageWidth, c.DefaultPageHeight))
			printKeyValue(out, "Heuristic", c.DefaultHeuristic.String())
			printKeyValue(out, "Max pages", fmt.Sprintf("%d", c.DefaultMaxPages))
			printKeyValue(out, "Min offcut side", fmt.Sprintf("%d", c.MinOffcutSide))
			printKeyValue(out, "Waste", fmt.Sprintf("%.0f%%", c.WastePercent))
			catalog := model.NewPresetCatalog(c.PagePresets)
			printKeyValue(out, "Presets", strings.Join(catalog.Names(), ", "))
			for i, p := range c.RecentProjects {
				key := ""
				if i == 0 {
					key = "Recent projects"
				}
				printKeyValue(out, key, p)
			}
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs := configFromContext(cmd.Context())
			if cs.path == "" {
				return fmt.Errorf("no config path")
			}
			if fileExists(cs.path) && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", cs.path)
			}
			if err := project.SaveAppConfig(cs.path, cs.config); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "wrote config")
			printFile(cmd.OutOrStdout(), cs.path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newConfigBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup [file]",
		Short: "Bundle the config and recent projects into one JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cs := configFromContext(cmd.Context())

			dest := fmt.Sprintf("%s-backup-%s.json", appName, time.Now().Format("20060102-150405"))
			if len(args) == 1 {
				dest = args[0]
			} else if cs.path != "" {
				dest = filepath.Join(filepath.Dir(cs.path), dest)
			}

			projects, missing := project.CollectRecentProjects(cs.config)
			for _, m := range missing {
				logger.Warn("skipping unreadable project", "path", m)
			}
			if err := project.ExportAllData(dest, cs.config, projects); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "backed up config and %d projects", len(projects))
			printFile(cmd.OutOrStdout(), dest)
			return nil
		},
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
