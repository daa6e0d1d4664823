package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statlens/crimelens/internal/config"
	"github.com/statlens/crimelens/internal/metrics"
	"github.com/statlens/crimelens/internal/viz"
)

const (
	chartCmdUse   = "chart [surface]"
	chartCmdShort = "Render chart pages as HTML"
	chartAllArg   = "all"
)

// NewChartCommand creates the chart subcommand. Without an argument (or
// with "all") every surface is rendered plus an index page.
func NewChartCommand() *cobra.Command {
	var configPath, dataPath, outputDir string

	cmd := &cobra.Command{
		Use:       chartCmdUse,
		Short:     chartCmdShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: surfaceArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, dataPath, outputDir)
			if err != nil {
				return err
			}

			selected := chartAllArg
			if len(args) == 1 {
				selected = args[0]
			}

			return runChart(cmd, cfg, selected)
		},
	}

	cmd.Flags().StringVar(&configPath, configFlag, "", configUsage)
	cmd.Flags().StringVar(&dataPath, dataFlag, "", dataUsage)
	cmd.Flags().StringVarP(&outputDir, outputFlag, outputShort, "", outputUsage)

	return cmd
}

func runChart(cmd *cobra.Command, cfg *config.Config, selected string) error {
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	bundle, err := metrics.Build(table)
	if err != nil {
		return err
	}

	renderer := newRenderer(cfg)

	var paths []string

	if selected == chartAllArg {
		paths, err = renderer.RenderAll(bundle, table)
	} else {
		var path string

		path, err = renderer.Render(viz.Surface(selected), bundle, table)
		paths = []string{path}
	}

	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", path)
	}

	return nil
}

func surfaceArgs() []string {
	args := make([]string, 0, len(viz.Surfaces())+1)

	for _, surface := range viz.Surfaces() {
		args = append(args, string(surface))
	}

	return append(args, chartAllArg)
}
