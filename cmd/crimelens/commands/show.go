package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statlens/crimelens/internal/config"
	"github.com/statlens/crimelens/internal/report"
	"github.com/statlens/crimelens/internal/stats"
)

const (
	showCmdUse   = "show"
	showCmdShort = "Display the crime table and summary statistics"
)

// NewShowCommand creates the show subcommand.
func NewShowCommand() *cobra.Command {
	var configPath, dataPath string

	cmd := &cobra.Command{
		Use:   showCmdUse,
		Short: showCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(configPath, dataPath, "")
			if err != nil {
				return err
			}

			return runShow(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, configFlag, "", configUsage)
	cmd.Flags().StringVar(&dataPath, dataFlag, "", dataUsage)

	return cmd
}

func runShow(cmd *cobra.Command, cfg *config.Config) error {
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	rates := stats.ComputeRates(table)

	summary, err := stats.Summarize(rates)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, report.DataTable(table, rates))
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.CategoryBlock(stats.AggregateCategories(table)))
	fmt.Fprintln(out)
	fmt.Fprint(out, report.SummaryBlock(summary))

	return nil
}
