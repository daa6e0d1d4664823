package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/statlens/crimelens/internal/config"
	"github.com/statlens/crimelens/internal/viz"
)

const (
	menuCmdUse   = "menu"
	menuCmdShort = "Interactive analysis menu"

	menuChoiceExit     = "0"
	menuChoiceShow     = "1"
	menuChoiceAll      = "8"
	firstSurfaceChoice = 2
)

// errInvalidChoice flags a menu selection outside the numbered options.
var errInvalidChoice = errors.New("invalid choice")

// NewMenuCommand creates the interactive menu subcommand, mapping
// numbered options onto the show command and the chart surfaces.
func NewMenuCommand() *cobra.Command {
	var configPath, dataPath, outputDir string

	cmd := &cobra.Command{
		Use:   menuCmdUse,
		Short: menuCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(configPath, dataPath, outputDir)
			if err != nil {
				return err
			}

			return runMenu(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, configFlag, "", configUsage)
	cmd.Flags().StringVar(&dataPath, dataFlag, "", dataUsage)
	cmd.Flags().StringVarP(&outputDir, outputFlag, outputShort, "", outputUsage)

	return cmd
}

func runMenu(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	color.New(color.FgCyan, color.Bold).Fprintln(out, "CRIMELENS - State-wise Crime Rate Analysis")

	for {
		printMenu(out)
		fmt.Fprint(out, "Enter your choice: ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		choice := strings.TrimSpace(scanner.Text())
		if choice == menuChoiceExit {
			fmt.Fprintln(out, "Goodbye.")

			return nil
		}

		err := dispatchChoice(cmd, cfg, choice)
		if err != nil {
			color.New(color.FgRed).Fprintf(out, "Error: %v\n", err)
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "1. Display All State Data")

	for i, surface := range viz.Surfaces() {
		fmt.Fprintf(out, "%d. %s\n", firstSurfaceChoice+i, surface.Title())
	}

	fmt.Fprintln(out, "8. Generate ALL Visualizations")
	fmt.Fprintln(out, "0. Exit")
}

func dispatchChoice(cmd *cobra.Command, cfg *config.Config, choice string) error {
	if choice == menuChoiceShow {
		return runShow(cmd, cfg)
	}

	if choice == menuChoiceAll {
		return runChart(cmd, cfg, chartAllArg)
	}

	surfaces := viz.Surfaces()

	for i, surface := range surfaces {
		if choice == fmt.Sprintf("%d", firstSurfaceChoice+i) {
			return runChart(cmd, cfg, string(surface))
		}
	}

	return fmt.Errorf("%w: %q", errInvalidChoice, choice)
}
