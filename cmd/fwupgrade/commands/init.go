package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fwupgrade/cmd/fwupgrade/handlers"
)

// Init returns the command for interactively creating an upgrade
// configuration.
//
// This command guides users through creating the configuration YAML file
// using an interactive wizard with text inputs and confirmations.
//
// Flags:
//
//	--output, -o: Path to output file (default "fwupgrade.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create an upgrade configuration",
		Long: `Interactively create an upgrade configuration file.

This command guides you through configuring the upgrade step by step.
It will ask about:

  - The appliance address and API key
  - The target firmware version
  - Optional configuration backup
  - Optional content bundle refresh
  - Optional base version staging for multi-hop upgrades

The API key is written to the file only if you enter one; prefer the
FWUPGRADE_API_KEY environment variable for anything beyond a quick test.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "fwupgrade.yaml", "Output file path")

	return cmd
}
