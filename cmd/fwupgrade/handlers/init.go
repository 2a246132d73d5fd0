package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/fwupgrade/internal/config"
	"github.com/imamik/fwupgrade/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.Run

	// writeConfig writes the config to a file.
	writeConfig = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := wizard.BuildConfig(result)

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("fwupgrade - appliance firmware upgrades")
	fmt.Println("=======================================")
	fmt.Println()
	fmt.Println("This wizard creates an upgrade configuration with sensible defaults.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Upgrade Summary")
	fmt.Println("---------------")
	fmt.Printf("  Appliance:      %s\n", cfg.Device.Host)
	fmt.Printf("  Target version: %s\n", cfg.Upgrade.TargetVersion)
	fmt.Printf("  Content first:  %t\n", cfg.Upgrade.UpgradeContent)
	fmt.Printf("  Stage base:     %t\n", cfg.Upgrade.DownloadBaseVersion)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Set the appliance API key (if not stored in the file):")
	fmt.Println("     export FWUPGRADE_API_KEY=<your-key>")
	fmt.Println()
	fmt.Printf("  2. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Printf("  3. Run the upgrade:\n")
	fmt.Printf("     fwupgrade run -c %s\n", outputPath)
	fmt.Println()
}
