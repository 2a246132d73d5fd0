package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/fwupgrade/internal/config"
)

// WriteConfig writes the config to a YAML file with a descriptive header.
func WriteConfig(cfg *config.Config, outputPath string) error {
	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader())
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func generateHeader() string {
	return fmt.Sprintf(`# fwupgrade configuration
# Generated by "fwupgrade init" on %s
#
# Run the upgrade with:
#   fwupgrade run --config %s
`, time.Now().Format("2006-01-02"), "fwupgrade.yaml")
}
