// Package wizard provides the interactive form behind "fwupgrade init".
package wizard

import (
	"context"

	"github.com/imamik/fwupgrade/internal/config"
)

// Result collects the wizard's answers.
type Result struct {
	Host                string
	APIKey              string
	Insecure            bool
	TargetVersion       string
	BackupConfig        bool
	UpgradeContent      bool
	DownloadBaseVersion bool
	BaseVersion         string
}

// Run walks the user through the configuration questions.
func Run(ctx context.Context) (*Result, error) {
	result := &Result{
		BackupConfig: true,
		BaseVersion:  config.DefaultBaseVersion,
	}

	if err := runDeviceGroup(ctx, result); err != nil {
		return nil, err
	}
	if err := runUpgradeGroup(ctx, result); err != nil {
		return nil, err
	}
	if result.DownloadBaseVersion {
		if err := runBaseVersionGroup(ctx, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// BuildConfig creates a Config from the wizard result.
func BuildConfig(result *Result) *config.Config {
	cfg := &config.Config{
		Device: config.DeviceConfig{
			Host:     result.Host,
			APIKey:   result.APIKey,
			Insecure: result.Insecure,
		},
		Upgrade: config.UpgradeConfig{
			TargetVersion:       result.TargetVersion,
			UpgradeContent:      result.UpgradeContent,
			DownloadBaseVersion: result.DownloadBaseVersion,
		},
	}

	if !result.BackupConfig {
		backup := false
		cfg.Upgrade.BackupConfig = &backup
	}
	if result.DownloadBaseVersion && result.BaseVersion != config.DefaultBaseVersion {
		cfg.Upgrade.BaseVersion = result.BaseVersion
	}

	return cfg
}
