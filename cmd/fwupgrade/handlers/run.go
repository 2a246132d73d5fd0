// Package handlers implements the CLI command logic.
//
// Handlers load configuration, construct the device client and the
// orchestration sequencer, and translate the run outcome into terminal
// output and exit status. Construction goes through package-level
// factory variables so tests can substitute mocks.
package handlers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr/funcr"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/imamik/fwupgrade/internal/config"
	"github.com/imamik/fwupgrade/internal/device"
	"github.com/imamik/fwupgrade/internal/orchestration"
	"github.com/imamik/fwupgrade/internal/ui"
)

// RunOptions contains options for the run command. Pointer fields are
// overrides that apply only when the flag was set explicitly.
type RunOptions struct {
	ConfigPath          string
	TargetVersion       string
	BaseVersion         string
	BackupFilename      string
	BackupConfig        *bool
	UpgradeContent      *bool
	DownloadBaseVersion *bool
	Insecure            bool
	LogJSON             bool
	PushGateway         string
}

// Factory function variables for run - can be replaced in tests.
var (
	// newDeviceClient builds the appliance client.
	newDeviceClient = func(cfg *config.Config, timeouts *config.Timeouts) device.Client {
		opts := []device.ClientOption{
			device.WithRequestTimeout(timeouts.HTTPRequest),
		}
		if cfg.Device.Insecure {
			opts = append(opts, device.WithInsecureSkipVerify())
		}
		return device.NewRealClient(cfg.Device.Host, cfg.Device.APIKey, opts...)
	}

	// newSequencer builds the orchestration sequencer.
	newSequencer = func(dc device.Client, obs orchestration.Observer, m *orchestration.Metrics, settle time.Duration) *orchestration.Sequencer {
		return orchestration.New(dc,
			orchestration.WithObserver(obs),
			orchestration.WithMetrics(m),
			orchestration.WithSettleDelay(settle),
		)
	}

	// pushMetrics delivers the run metrics to a Pushgateway.
	pushMetrics = func(url string, m *orchestration.Metrics) error {
		return push.New(url, "fwupgrade").Gatherer(m.Registry()).Push()
	}

	// renderSummary writes the per-step summary to stdout.
	renderSummary = func(outcomes []orchestration.StepOutcome) {
		fmt.Print(ui.RenderSummary(outcomes, ui.IsTerminal()))
	}
)

// Run handles the run command.
//
// It loads and validates the configuration, applies flag overrides,
// then executes the upgrade workflow against the appliance. The
// per-step summary is always printed, including for aborted runs, so
// the operator can see how far the workflow got.
func Run(ctx context.Context, opts RunOptions) error {
	cfg, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyOverrides(cfg, opts)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	timeouts := config.LoadTimeouts()

	observer := newObserver(opts.LogJSON)
	metrics := orchestration.NewMetrics()

	client := newDeviceClient(cfg, timeouts)
	seq := newSequencer(client, observer, metrics, timeouts.SettleDelay)

	observer.Printf("upgrading %s to %s", cfg.Device.Host, cfg.Upgrade.TargetVersion)

	outcomes, runErr := seq.Run(ctx, cfg.Options())

	renderSummary(outcomes)

	if opts.PushGateway != "" {
		if err := pushMetrics(opts.PushGateway, metrics); err != nil {
			observer.Printf("metrics push failed: %v", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("upgrade failed: %w", runErr)
	}

	observer.Printf("appliance %s is running %s", cfg.Device.Host, cfg.Upgrade.TargetVersion)
	return nil
}

// applyOverrides folds flag values into the loaded configuration.
func applyOverrides(cfg *config.Config, opts RunOptions) {
	if opts.TargetVersion != "" {
		cfg.Upgrade.TargetVersion = opts.TargetVersion
	}
	if opts.BaseVersion != "" {
		cfg.Upgrade.BaseVersion = opts.BaseVersion
	}
	if opts.BackupFilename != "" {
		cfg.Upgrade.BackupFilename = opts.BackupFilename
	}
	if opts.BackupConfig != nil {
		cfg.Upgrade.BackupConfig = opts.BackupConfig
	}
	if opts.UpgradeContent != nil {
		cfg.Upgrade.UpgradeContent = *opts.UpgradeContent
	}
	if opts.DownloadBaseVersion != nil {
		cfg.Upgrade.DownloadBaseVersion = *opts.DownloadBaseVersion
	}
	if opts.Insecure {
		cfg.Device.Insecure = true
	}
}

// newObserver returns the progress observer for the run: plain console
// logging by default, structured JSON lines on stderr with --log-json.
func newObserver(logJSON bool) orchestration.Observer {
	if !logJSON {
		return orchestration.NewConsoleObserver()
	}
	logger := funcr.NewJSON(func(obj string) {
		fmt.Fprintln(os.Stderr, obj)
	}, funcr.Options{})
	return orchestration.NewLogrObserver(logger)
}
