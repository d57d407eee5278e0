package commands

import (
	"errors"
	"io/fs"
	"os"

	"github.com/moolen/deprscan/internal/config"
	"github.com/moolen/deprscan/internal/conftree"
	"github.com/moolen/deprscan/internal/deprecation"
	"github.com/moolen/deprscan/internal/logging"
	"github.com/moolen/deprscan/internal/report"
	"github.com/moolen/deprscan/internal/scanner"
	"github.com/spf13/cobra"
)

var (
	configFile             string
	configType             string
	deprecatedFeaturesFile string
	outputFormat           string
	settingsPath           string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a configuration file for deprecated features",
	Long: `Scan loads the configuration file and the deprecated-features table,
walks the configuration tree, and reports every mapping key that matches
a deprecated feature, with the path at which it occurred.

Exit codes: 0 = no deprecated features found, 1 = one or both input files
failed to load, 2 = deprecated features were found and reported.`,
	RunE: runScan,
}

func init() {
	addScanFlags(scanCmd)
}

// addScanFlags registers the flags shared by scan and watch.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config-file", "", "Path to the configuration file to scan")
	cmd.Flags().StringVar(&configType, "config-type", "", "Type of the configuration file (yaml or json)")
	cmd.Flags().StringVar(&deprecatedFeaturesFile, "deprecated-features-file", "", "Path to the JSON file containing deprecated features")
	cmd.Flags().StringVar(&outputFormat, "output", "", "Report format: text or json (default: text)")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "Optional path to a deprscan settings YAML file")
	_ = cmd.MarkFlagRequired("config-file")
	_ = cmd.MarkFlagRequired("config-type")
	_ = cmd.MarkFlagRequired("deprecated-features-file")
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := setupLog(logLevelFlags); err != nil {
		return err
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	status := executeScan(settings)
	if status != report.StatusClean {
		return &exitError{code: status.ExitCode()}
	}
	return nil
}

// resolveSettings merges the optional settings file with flag overrides.
// Flags win over file values; the settings file's log level applies only
// when --log-level was not given explicitly.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings := config.DefaultSettings()

	if settingsPath != "" {
		loaded, err := config.LoadSettingsFile(settingsPath)
		if err != nil {
			return nil, &exitError{code: report.StatusLoadFailure.ExitCode(), err: err}
		}
		settings = *loaded

		if !cmd.Flags().Changed("log-level") && !rootCmd.PersistentFlags().Changed("log-level") {
			if err := logging.Initialize(settings.LogLevel); err != nil {
				return nil, err
			}
		}
	}

	if outputFormat != "" {
		settings.Output = outputFormat
	}
	if err := settings.Validate(); err != nil {
		return nil, &exitError{code: report.StatusLoadFailure.ExitCode(), err: err}
	}
	return &settings, nil
}

// executeScan runs one load-scan-report pass and returns its status.
// Any load failure skips the matcher entirely; there are no partial results.
func executeScan(settings *config.Settings) report.Status {
	logger := logging.GetLogger("commands")

	// Both input files are checked before any load attempt.
	missing := false
	for _, path := range []string{configFile, deprecatedFeaturesFile} {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			logger.Error("Required file not found: %s", path)
			missing = true
		}
	}
	if missing {
		return report.StatusLoadFailure
	}

	format, err := conftree.ParseFormat(configType)
	if err != nil {
		logger.ErrorWithErr("unsupported configuration type", err)
		return report.StatusLoadFailure
	}

	table, err := deprecation.LoadTable(deprecatedFeaturesFile)
	if err != nil {
		logger.ErrorWithErr("failed to load deprecated features file", err)
		return report.StatusLoadFailure
	}

	tree, err := conftree.Load(configFile, format)
	if err != nil {
		logger.ErrorWithErr("failed to load configuration file", err)
		return report.StatusLoadFailure
	}

	findings := scanner.FindDeprecated(tree, table)

	var reporter report.Reporter
	switch settings.Output {
	case "json":
		reporter = report.NewJSONReporter(os.Stdout)
	default:
		reporter = report.NewTextReporter(logging.GetLogger("report"))
	}
	if err := reporter.Report(findings); err != nil {
		logger.ErrorWithErr("failed to render report", err)
		return report.StatusLoadFailure
	}

	return report.Summarize(findings)
}
