package commands

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/moolen/deprscan/internal/logging"
	"github.com/moolen/deprscan/internal/report"
	"github.com/moolen/deprscan/internal/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rescan whenever the configuration or feature table changes",
	Long: `Watch runs one scan immediately, then re-runs the scan whenever the
configuration file or the deprecated-features file changes, with
debouncing. Runs until interrupted; per-pass results are logged and not
encoded in the exit code.`,
	RunE: runWatch,
}

func init() {
	addScanFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := setupLog(logLevelFlags); err != nil {
		return err
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("commands")

	// Watching a file requires it to exist; fail startup otherwise.
	for _, path := range []string{configFile, deprecatedFeaturesFile} {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			logger.Error("Required file not found: %s", path)
			return &exitError{code: report.StatusLoadFailure.ExitCode()}
		}
	}

	scanPass := func() {
		status := executeScan(settings)
		logger.InfoWithFields("scan pass complete",
			logging.Field("status", status.String()),
		)
	}

	w, err := watcher.New(watcher.Config{
		Paths:          []string{configFile, deprecatedFeaturesFile},
		DebounceMillis: settings.DebounceMillis,
	}, scanPass)
	if err != nil {
		return &exitError{code: report.StatusLoadFailure.ExitCode(), err: err}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		return &exitError{code: report.StatusLoadFailure.ExitCode(), err: err}
	}
	defer w.Stop()

	scanPass()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutdown signal received, stopping watch")
	return nil
}
