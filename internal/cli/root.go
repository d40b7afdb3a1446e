// Package cli provides the command-line interface for microf.
package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jluethi/microf/internal/config"
	"github.com/jluethi/microf/internal/dispatch"
	"github.com/jluethi/microf/internal/logging"
	"github.com/jluethi/microf/internal/version"
)

// exUsage is the sysexits EX_USAGE status for invalid flag combinations.
const exUsage = 64

var (
	// Global flags
	cfgFile       string
	verbose       bool
	debug         bool
	keepOriginals bool

	// Global logger, initialized in PersistentPreRunE
	logger *logging.Logger

	// Loaded configuration
	cfg config.Config
)

// UsageError marks command-line misuse that must abort before any file
// is touched. Execute maps it to exit status 64.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "microf",
		Short: "Micro file manipulation utility for microscopy pipelines",
		Long: `microf ` + version.Version + ` - Batch utility for microscopy image files.

Actions:
  convert   Convert TIFF files to PNG via an external conversion tool.
  rename    Rename files from the IC6000 to the CV7000 naming format.

Both actions can preview their commands (--check), run them one by one,
or submit them to a SLURM cluster as an array job (--batch).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.New()
			if verbose || debug {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
			c, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")
	rootCmd.PersistentFlags().BoolVar(&keepOriginals, "keep", false,
		`Do not delete original files after conversion. Cannot be used with action "rename".`)

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	rootCmd.AddCommand(newRenameCmd())
	rootCmd.AddCommand(newConvertCmd())

	return rootCmd
}

// Execute runs the CLI and returns the process exit status.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return exitStatus(err)
	}
	return 0
}

func exitStatus(err error) int {
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return exUsage
	}
	return 1
}

// runMode maps the check/batch flags to a dispatch mode. Check wins so
// a preview never executes anything, whatever else is set.
func runMode(check, batch bool) dispatch.Mode {
	switch {
	case check:
		return dispatch.Preview
	case batch:
		return dispatch.Batch
	default:
		return dispatch.Direct
	}
}

// effectiveBatchSize resolves the --batch-size flag against the
// configured default.
func effectiveBatchSize(flagValue int) (int, error) {
	if flagValue == 0 {
		return cfg.BatchSize, nil
	}
	if flagValue < 1 {
		return 0, fmt.Errorf("--batch-size must be positive, got %d", flagValue)
	}
	return flagValue, nil
}
