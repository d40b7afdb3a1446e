package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jluethi/microf/internal/convention"
	"github.com/jluethi/microf/internal/dispatch"
	"github.com/jluethi/microf/internal/fileset"
	"github.com/jluethi/microf/internal/rename"
	"github.com/jluethi/microf/internal/shell"
	"github.com/jluethi/microf/internal/slurm"
)

// newRenameCmd creates the 'rename' command.
func newRenameCmd() *cobra.Command {
	var conventionName string
	var check bool
	var batch bool
	var batchSize int

	cmd := &cobra.Command{
		Use:   "rename [paths...]",
		Short: "Rename files from the IC6000 to the CV7000 naming format",
		Long: `Rename microscope image files into the CV7000 naming format.

Filenames are matched against the source convention's pattern; matches
are renamed to <experiment>_<well>_T0001F<site>L01A01Z01C<channel>.tif
in place, non-matches are reported and ignored.

Example:
  microf rename --check /data/plate1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag conflicts abort before any path is collected.
			if keepOriginals {
				return &UsageError{Message: `cannot use option --keep with "rename" action`}
			}

			conv, ok := convention.Lookup(conventionName)
			if !ok {
				return &UsageError{Message: fmt.Sprintf("unknown naming convention %q (known: %s)",
					conventionName, strings.Join(convention.Names(), ", "))}
			}

			size, err := effectiveBatchSize(batchSize)
			if err != nil {
				return err
			}

			paths := fileset.Collect(args, logger)
			ops, _, err := rename.Plan(paths, conv, logger)
			if err != nil {
				return err
			}
			if len(ops) == 0 {
				return nil
			}

			cmds := make([]string, 0, len(ops))
			for _, op := range ops {
				cmds = append(cmds, fmt.Sprintf("mv %s %s", shell.Quote(op.Source), shell.Quote(op.Dest)))
			}

			d := dispatch.New(logger, slurm.New(logger, cfg.SubmitCommand))
			return d.Run(cmds, "rename", dispatch.Options{
				Mode:      runMode(check, batch),
				BatchSize: size,
			})
		},
	}

	cmd.Flags().StringVar(&conventionName, "convention", "ic6000", "Source naming convention")
	cmd.Flags().BoolVar(&check, "check", false, "Print commands but do not execute them")
	cmd.Flags().BoolVar(&batch, "batch", false, "Submit commands to the SLURM cluster in batches")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Commands per array task (0 = configured default)")

	return cmd
}
