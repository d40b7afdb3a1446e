package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jluethi/microf/internal/convert"
	"github.com/jluethi/microf/internal/dispatch"
	"github.com/jluethi/microf/internal/fileset"
	"github.com/jluethi/microf/internal/shell"
	"github.com/jluethi/microf/internal/slurm"
)

// newConvertCmd creates the 'convert' command.
func newConvertCmd() *cobra.Command {
	var check bool
	var batch bool
	var batchSize int

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert TIFF files to PNG",
		Long: `Convert TIFF image files to 16-bit grayscale PNG.

Each .tif/.tiff file is converted in place via the external conversion
tool; the original is removed afterwards unless --keep is given. Files
with other extensions are reported and ignored.

Example:
  microf convert --keep --batch /data/plate1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := effectiveBatchSize(batchSize)
			if err != nil {
				return err
			}

			paths := fileset.Collect(args, logger)
			ops, _ := convert.Plan(paths, logger)
			if len(ops) == 0 {
				return nil
			}

			cmds := make([]string, 0, len(ops))
			for _, op := range ops {
				cmds = append(cmds, convertCommand(cfg.ConvertTool, op, keepOriginals))
			}

			d := dispatch.New(logger, slurm.New(logger, cfg.SubmitCommand))
			return d.Run(cmds, "convert", dispatch.Options{
				Mode:      runMode(check, batch),
				BatchSize: size,
			})
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Print commands but do not execute them")
	cmd.Flags().BoolVar(&batch, "batch", false, "Submit commands to the SLURM cluster in batches")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Commands per array task (0 = configured default)")

	return cmd
}

// convertCommand builds the shell command for one conversion: the
// external tool invocation, plus removal of the source unless originals
// are kept.
func convertCommand(tool string, op convert.Operation, keep bool) string {
	cmd := fmt.Sprintf("%s -depth 16 -colorspace gray %s %s",
		tool, shell.Quote(op.Source), shell.Quote(op.Dest))
	if !keep {
		cmd += fmt.Sprintf("; rm -f %s", shell.Quote(op.Source))
	}
	return cmd
}
