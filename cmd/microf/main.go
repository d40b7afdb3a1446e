// Command microf is a batch file utility for microscopy image
// pipelines: it renames IC6000-convention files to the CV7000
// convention and converts TIFF images to PNG, either directly, as a
// dry-run preview, or as a SLURM array-job submission.
package main

import (
	"os"

	"github.com/jluethi/microf/internal/cli"
	"github.com/jluethi/microf/internal/version"
)

// Version information, overridden by ldflags in release builds.
var (
	Version   = "v1.0.0-dev"
	BuildTime = "unknown"
)

func main() {
	version.Version = Version
	version.BuildTime = BuildTime

	os.Exit(cli.Execute())
}
