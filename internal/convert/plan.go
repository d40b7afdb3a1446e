// Package convert plans the conversion of TIFF images to PNG via an
// external conversion tool.
package convert

import (
	"path/filepath"
	"strings"

	"github.com/jluethi/microf/internal/logging"
)

// sourceExtensions are the accepted input extensions (lowercase).
var sourceExtensions = map[string]bool{
	".tif":  true,
	".tiff": true,
}

// targetExtension is the destination format extension.
const targetExtension = ".png"

// Operation is one planned conversion.
type Operation struct {
	Source string
	Dest   string
}

// Report summarizes a planning pass. Examined == Planned + Ignored.
type Report struct {
	Examined int
	Planned  int
	Ignored  int
}

// Plan selects TIFF files and derives a PNG destination with the same
// directory and stem for each. Files with other extensions are logged
// and counted as ignored.
func Plan(paths []string, log *logging.Logger) ([]Operation, Report) {
	var ops []Operation
	rep := Report{Examined: len(paths)}

	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		if !sourceExtensions[ext] {
			log.Warnf("%s: no TIFF extension, ignored!", path)
			rep.Ignored++
			continue
		}
		ops = append(ops, Operation{
			Source: path,
			Dest:   strings.TrimSuffix(path, filepath.Ext(path)) + targetExtension,
		})
		rep.Planned++
	}

	log.Infof("Examined %d files: %d to convert, %d ignored.", rep.Examined, rep.Planned, rep.Ignored)
	return ops, rep
}
