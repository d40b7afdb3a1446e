// Package fileset expands user-supplied paths into a flat list of files.
package fileset

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jluethi/microf/internal/logging"
)

// Collect turns a mixed list of file and directory paths into a flat
// list of absolute file paths. Nonexistent paths are logged and skipped
// without failing the run. Directories are enumerated recursively in
// traversal order. Overlapping inputs produce duplicates; callers get
// exactly what they asked for.
func Collect(paths []string, log *logging.Logger) []string {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			log.Warn().Str("path", path).Msg("Path does not exist, ignoring")
			continue
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}

		if !info.IsDir() {
			files = append(files, abs)
			continue
		}

		walkErr := filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warn().Str("path", p).Err(err).Msg("Cannot read, skipping")
				return nil
			}
			if !d.IsDir() {
				files = append(files, p)
			}
			return nil
		})
		if walkErr != nil {
			log.Warn().Str("path", abs).Err(walkErr).Msg("Directory walk failed")
		}
	}
	return files
}
