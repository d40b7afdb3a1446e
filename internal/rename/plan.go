// Package rename plans the renaming of microscope image files from a
// source naming convention into the canonical CV7000 convention.
package rename

import (
	"fmt"
	"path/filepath"

	"github.com/jluethi/microf/internal/convention"
	"github.com/jluethi/microf/internal/logging"
)

// Operation is one planned rename. Nothing is moved until the dispatcher
// executes the resulting command.
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

// Plan matches each path's filename against conv and produces one rename
// operation per match, keeping the file's directory. Non-matching files
// are logged and counted as ignored. An unrecognized channel label
// aborts planning with an error; no operations from a partial plan are
// returned.
func Plan(paths []string, conv *convention.Convention, log *logging.Logger) ([]Operation, Report, error) {
	var ops []Operation
	rep := Report{Examined: len(paths)}

	for _, path := range paths {
		name := filepath.Base(path)
		groups, ok := conv.Match(name)
		if !ok {
			log.Warnf("%s: Pattern does not match, ignored!", name)
			rep.Ignored++
			continue
		}

		fields, err := conv.Translate(groups, conv.Channels)
		if err != nil {
			return nil, rep, fmt.Errorf("translate %s: %w", name, err)
		}

		ops = append(ops, Operation{
			Source: path,
			Dest:   filepath.Join(filepath.Dir(path), convention.CanonicalName(fields)),
		})
		rep.Planned++
	}

	log.Infof("Examined %d files: %d to rename, %d ignored.", rep.Examined, rep.Planned, rep.Ignored)
	return ops, rep, nil
}
