// Package dispatch routes planned shell commands to one of three
// execution modes: preview (print only), direct sequential execution,
// or cluster batch submission.
package dispatch

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/jluethi/microf/internal/logging"
)

// Mode selects how commands are executed.
type Mode int

const (
	// Preview prints commands to stdout without executing anything.
	Preview Mode = iota
	// Direct executes each command synchronously, in order.
	Direct
	// Batch submits the command list to the cluster scheduler.
	Batch
)

// Runner executes one shell command and returns its error.
type Runner func(cmd string) error

// Submitter hands a full command list to the cluster scheduler.
type Submitter interface {
	Submit(commands []string, chunkSize int, prefix string) error
}

// Options carries the per-invocation dispatch parameters.
type Options struct {
	Mode      Mode
	BatchSize int // Batch mode only
}

// Dispatcher executes or forwards planned commands. Runner and
// Submitter are injectable for tests; Stdout receives preview output.
type Dispatcher struct {
	Log       *logging.Logger
	Stdout    io.Writer
	Runner    Runner
	Submitter Submitter
}

// New creates a dispatcher with the default shell runner and stdout.
func New(log *logging.Logger, submitter Submitter) *Dispatcher {
	return &Dispatcher{
		Log:       log,
		Stdout:    os.Stdout,
		Runner:    ShellRunner,
		Submitter: submitter,
	}
}

// ShellRunner runs cmd through /bin/sh, inheriting stdout and stderr.
func ShellRunner(cmd string) error {
	c := exec.Command("/bin/sh", "-c", cmd)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

// Run dispatches commands according to opts. In Direct mode a failing
// command is counted and the run continues; the summary reports success
// and error counts. The returned error covers dispatch-level failures
// only (e.g. scheduler submission), never individual command failures.
func (d *Dispatcher) Run(commands []string, verb string, opts Options) error {
	switch opts.Mode {
	case Preview:
		for _, cmd := range commands {
			fmt.Fprintln(d.Stdout, cmd)
		}
		return nil

	case Batch:
		return d.Submitter.Submit(commands, opts.BatchSize, verb)
	}

	bar := newBar(len(commands), verb)
	done := 0
	errored := 0
	for _, cmd := range commands {
		if err := d.Runner(cmd); err != nil {
			d.Log.Warn().Str("command", cmd).Err(err).Msg("Command failed")
			errored++
		} else {
			done++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	d.Log.Infof("Successfully applied %s to %d files, %d errors.", verb, done, errored)
	return nil
}

// newBar returns a count-based progress bar on stderr, or nil when the
// run is too short or stderr is not a terminal.
func newBar(total int, verb string) *progressbar.ProgressBar {
	if total < 2 || !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(verb),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)
}
