// Package slurm partitions command lists into fixed-size chunks and
// submits them to a SLURM cluster as a single array job. Each array
// index executes one chunk; the scheduler provides the index via
// SLURM_ARRAY_TASK_ID.
package slurm

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jluethi/microf/internal/logging"
)

// exitUnmatchedTask is the sysexits EX_SOFTWARE status emitted by the
// script's fallback branch when the array-task ID matches no chunk.
const exitUnmatchedTask = 70

// Submitter writes array-job scripts and hands them to the scheduler
// submission command.
type Submitter struct {
	Log           *logging.Logger
	SubmitCommand string

	// Exec runs the submission command. Tests inject a fake here.
	Exec func(name string, args ...string) error
}

// New creates a Submitter that invokes submitCommand (e.g. "sbatch")
// as an external process.
func New(log *logging.Logger, submitCommand string) *Submitter {
	return &Submitter{
		Log:           log,
		SubmitCommand: submitCommand,
		Exec:          runCommand,
	}
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Chunks partitions cmds into contiguous slices of at most size
// commands each. All chunks but possibly the last have exactly size
// commands, and concatenating the chunks in order reproduces cmds.
func Chunks(cmds []string, size int) [][]string {
	if size < 1 || len(cmds) == 0 {
		return nil
	}
	out := make([][]string, 0, (len(cmds)+size-1)/size)
	for start := 0; start < len(cmds); start += size {
		end := min(start+size, len(cmds))
		out = append(out, cmds[start:end])
	}
	return out
}

// Walltime returns the per-task reservation in minutes: one minute of
// headroom plus five seconds per command, rounded up.
func Walltime(chunkSize int) int {
	return 1 + (5*chunkSize+59)/60
}

// Script renders the array-job script. Structure: shebang, SBATCH
// resource header (one CPU, 256m, walltime for chunkSize commands, log
// paths under cwd named by prefix with %A_%a placeholders), a case
// construct with one 0-based label per chunk running its commands under
// `set -e -x`, and a fallback that reports an unmatched task ID on
// stderr and exits 70.
func Script(chunks [][]string, chunkSize int, prefix, cwd string) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("#SBATCH -c 1\n")
	b.WriteString("#SBATCH --mem-per-cpu=256m\n")
	fmt.Fprintf(&b, "#SBATCH --time=%d\n", Walltime(chunkSize))
	fmt.Fprintf(&b, "#SBATCH --output=%s/%s%%A_%%a.log\n", cwd, prefix)
	fmt.Fprintf(&b, "#SBATCH --error=%s/%s%%A_%%a.log\n", cwd, prefix)
	b.WriteString("\ncase \"$SLURM_ARRAY_TASK_ID\" in\n")
	for i, chunk := range chunks {
		fmt.Fprintf(&b, "  %d)\n", i)
		b.WriteString("    set -e -x\n")
		for _, cmd := range chunk {
			fmt.Fprintf(&b, "    %s\n", cmd)
		}
		b.WriteString("    exit 0;;\n")
	}
	b.WriteString("esac\n\n")
	b.WriteString("echo 1>&2 \"Array job ID $SLURM_ARRAY_TASK_ID not matched in script\"\n")
	fmt.Fprintf(&b, "exit %d\n", exitUnmatchedTask)
	return b.String()
}

// Submit partitions commands into chunks of chunkSize, writes the array
// script to a temporary file, syncs it to disk, and invokes the
// submission command with --array=0-<nchunks-1>. An empty command list
// skips submission entirely rather than submitting a degenerate array.
// The script file is removed after submission returns.
func (s *Submitter) Submit(commands []string, chunkSize int, prefix string) error {
	if len(commands) == 0 {
		s.Log.Warn().Msg("No commands to submit, skipping batch submission")
		return nil
	}
	if chunkSize < 1 {
		return fmt.Errorf("batch size must be positive, got %d", chunkSize)
	}
	if !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	chunks := Chunks(commands, chunkSize)

	f, err := os.CreateTemp("", prefix+"*.sh")
	if err != nil {
		return fmt.Errorf("create batch script: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(Script(chunks, chunkSize, prefix, cwd)); err != nil {
		f.Close()
		return fmt.Errorf("write batch script: %w", err)
	}
	// The scheduler reads the file from disk; make sure it is all there.
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("flush batch script: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close batch script: %w", err)
	}

	arrayArg := fmt.Sprintf("--array=0-%d", len(chunks)-1)
	s.Log.Info().
		Int("commands", len(commands)).
		Int("chunks", len(chunks)).
		Str("script", f.Name()).
		Msg("Submitting array job")

	if err := s.Exec(s.SubmitCommand, arrayArg, f.Name()); err != nil {
		return fmt.Errorf("%s %s: %w", s.SubmitCommand, arrayArg, err)
	}
	return nil
}
