package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Output captures the result of a subprocess execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner abstracts subprocess execution so callers can be tested with a fake.
type Runner interface {
	// Run executes name with args in dir (empty dir means the current
	// directory), blocking until the process exits.
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
	// LookPath reports where name resolves on PATH, or an error if it doesn't.
	LookPath(name string) (string, error)
}

// ExecRunner runs real subprocesses via os/exec.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Env entries appended to the inherited environment.
	Env []string
}

// Run executes the command, streaming output to the configured writers while
// also capturing it. A non-zero exit is returned in Output, not as an error;
// the error return is reserved for failures to start the process.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", name, err)
	}

	output.ExitCode = 0
	return output, nil
}

// LookPath resolves name on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// RunChecked executes the command and converts a non-zero exit into an error.
// Most wizard stages want fail-fast semantics, so this is the common entry.
func RunChecked(ctx context.Context, r Runner, dir, name string, args ...string) error {
	out, err := r.Run(ctx, dir, name, args...)
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		return fmt.Errorf("%s exited with status %d", name, out.ExitCode)
	}
	return nil
}
