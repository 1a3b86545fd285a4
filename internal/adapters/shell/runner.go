// Package shell runs external tools as subprocesses.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/creack/pty"
	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec, with an optional PTY.
type Runner struct {
	logger ports.Logger
	goos   string
}

// NewRunner creates a Runner for the host operating system.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		goos:   runtime.GOOS,
	}
}

// Run executes cmd and waits for it to exit. Output is captured and, when
// writers are set on cmd, copied to them as it arrives.
func (r *Runner) Run(ctx context.Context, c ports.Command) (*ports.Result, error) {
	if c.Name == "" {
		return nil, zerr.New("command name is empty")
	}

	env := resolveEnvironment(os.Environ(), c.Env)
	name := executableName(c.Name, r.goos)

	executable, err := resolveExecutable(name, env, r.goos)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrToolNotFound.Error()), "tool", c.Name)
	}

	r.logger.Debug(fmt.Sprintf("running %s", strings.Join(append([]string{name}, c.Args...), " ")))

	newCmd := func() *exec.Cmd {
		cmd := exec.CommandContext(ctx, executable, c.Args...) //nolint:gosec // tool names come from fixed pipeline steps
		cmd.Args[0] = name
		cmd.Dir = c.Dir
		cmd.Env = env
		return cmd
	}

	stdoutLog := &logWriter{logger: r.logger}
	stderrLog := &logWriter{logger: r.logger}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	var stdout, stderr io.Writer = stdoutLog, stderrLog
	if c.Stdout != nil {
		stdout = c.Stdout
	}
	if c.Stderr != nil {
		stderr = c.Stderr
	}

	var res *ports.Result
	if c.Interactive {
		res, err = runPTY(newCmd(), stdout)
		if errors.Is(err, pty.ErrUnsupported) {
			res, err = runPipes(newCmd(), stdout, stderr)
		}
	} else {
		res, err = runPipes(newCmd(), stdout, stderr)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, zerr.With(zerr.Wrap(ctxErr, "command interrupted"), "tool", c.Name)
	}
	if err != nil {
		return res, zerr.With(zerr.Wrap(err, "failed to run command"), "tool", c.Name)
	}
	return res, nil
}

// runPipes starts cmd with separate stdout and stderr pipes and drains both concurrently.
func runPipes(cmd *exec.Cmd, stdout, stderr io.Writer) (*ports.Result, error) {
	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	var outBuf, errBuf bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(&outBuf, stdout), outPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(&errBuf, stderr), errPipe)
		return err
	})
	copyErr := g.Wait()

	res, waitErr := finish(cmd.Wait())
	res.Stdout = outBuf.String()
	res.Stderr = errBuf.String()

	if waitErr != nil {
		return res, waitErr
	}
	if copyErr != nil && !errors.Is(copyErr, os.ErrClosed) {
		return res, copyErr
	}
	return res, nil
}

// runPTY starts cmd attached to a pseudo-terminal. The terminal merges both
// streams, so the merged output is reported as Stdout and Stderr alike.
func runPTY(cmd *exec.Cmd, stdout io.Writer) (*ports.Result, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, err
	}

	var (
		mu  sync.Mutex
		buf bytes.Buffer
	)
	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// Reading the master after the child exits fails with EIO on Linux.
		_, _ = io.Copy(io.MultiWriter(&lockedWriter{mu: &mu, w: &buf}, stdout), ptmx)
	}()

	waitErr := cmd.Wait()
	<-ioDone

	res, waitErr := finish(waitErr)
	mu.Lock()
	res.Stdout = buf.String()
	mu.Unlock()
	res.Stderr = res.Stdout

	return res, waitErr
}

// finish turns the error from cmd.Wait into a Result. A non-zero exit is not an error.
func finish(waitErr error) (*ports.Result, error) {
	if waitErr == nil {
		return &ports.Result{ExitCode: 0}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return &ports.Result{ExitCode: exitErr.ExitCode()}, nil
	}
	return &ports.Result{ExitCode: -1}, waitErr
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// logWriter forwards complete lines to the debug log.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r.
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Debug(msg)
}
