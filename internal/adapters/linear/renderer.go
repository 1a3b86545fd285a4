// Package linear provides a synchronous, line-buffered progress renderer.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/shinyelectron/internal/ui/output"
	"go.trai.ch/shinyelectron/internal/ui/style"
)

// TailLines is the number of output lines kept per stage and replayed when the stage fails.
const TailLines = 20

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer with chronological, stage-prefixed lines.
// Stage output is streamed in verbose mode; otherwise only the last TailLines
// lines of a failed stage are printed.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	verbose bool
	stages  map[string]*stageState
}

type stageState struct {
	name      string
	startTime time.Time
	partial   bytes.Buffer
	tail      []string
}

// NewRenderer creates a new Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		stages: make(map[string]*stageState),
	}
}

// Start is a no-op; the renderer is synchronous.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes partial lines of stages that never completed.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, st := range r.stages {
		r.flushPartialLocked(st)
	}
	return nil
}

// SetVerbose toggles live streaming of stage output.
func (r *Renderer) SetVerbose(verbose bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verbose = verbose
}

// OnPlan prints the planned stages.
func (r *Renderer) OnPlan(stages []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Running %d stage(s): %s\n",
		len(stages), strings.Join(stages, " "+style.Arrow+" "))
}

// OnStageStart prints a stage start message.
func (r *Renderer) OnStageStart(spanID, _ /* parentID */, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stages[spanID] = &stageState{name: name, startTime: startTime}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnStageLog buffers output and handles complete lines.
func (r *Renderer) OnStageLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.stages[spanID]
	if !ok {
		return
	}

	st.partial.Write(data)
	for {
		line, err := st.partial.ReadBytes('\n')
		if err != nil {
			// Incomplete line, keep it for the next chunk.
			rest := bytes.Clone(line)
			st.partial.Reset()
			st.partial.Write(rest)
			break
		}
		r.lineLocked(st, line)
	}
}

// OnStageComplete flushes the stage and prints its status and duration.
func (r *Renderer) OnStageComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.stages[spanID]
	if !ok {
		return
	}
	r.flushPartialLocked(st)

	duration := endTime.Sub(st.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", st.name)

	if err != nil {
		if !r.verbose {
			for _, line := range st.tail {
				r.printLineLocked(st.name, line)
			}
		}
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
	} else {
		symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
	}

	delete(r.stages, spanID)
}

// flushPartialLocked handles a trailing line without a newline.
// Must be called with r.mu held.
func (r *Renderer) flushPartialLocked(st *stageState) {
	if st.partial.Len() == 0 {
		return
	}
	r.lineLocked(st, st.partial.Bytes())
	st.partial.Reset()
}

// lineLocked records a complete line in the tail and prints it in verbose mode.
// Must be called with r.mu held.
func (r *Renderer) lineLocked(st *stageState, raw []byte) {
	line := strings.TrimRight(string(raw), "\r\n")
	if line == "" {
		return
	}

	st.tail = append(st.tail, line)
	if len(st.tail) > TailLines {
		st.tail = st.tail[len(st.tail)-TailLines:]
	}

	if r.verbose {
		r.printLineLocked(st.name, line)
	}
}

// printLineLocked prints a line with the stage name prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(stage, line string) {
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", stage, line)
}
