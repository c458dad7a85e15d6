package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/gavel-org/gavel-cli/internal/usecase"
)

// SpinnerSink reports progress with a terminal spinner while the command
// waits on RPC reads or transaction confirmation.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-backed progress sink.
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress updates the spinner suffix for the current stage.
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if !event.Spinner {
		r.spinner.Stop()
		return
	}
	r.spinner.Suffix = " " + event.Message
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Info stops the spinner and prints an informational line.
func (r *SpinnerSink) Info(message string) {
	r.spinner.Stop()
	fmt.Fprintln(os.Stderr, message)
}

// Error stops the spinner and prints an error line.
func (r *SpinnerSink) Error(message string) {
	r.spinner.Stop()
	fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint(message))
}

// Stop halts the spinner; safe to call when it never started.
func (r *SpinnerSink) Stop() {
	r.spinner.Stop()
}

// NewSink picks the spinner in interactive runs and a no-op sink
// otherwise, so JSON output and scripts stay clean.
func NewSink(interactive bool) usecase.ProgressSink {
	if interactive {
		return NewSpinnerSink()
	}
	return usecase.NopProgress{}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
