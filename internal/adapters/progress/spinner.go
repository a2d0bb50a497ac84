package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

// SpinnerSink reports one-shot command progress with a spinner on stderr
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
	stages  []stageInfo
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	return newSpinnerSink(os.Stderr)
}

func newSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false
	return &SpinnerSink{spinner: s, out: out}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.enter(event.Stage)

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	if event.Stage == "done" || event.Stage == "skipped" {
		fmt.Fprintln(r.out, r.Summary())
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pause(func() { color.New(color.FgCyan).Fprintln(r.out, message) })
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.pause(func() { color.New(color.FgRed).Fprintln(r.out, message) })
}

// Summary renders the stages seen so far with their durations
func (r *SpinnerSink) Summary() string {
	var display string
	for i, stage := range r.stages {
		icon, stageColor := "●", color.New(color.FgYellow)
		switch {
		case stage.Stage == "skipped":
			icon, stageColor = "⊘", color.New(color.FgWhite, color.Faint)
		case !stage.EndTime.IsZero() || stage.Stage == "done":
			icon, stageColor = "✓", color.New(color.FgGreen)
		}

		duration := ""
		if !stage.EndTime.IsZero() {
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		if i > 0 {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(stage.Stage), duration)
	}
	return display
}

func (r *SpinnerSink) enter(stage string) {
	if stage == "" {
		return
	}
	if n := len(r.stages); n > 0 {
		if r.stages[n-1].Stage == stage {
			return
		}
		r.stages[n-1].EndTime = time.Now()
	}
	r.stages = append(r.stages, stageInfo{Stage: stage, StartTime: time.Now()})
}

func (r *SpinnerSink) pause(print func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	print()
	if wasActive {
		r.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
