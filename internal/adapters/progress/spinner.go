package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// SpinnerProgressReporter implements progress reporting with a spinner on stderr
type SpinnerProgressReporter struct {
	out            io.Writer
	spinner        *spinner.Spinner
	stages         []stageInfo
	currentStage   usecase.ExecutionStage
	stageStartTime time.Time
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Message   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stderr)
}

func newSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		out:     out,
		spinner: s,
		stages:  []stageInfo{},
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != "" && event.Stage != r.currentStage {
		r.enterStage(event.Stage)
	}

	if len(r.stages) > 0 {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	if event.Spinner {
		r.updateSpinnerDisplay()
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}
	if event.Stage == usecase.StageCompleted {
		r.completeCurrentStage()
		color.New(color.FgGreen).Fprintf(r.out, "✓ %s\n", event.Message)
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.printPaused(color.New(color.FgCyan), message)
}

// Error stops the spinner for good and marks the running stage failed
func (r *SpinnerProgressReporter) Error(message string) {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	r.failCurrentStage()
	color.New(color.FgRed).Fprintln(r.out, message)
}

// printPaused prints a line without interleaving it with the spinner frame
func (r *SpinnerProgressReporter) printPaused(c *color.Color, message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// enterStage completes the running stage and starts a new one
func (r *SpinnerProgressReporter) enterStage(stage usecase.ExecutionStage) {
	if r.currentStage != "" {
		r.completeCurrentStage()
	}

	r.currentStage = stage
	r.stageStartTime = time.Now()
	r.stages = append(r.stages, stageInfo{
		Stage:     stage,
		StartTime: r.stageStartTime,
		Status:    "running",
	})
}

// completeCurrentStage marks the current stage as completed
func (r *SpinnerProgressReporter) completeCurrentStage() {
	if len(r.stages) > 0 {
		idx := len(r.stages) - 1
		if r.stages[idx].EndTime.IsZero() {
			r.stages[idx].EndTime = time.Now()
		}
		r.stages[idx].Status = "completed"
	}
}

func (r *SpinnerProgressReporter) failCurrentStage() {
	if len(r.stages) > 0 {
		idx := len(r.stages) - 1
		if r.stages[idx].EndTime.IsZero() {
			r.stages[idx].EndTime = time.Now()
		}
		r.stages[idx].Status = "failed"
	}
}

// updateSpinnerDisplay updates the spinner suffix with stage information
func (r *SpinnerProgressReporter) updateSpinnerDisplay() {
	r.spinner.Suffix = " " + r.display()
}

// display renders the stage trail followed by the current message
func (r *SpinnerProgressReporter) display() string {
	var display string

	for i, stage := range r.stages {
		var icon string
		var stageColor *color.Color

		switch stage.Status {
		case "completed":
			icon = "✓"
			stageColor = color.New(color.FgGreen)
		case "failed":
			icon = "✗"
			stageColor = color.New(color.FgRed)
		case "running":
			icon = "●"
			stageColor = color.New(color.FgYellow)
		default:
			icon = "○"
			stageColor = color.New(color.FgWhite)
		}

		duration := ""
		if !stage.EndTime.IsZero() {
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		if i > 0 {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(string(stage.Stage)), duration)
	}

	if len(r.stages) > 0 && r.stages[len(r.stages)-1].Message != "" {
		display += "  " + r.stages[len(r.stages)-1].Message
	}

	return display
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
