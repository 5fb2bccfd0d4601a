package progress

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// NopSink is a no-op implementation of ProgressSink
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() *NopSink {
	return &NopSink{}
}

// OnProgress does nothing with progress events
func (n *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

// Info does nothing with info messages
func (n *NopSink) Info(message string) {}

// Error does nothing with error messages
func (n *NopSink) Error(message string) {}

// NewProgressSink picks the spinner when stderr is a terminal and the run is interactive
func NewProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Debug || !isTerminal(os.Stderr.Fd()) {
		return NewNopSink()
	}
	return NewSpinnerProgressReporter()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Ensure NopSink implements ProgressSink
var _ usecase.ProgressSink = (*NopSink)(nil)
