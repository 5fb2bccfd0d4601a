package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

// ConfirmerAdapter asks yes/no questions on the terminal
type ConfirmerAdapter struct {
	config *config.RuntimeConfig
	stdin  io.ReadCloser
	stdout io.WriteCloser
	isTTY  func() bool
}

// NewConfirmerAdapter creates a new confirmer adapter
func NewConfirmerAdapter(cfg *config.RuntimeConfig) *ConfirmerAdapter {
	return &ConfirmerAdapter{
		config: cfg,
		stdin:  os.Stdin,
		stdout: os.Stderr,
		isTTY: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
		},
	}
}

// Confirm returns true without asking when the run is non-interactive or not attached to a terminal
func (c *ConfirmerAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.config.NonInteractive || !c.isTTY() {
		return true, nil
	}

	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
		Stdin:     c.stdin,
		Stdout:    c.stdout,
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		if errors.Is(err, promptui.ErrInterrupt) {
			return false, fmt.Errorf("confirmation interrupted: %w", context.Canceled)
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}

	return true, nil
}

// Ensure the adapter implements the interface
var _ usecase.Confirmer = (*ConfirmerAdapter)(nil)
