package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ssb-deploy/internal/domain/config"
	"github.com/trebuchet-org/ssb-deploy/internal/usecase"
)

func TestSpinnerProgressReporter(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()

	var out bytes.Buffer
	r := newSpinnerProgressReporter(&out)

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageResolving, Message: "Resolving SSB artifact", Spinner: true})
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageBroadcasting, Message: "Submitting", Spinner: true})

	require.Len(t, r.stages, 2)
	assert.Equal(t, "completed", r.stages[0].Status)
	assert.Equal(t, "running", r.stages[1].Status)
	assert.Contains(t, r.display(), "● Broadcasting")
	assert.Contains(t, r.display(), "Submitting")

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted, Message: "Deployment confirmed"})

	assert.False(t, r.spinner.Active())
	assert.Equal(t, "completed", r.stages[len(r.stages)-1].Status)
	assert.Contains(t, out.String(), "✓ Deployment confirmed")
}

func TestSpinnerProgressReporterError(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()

	var out bytes.Buffer
	r := newSpinnerProgressReporter(&out)

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageBroadcasting, Message: "Submitting", Spinner: true})
	require.True(t, r.spinner.Active())

	r.Error("Deployment transaction rejected")

	assert.False(t, r.spinner.Active())
	require.Len(t, r.stages, 1)
	assert.Equal(t, "failed", r.stages[0].Status)
	assert.False(t, r.stages[0].EndTime.IsZero())
	assert.Contains(t, r.display(), "✗ Broadcasting")
	assert.Contains(t, out.String(), "Deployment transaction rejected")
}

func TestSpinnerProgressReporterInfoResumes(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()

	var out bytes.Buffer
	r := newSpinnerProgressReporter(&out)

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageResolving, Message: "Resolving SSB artifact", Spinner: true})
	r.Info("Compiling contracts with `forge build`")

	assert.True(t, r.spinner.Active())
	assert.Equal(t, "running", r.stages[0].Status)
	assert.Contains(t, out.String(), "Compiling contracts with `forge build`")

	r.spinner.Stop()
}

func TestNewProgressSink(t *testing.T) {
	assert.IsType(t, &NopSink{}, NewProgressSink(&config.RuntimeConfig{NonInteractive: true}))
	assert.IsType(t, &NopSink{}, NewProgressSink(&config.RuntimeConfig{Debug: true}))
}
