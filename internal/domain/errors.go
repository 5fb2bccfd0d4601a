package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrArtifactNotFound is returned when no compiled artifact matches a contract name
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrUnlinkedBytecode is returned when an artifact still has library placeholders
	ErrUnlinkedBytecode = errors.New("bytecode has unlinked library references")

	// ErrNoNetwork is returned when a command needs a network and none is configured
	ErrNoNetwork = errors.New("no network configured")

	// ErrNoSigner is returned when no private key is available to sign transactions
	ErrNoSigner = errors.New("no signer configured")

	// ErrNetworkMismatch is returned when the RPC reports a different chain than configured
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrDeploymentFailed matches every DeploymentFailure
	ErrDeploymentFailed = errors.New("deployment failed")
)

// DeploymentStage names the step of the deployment sequence that failed.
// It only decorates the error message; callers treat every failure alike.
type DeploymentStage string

const (
	StageLookup  DeploymentStage = "lookup"
	StageSubmit  DeploymentStage = "submit"
	StageConfirm DeploymentStage = "confirm"
)

// DeploymentFailure is the single error category for the deployment sequence.
type DeploymentFailure struct {
	Contract string
	Stage    DeploymentStage
	Err      error
}

func (e *DeploymentFailure) Error() string {
	return fmt.Sprintf("deployment of %s failed (%s): %v", e.Contract, e.Stage, e.Err)
}

func (e *DeploymentFailure) Unwrap() error {
	return e.Err
}

func (e *DeploymentFailure) Is(target error) bool {
	return target == ErrDeploymentFailed
}

// ArtifactNotFoundErr reports a missing artifact together with close matches
type ArtifactNotFoundErr struct {
	Name        string
	Suggestions []string
}

func (e ArtifactNotFoundErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no compiled artifact found for contract %q", e.Name)
	}
	return fmt.Sprintf("no compiled artifact found for contract %q, did you mean:\n  - %s",
		e.Name, strings.Join(e.Suggestions, "\n  - "))
}

func (e ArtifactNotFoundErr) Is(target error) bool {
	return target == ErrArtifactNotFound || target == ErrNotFound
}
