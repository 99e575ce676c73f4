package commands

import (
	"errors"

	"pipeyard/internal/pkg/guard"
)

var ErrProcessManifestsCommandIsNotConstructed = errors.New(
	"ProcessManifestsCommand must be created via NewProcessManifestsCommand constructor",
)

// ProcessManifestsCommand triggers a sweep over manifests that have no
// parsed quantity yet. Carries no parameters; the sweep always covers
// every unparsed manifest.
type ProcessManifestsCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessManifestsCommand creates a command to run a manifest sweep.
func NewProcessManifestsCommand() (ProcessManifestsCommand, error) {
	return ProcessManifestsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessManifestsCommand) Validate() error {
	return c.guard.Validate(ErrProcessManifestsCommandIsNotConstructed)
}
