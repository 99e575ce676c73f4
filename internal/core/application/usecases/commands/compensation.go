package commands

import (
	"context"
	"log/slog"
)

// compensationStack records undo actions for saga steps that already
// committed. Actions run in reverse order of registration, so the most
// recent side effect is unwound first.
type compensationStack struct {
	logger  *slog.Logger
	actions []compensationAction
}

type compensationAction struct {
	name string
	undo func(ctx context.Context) error
}

func newCompensationStack(logger *slog.Logger) *compensationStack {
	return &compensationStack{logger: logger}
}

// push registers an undo action for a committed step.
func (s *compensationStack) push(name string, undo func(ctx context.Context) error) {
	s.actions = append(s.actions, compensationAction{name: name, undo: undo})
}

// run executes all registered undo actions LIFO. Compensation is
// best-effort: a failed undo is logged and the remaining actions still
// run, leaving at worst an orphaned record rather than a phantom load.
func (s *compensationStack) run(ctx context.Context) {
	for i := len(s.actions) - 1; i >= 0; i-- {
		action := s.actions[i]
		if err := action.undo(ctx); err != nil {
			s.logger.Error("compensation step failed",
				"step", action.name,
				"error", err,
			)
			continue
		}
		s.logger.Info("compensated saga step", "step", action.name)
	}
	s.actions = nil
}
