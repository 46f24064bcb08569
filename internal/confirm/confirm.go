// Package confirm defines the confirmation collaborator used before
// destructive actions. The service presents an intent and awaits a decision
// instead of reaching for a UI dialog directly, so the workflow logic stays
// testable without any front end.
package confirm

import "context"

// Confirmer answers a confirmation request.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Func adapts a function to the Confirmer interface.
type Func func(ctx context.Context, prompt string) (bool, error)

func (f Func) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AutoApprove answers yes to everything. Used by the MCP surface, where the
// client already confirmed intent by calling the tool.
type AutoApprove struct{}

func (AutoApprove) Confirm(context.Context, string) (bool, error) {
	return true, nil
}

// Deny answers no to everything.
type Deny struct{}

func (Deny) Confirm(context.Context, string) (bool, error) {
	return false, nil
}
