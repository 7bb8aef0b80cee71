package core

import "context"

// Options controls model behavior; fields are optional per provider.
type Options struct {
	Model           string
	Temperature     float64
	MaxOutputTokens int
}

// Client is a provider-agnostic interface for the single structured-judgment
// call the pipeline needs.
type Client interface {
	// Complete sends a system instruction plus a user message and returns the
	// raw model text. Callers parse the structured schema themselves.
	Complete(ctx context.Context, system, user string, opts Options) (string, error)
}
