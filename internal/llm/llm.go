// Package llm adapts hosted model providers behind a narrow completion
// interface.
package llm

import (
	"context"
	"errors"
)

// ErrCompletion marks a completion provider failure (network, auth, or
// quota). Callers test for it with errors.Is.
var ErrCompletion = errors.New("completion provider failure")

// PromptRequest is one completion request. It is passed unmodified to
// the provider.
type PromptRequest struct {
	System      string
	User        string
	MaxTokens   int64
	Temperature float64
}

// Client produces a reply for a prompt request.
type Client interface {
	Complete(ctx context.Context, req PromptRequest) (string, error)
}
