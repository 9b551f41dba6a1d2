// Package llmclient provides the text-generation backends used by the
// scene pipelines. Clients are constructed explicitly and injected into
// the drivers; there is no process-wide backend handle.
package llmclient

import (
	"context"
	"errors"
)

// Message is one role-tagged block of a chat-style request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options tune a single completion call.
type Options struct {
	MaxTokens   int
	Temperature float64
}

// Client performs one synchronous completion and returns the raw text.
// Implementations must respect ctx cancellation. Errors are opaque to
// callers; the pipeline never interprets backend-specific codes.
type Client interface {
	Name() string
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
}

// ErrEmptyResponse indicates the backend answered with no usable content.
var ErrEmptyResponse = errors.New("llmclient: empty response from backend")
