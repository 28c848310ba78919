// Package llm produces listing copy either from a local template or through a
// remote text-completion provider.
package llm

import (
	"context"
	"fmt"

	"github.com/joestump/listing-writer/internal/config"
	"github.com/joestump/listing-writer/internal/listing"
)

// Generator turns a validated request into marketing copy.
type Generator interface {
	Generate(ctx context.Context, req *listing.Request) (string, error)
	// Name identifies the strategy in logs and metrics.
	Name() string
}

// Completer sends a prompt to a text-completion service and returns its text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// New selects the generator for the configured provider. Only "openai" picks
// the remote path; every other value, including an empty one, falls back to
// the mock template regardless of whether an API key is set.
func New(cfg *config.Config) (Generator, error) {
	if !cfg.UsesOpenAI() {
		return Mock{}, nil
	}
	completer, err := NewOpenAICompleter(cfg)
	if err != nil {
		return nil, fmt.Errorf("build openai completer: %w", err)
	}
	return NewRemote(completer, cfg.LLM.APIKey), nil
}
