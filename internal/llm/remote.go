package llm

import (
	"context"
	"fmt"

	"github.com/joestump/listing-writer/internal/config"
	"github.com/joestump/listing-writer/internal/listing"
)

// Remote builds a prompt and hands it to a Completer. There is no retry and no
// fallback to Mock: one call, one outcome.
type Remote struct {
	completer Completer
	apiKey    string
}

// NewRemote returns a Remote generator. A nil completer yields
// ErrProviderUnavailable on every call; an empty apiKey yields
// ErrCredentialMissing.
func NewRemote(completer Completer, apiKey string) *Remote {
	return &Remote{completer: completer, apiKey: apiKey}
}

func (r *Remote) Name() string { return config.ProviderOpenAI }

func (r *Remote) Generate(ctx context.Context, req *listing.Request) (string, error) {
	if r.completer == nil {
		return "", ErrProviderUnavailable
	}
	if r.apiKey == "" {
		return "", ErrCredentialMissing
	}

	prompt, err := BuildPrompt(req)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	text, err := r.completer.Complete(ctx, prompt)
	if err != nil {
		return "", &CallError{Err: err}
	}
	return text, nil
}
