package llm

import "errors"

var (
	// ErrProviderUnavailable is returned when the remote generator has no
	// completion client to call.
	ErrProviderUnavailable = errors.New("openai client is not available")

	// ErrCredentialMissing is returned when PROVIDER=openai but no API key is set.
	ErrCredentialMissing = errors.New("OPENAI_API_KEY is not configured")
)

// CallError wraps any failure of the outbound completion call. Its message is
// the provider's message, unchanged.
type CallError struct {
	Err error
}

func (e *CallError) Error() string { return e.Err.Error() }

func (e *CallError) Unwrap() error { return e.Err }

// IsProviderError reports whether err came from the remote generation path
// (as opposed to request validation).
func IsProviderError(err error) bool {
	var ce *CallError
	return errors.Is(err, ErrProviderUnavailable) ||
		errors.Is(err, ErrCredentialMissing) ||
		errors.As(err, &ce)
}
