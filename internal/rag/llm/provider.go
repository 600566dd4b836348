package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnconfigured means no credential is set; no call was attempted.
	ErrUnconfigured = errors.New("completion backend not configured")
	// ErrCompletionFailed covers non-success responses, timeouts and unusable payloads.
	ErrCompletionFailed = errors.New("completion failed")
)

// Provider makes exactly one call to a generative text backend per Complete.
// On failure it may still return partial text alongside an error wrapping ErrCompletionFailed.
type Provider interface {
	Complete(ctx context.Context, system string, user string) (string, error)
	Name() string
}

type unconfigured struct {
	backend string
	keyEnv  string
}

// Unconfigured stands in for a backend whose credential is missing.
func Unconfigured(backend string, keyEnv string) Provider {
	return &unconfigured{backend: backend, keyEnv: keyEnv}
}

func (u *unconfigured) Complete(ctx context.Context, system string, user string) (string, error) {
	return UnconfiguredText(u.keyEnv), ErrUnconfigured
}

func (u *unconfigured) Name() string {
	return u.backend + " (unconfigured)"
}

func UnconfiguredText(keyEnv string) string {
	return fmt.Sprintf("❌ 서버에 %s가 설정되지 않았어요. .env 파일을 확인하세요.", keyEnv)
}

// Failed wraps cause so callers can test it with errors.Is(err, ErrCompletionFailed).
func Failed(backend string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", backend, ErrCompletionFailed)
	}
	return fmt.Errorf("%s: %w: %w", backend, ErrCompletionFailed, cause)
}
