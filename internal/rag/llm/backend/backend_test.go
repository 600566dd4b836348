package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/rag/llm"
)

func TestNew_Selection(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.CompletionConfig
		wantName string
	}{
		{"openai without key", config.CompletionConfig{Backend: config.BackendOpenAI}, "openai (unconfigured)"},
		{"gemini without key", config.CompletionConfig{Backend: config.BackendGemini, OpenAIAPIKey: "wrong-backend-key"}, "gemini (unconfigured)"},
		{"openai with key", config.CompletionConfig{Backend: config.BackendOpenAI, OpenAIAPIKey: "sk-test"}, "openai"},
		{"gemini with key", config.CompletionConfig{Backend: config.BackendGemini, GeminiAPIKey: "g-test"}, "gemini"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(context.Background(), tt.cfg)
			if p == nil {
				t.Fatal("New returned nil")
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestNew_UnconfiguredMakesNoCall(t *testing.T) {
	p := New(context.Background(), config.CompletionConfig{Backend: config.BackendOpenAI})
	text, err := p.Complete(context.Background(), "s", "u")
	if !errors.Is(err, llm.ErrUnconfigured) {
		t.Errorf("expected ErrUnconfigured, got %v", err)
	}
	if text != llm.UnconfiguredText("OPENAI_API_KEY") {
		t.Errorf("unexpected placeholder %q", text)
	}
}
