package rag_test

import (
	"context"
	"sync/atomic"
)

// MockLLM implements llm.Provider
type MockLLM struct {
	OnComplete func(ctx context.Context, system string, user string) (string, error)
	Calls      atomic.Int32
	LastSystem string
	LastUser   string
}

func (m *MockLLM) Complete(ctx context.Context, system string, user string) (string, error) {
	m.Calls.Add(1)
	m.LastSystem = system
	m.LastUser = user
	if m.OnComplete != nil {
		return m.OnComplete(ctx, system, user)
	}
	return "mocked llm response", nil
}

func (m *MockLLM) Name() string {
	return "mock"
}
