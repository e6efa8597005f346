package llm

import (
	"context"
	"sync"
)

// MockService is a Service implementation for testing. It records the
// prompts it receives and returns a canned response or error.
type MockService struct {
	mu sync.Mutex

	// Response is returned verbatim from Generate.
	Response string
	// Err, if set, is returned instead of Response.
	Err error

	// Prompts collects every prompt passed to Generate.
	Prompts []string
}

// NewMockService creates a MockService returning the given response.
func NewMockService(response string) *MockService {
	return &MockService{Response: response}
}

func (m *MockService) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// CallCount returns the number of Generate calls seen so far.
func (m *MockService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
