package generation

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockGenerator.
type MockResponse struct {
	Text string
	Err  error
}

// MockGenerator is a deterministic TextGenerator for tests and for the
// "mock" provider. It returns canned responses in FIFO order, repeating
// the final one, and records every prompt it receives.
type MockGenerator struct {
	mu        sync.Mutex
	responses []MockResponse
	Prompts   []string
}

// NewMockGenerator creates a MockGenerator with the given canned responses.
func NewMockGenerator(responses ...MockResponse) *MockGenerator {
	return &MockGenerator{responses: responses}
}

// Generate returns the next canned response. With no responses configured
// it echoes a fixed placeholder worksheet so the mock provider works out
// of the box.
func (m *MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if len(m.responses) == 0 {
		return placeholderWorksheet, nil
	}

	resp := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return resp.Text, resp.Err
}

// ModelID implements TextGenerator.
func (m *MockGenerator) ModelID() string { return "mock" }

// CallCount returns how many times Generate has been invoked.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

const placeholderWorksheet = `Practice Worksheet (sample output)

1. Which of the following is a placeholder question?
   A. This one
   B. That one
   C. Another one
   D. None of the above

Answer Key:
1. A
`
