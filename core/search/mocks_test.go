package search

import (
	"context"
	"sync"

	"telescout-api/core/interfaces"
)

// mockGenerator is a mock implementation of the Generator interface
type mockGenerator struct {
	generateFunc func(ctx context.Context, prompt string) (*interfaces.GroundedResponse, error)

	mu      sync.Mutex
	prompts []string
}

func (m *mockGenerator) GenerateGrounded(ctx context.Context, prompt string) (*interfaces.GroundedResponse, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt)
	}
	return &interfaces.GroundedResponse{}, nil
}

func (m *mockGenerator) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// textGenerator returns a generator answering with text and chunks
func textGenerator(text string, chunks ...interfaces.GroundingChunk) *mockGenerator {
	return &mockGenerator{
		generateFunc: func(ctx context.Context, prompt string) (*interfaces.GroundedResponse, error) {
			return &interfaces.GroundedResponse{Text: text, Chunks: chunks}, nil
		},
	}
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger records every entry
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg, fields) }

func (m *mockLogger) byLevel(level string) []logEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []logEntry
	for _, e := range m.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}
