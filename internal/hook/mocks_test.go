// Package hook_test provides mock implementations for hook dispatch testing.
// Related: internal/hook/runner.go

package hook

import (
	"context"
	"sync"
)

// RunCall records a single Run invocation.
type RunCall struct {
	Name string
	Args []string
}

// MockRunner is a mock implementation of Runner for testing.
// It records all calls and allows configuring the result and error returned.
type MockRunner struct {
	mu sync.Mutex

	// Configuration
	Result Result
	Err    error

	// Call tracking
	Calls []RunCall
}

// NewMockRunner creates a mock runner that reports a successful, silent command.
func NewMockRunner() *MockRunner {
	return &MockRunner{Calls: make([]RunCall, 0)}
}

// WithResult configures the result returned by Run.
func (m *MockRunner) WithResult(r Result) *MockRunner {
	m.Result = r
	return m
}

// WithError configures the error returned by Run.
func (m *MockRunner) WithError(err error) *MockRunner {
	m.Err = err
	return m
}

// Run implements Runner by recording the call and returning the configured outcome.
func (m *MockRunner) Run(_ context.Context, name string, args ...string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, RunCall{Name: name, Args: args})
	return m.Result, m.Err
}

// CallCount returns the number of Run invocations.
func (m *MockRunner) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
